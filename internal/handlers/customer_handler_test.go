package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"leadsearch/internal/database"
	"leadsearch/internal/dto"
	"leadsearch/internal/repositories"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// CustomerHandlerTestSuite is the test suite for CustomerHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	e       *echo.Echo
	db      *database.DB
	handler *CustomerHandler
}

func (s *CustomerHandlerTestSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())
	s.handler = NewCustomerHandler(repositories.NewCustomerRepository(s.db.DB))
}

func (s *CustomerHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCustomerHandlerSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}

func (s *CustomerHandlerTestSuite) emailContext(email string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/customer/"+email, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetPath("/api/customer/:email")
	c.SetParamNames("email")
	c.SetParamValues(email)
	return c, rec
}

func (s *CustomerHandlerTestSuite) TestGetCustomerByEmail_Success() {
	created := database.CreateTestCustomer(s.T(), s.db, "crm", "c-1")

	c, rec := s.emailContext(created.Email)

	s.NoError(s.handler.GetCustomerByEmail(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GetCustomerResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(created.Email, response.Customer.Email)
	s.Equal("crm", response.Customer.ExternalSource)
}

func (s *CustomerHandlerTestSuite) TestGetCustomerByEmail_NotFound() {
	c, rec := s.emailContext("missing@example.com")

	s.NoError(s.handler.GetCustomerByEmail(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "RECORD_001")
}

func (s *CustomerHandlerTestSuite) TestGetCustomerByEmail_InvalidEmail() {
	c, rec := s.emailContext("not-an-email")

	s.NoError(s.handler.GetCustomerByEmail(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_005")
}
