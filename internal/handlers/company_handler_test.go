package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadsearch/internal/database"
	"leadsearch/internal/dto"
	"leadsearch/internal/models"
	"leadsearch/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// CompanyHandlerTestSuite is the test suite for CompanyHandler
type CompanyHandlerTestSuite struct {
	suite.Suite
	e       *echo.Echo
	db      *database.DB
	repo    repositories.CompanyRepositoryInterface
	handler *CompanyHandler
}

func (s *CompanyHandlerTestSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.db = database.SetupTestDB(s.T())
	s.repo = repositories.NewCompanyRepository(s.db.DB)
	s.handler = NewCompanyHandler(s.repo)
}

func (s *CompanyHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestCompanyHandlerSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}

func (s *CompanyHandlerTestSuite) createCompany() *models.Company {
	company := &models.Company{
		Domain:   "acme.example.com",
		Name:     "Acme Corp",
		Industry: "Manufacturing",
		City:     "Boston",
		Revenue:  decimal.NewFromInt(5000000),
	}
	s.Require().NoError(s.repo.Create(company))
	return company
}

func (s *CompanyHandlerTestSuite) getContext(id string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/company/"+id, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetPath("/api/company/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func (s *CompanyHandlerTestSuite) putContext(id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPut, "/api/company/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetPath("/api/company/:id")
	c.SetParamNames("id")
	c.SetParamValues(id)
	return c, rec
}

func (s *CompanyHandlerTestSuite) TestGetCompany_Success() {
	company := s.createCompany()

	c, rec := s.getContext(company.ID.String())

	s.NoError(s.handler.GetCompany(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.GetCompanyResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("acme.example.com", response.Company.Domain)
	s.Equal("Acme Corp", response.Company.Name)
}

func (s *CompanyHandlerTestSuite) TestGetCompany_InvalidID() {
	c, rec := s.getContext("not-a-uuid")

	s.NoError(s.handler.GetCompany(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "RECORD_003")
}

func (s *CompanyHandlerTestSuite) TestGetCompany_NotFound() {
	c, rec := s.getContext(uuid.New().String())

	s.NoError(s.handler.GetCompany(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "RECORD_001")
}

func (s *CompanyHandlerTestSuite) TestUpdateCompany_OverwritesAllFields() {
	company := s.createCompany()

	c, rec := s.putContext(company.ID.String(), `{"name":"Acme International","revenue":"750000.50"}`)

	s.NoError(s.handler.UpdateCompany(c))
	s.Equal(http.StatusOK, rec.Code)

	stored, err := s.repo.GetByID(company.ID)
	s.Require().NoError(err)
	s.Equal("Acme International", stored.Name)
	s.True(stored.Revenue.Equal(decimal.RequireFromString("750000.50")))

	// Absent payload fields are cleared, not preserved
	s.Empty(stored.Industry)
	s.Empty(stored.City)
}

func (s *CompanyHandlerTestSuite) TestUpdateCompany_DomainInBodyIgnored() {
	company := s.createCompany()

	c, rec := s.putContext(company.ID.String(), `{"name":"Acme International","domain":"hijacked.example.com"}`)

	s.NoError(s.handler.UpdateCompany(c))
	s.Equal(http.StatusOK, rec.Code)

	stored, err := s.repo.GetByID(company.ID)
	s.Require().NoError(err)
	s.Equal("acme.example.com", stored.Domain)
	s.Equal("Acme International", stored.Name)
}

func (s *CompanyHandlerTestSuite) TestUpdateCompany_InvalidRevenue() {
	company := s.createCompany()

	c, _ := s.putContext(company.ID.String(), `{"name":"Acme","revenue":"lots"}`)

	// Validation errors propagate to the central error handler
	s.Error(s.handler.UpdateCompany(c))

	stored, err := s.repo.GetByID(company.ID)
	s.Require().NoError(err)
	s.Equal("Acme Corp", stored.Name)
}

func (s *CompanyHandlerTestSuite) TestUpdateCompany_NotFound() {
	c, rec := s.putContext(uuid.New().String(), `{"name":"Ghost"}`)

	s.NoError(s.handler.UpdateCompany(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *CompanyHandlerTestSuite) TestUpdateCompany_InvalidID() {
	c, rec := s.putContext("42", `{"name":"Acme"}`)

	s.NoError(s.handler.UpdateCompany(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}
