package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"leadsearch/internal/dto"
	"leadsearch/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type fakeSuggestionService struct {
	suggestions []string
	cached      bool
	err         error

	lastField string
	lastQuery string
	lastLimit int
}

func (f *fakeSuggestionService) GetSuggestions(ctx context.Context, field, query string, limit int) ([]string, bool, error) {
	f.lastField = field
	f.lastQuery = query
	f.lastLimit = limit
	return f.suggestions, f.cached, f.err
}

type fakeMetrics struct{}

func (f *fakeMetrics) IncrementCounter(name string, tags map[string]string) {}

func (f *fakeMetrics) RecordProcessingTime(name string, duration time.Duration) {}

// SuggestionHandlerTestSuite is the test suite for SuggestionHandler
type SuggestionHandlerTestSuite struct {
	suite.Suite
	e       *echo.Echo
	service *fakeSuggestionService
	handler *SuggestionHandler
}

func (s *SuggestionHandlerTestSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = NewValidator()
	s.service = &fakeSuggestionService{}
	s.handler = NewSuggestionHandler(s.service, &fakeMetrics{})
}

func TestSuggestionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SuggestionHandlerTestSuite))
}

func (s *SuggestionHandlerTestSuite) postContext(body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/api/suggestions", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return s.e.NewContext(req, rec), rec
}

func (s *SuggestionHandlerTestSuite) TestGetSuggestions_Success() {
	s.service.suggestions = []string{"Boston", "Bostonia"}
	s.service.cached = true

	c, rec := s.postContext(`{"field":"city","query":"bo","limit":5}`)

	err := s.handler.GetSuggestions(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response dto.SuggestionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("city", response.Field)
	s.Equal("bo", response.Query)
	s.Equal([]string{"Boston", "Bostonia"}, response.Suggestions)
	s.True(response.Cached)

	s.Equal("city", s.service.lastField)
	s.Equal("bo", s.service.lastQuery)
	s.Equal(5, s.service.lastLimit)
}

func (s *SuggestionHandlerTestSuite) TestGetSuggestions_DefaultLimit() {
	s.service.suggestions = []string{}

	c, rec := s.postContext(`{"field":"company","query":"ac"}`)

	s.NoError(s.handler.GetSuggestions(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(defaultSuggestionLimit, s.service.lastLimit)
}

func (s *SuggestionHandlerTestSuite) TestGetSuggestions_UnknownFieldRejectedByValidator() {
	c, _ := s.postContext(`{"field":"password","query":"bo"}`)

	// Validation errors propagate to the central error handler
	s.Error(s.handler.GetSuggestions(c))
	s.Empty(s.service.lastField)
}

func (s *SuggestionHandlerTestSuite) TestGetSuggestions_LimitAboveMaxRejected() {
	c, _ := s.postContext(`{"field":"city","query":"bo","limit":50}`)

	s.Error(s.handler.GetSuggestions(c))
}

func (s *SuggestionHandlerTestSuite) TestGetSuggestions_InvalidFieldFromService() {
	s.service.err = services.ErrInvalidSuggestionField

	c, rec := s.postContext(`{"field":"city","query":"bo"}`)

	s.NoError(s.handler.GetSuggestions(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "SEARCH_002")
}

func (s *SuggestionHandlerTestSuite) TestGetSuggestions_SearchUnavailable() {
	s.service.err = services.ErrSearchUnavailable

	c, rec := s.postContext(`{"field":"city","query":"bo"}`)

	s.NoError(s.handler.GetSuggestions(c))
	s.Equal(http.StatusBadGateway, rec.Code)
	s.Contains(rec.Body.String(), "SEARCH_001")
}

func (s *SuggestionHandlerTestSuite) TestGetSuggestionsQuery_Success() {
	s.service.suggestions = []string{"Acme Corp"}

	req := httptest.NewRequest(http.MethodGet, "/api/suggestions?field=company&query=ac&limit=3", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.GetSuggestionsQuery(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("company", s.service.lastField)
	s.Equal(3, s.service.lastLimit)
}

func (s *SuggestionHandlerTestSuite) TestGetSuggestionsQuery_MissingQuery() {
	req := httptest.NewRequest(http.MethodGet, "/api/suggestions?field=company", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.Error(s.handler.GetSuggestionsQuery(c))
}
