package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"leadsearch/internal/dto"
	"leadsearch/internal/errors"
	"leadsearch/internal/services"

	"github.com/labstack/echo/v4"
)

const defaultSuggestionLimit = 10

// SuggestionHandler handles typeahead suggestion requests
type SuggestionHandler struct {
	suggestionService services.SuggestionServiceInterface
	metrics           services.MetricsRecorderInterface
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestionService services.SuggestionServiceInterface, metrics services.MetricsRecorderInterface) *SuggestionHandler {
	return &SuggestionHandler{
		suggestionService: suggestionService,
		metrics:           metrics,
	}
}

// GetSuggestions returns typeahead suggestions for a customer field
// @Summary Field value suggestions
// @Description Returns up to limit distinct values of the given customer field matching the query, ascending
// @Tags Suggestions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SuggestionRequest true "Suggestion lookup"
// @Success 200 {object} dto.SuggestionResponse "Matching suggestions"
// @Failure 400 {object} errors.ErrorResponse "SEARCH_002 - Unknown suggestion field"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "SEARCH_001 - Search service request failed"
// @Router /suggestions [post]
func (h *SuggestionHandler) GetSuggestions(c echo.Context) error {
	var req dto.SuggestionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	return h.respond(c, &req)
}

// GetSuggestionsQuery serves the same lookup from query parameters
// @Summary Field value suggestions (query form)
// @Description Query-parameter variant of the suggestion lookup
// @Tags Suggestions
// @Security BearerAuth
// @Produce json
// @Param field query string true "Customer field" Enums(company, title, city, state, country, industry, zipCode)
// @Param query query string true "Prefix or substring to complete"
// @Param limit query int false "Maximum suggestions (max 20)" default(10)
// @Success 200 {object} dto.SuggestionResponse "Matching suggestions"
// @Failure 400 {object} errors.ErrorResponse "SEARCH_002 - Unknown suggestion field"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 502 {object} errors.ErrorResponse "SEARCH_001 - Search service request failed"
// @Router /suggestions [get]
func (h *SuggestionHandler) GetSuggestionsQuery(c echo.Context) error {
	req := dto.SuggestionRequest{
		Field: c.QueryParam("field"),
		Query: c.QueryParam("query"),
		Limit: getIntParam(c, "limit", 0),
	}

	return h.respond(c, &req)
}

func (h *SuggestionHandler) respond(c echo.Context, req *dto.SuggestionRequest) error {
	if err := c.Validate(req); err != nil {
		return err
	}

	if req.Limit == 0 {
		req.Limit = defaultSuggestionLimit
	}

	startTime := time.Now()

	suggestions, cached, err := h.suggestionService.GetSuggestions(c.Request().Context(), req.Field, req.Query, req.Limit)
	h.metrics.RecordProcessingTime("suggestion_lookup", time.Since(startTime))

	if err != nil {
		switch err {
		case services.ErrInvalidSuggestionField:
			return SendError(c, errors.SearchInvalidField)
		default:
			if stderrors.Is(err, services.ErrSearchUnavailable) {
				return SendError(c, errors.SearchUpstreamError)
			}
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.SuggestionResponse{
		Field:       req.Field,
		Query:       req.Query,
		Suggestions: suggestions,
		Cached:      cached,
	})
}
