package handlers

import (
	stderrors "errors"
	"net/http"

	"leadsearch/internal/dto"
	"leadsearch/internal/errors"
	"leadsearch/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProspectHandler handles prospect record requests
type ProspectHandler struct {
	prospectRepo repositories.ProspectRepositoryInterface
}

// NewProspectHandler creates a new prospect handler
func NewProspectHandler(prospectRepo repositories.ProspectRepositoryInterface) *ProspectHandler {
	return &ProspectHandler{
		prospectRepo: prospectRepo,
	}
}

// GetProspect retrieves a prospect by ID
// @Summary Get prospect
// @Description Retrieves a single prospect record by its ID
// @Tags Prospects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Prospect ID (UUID)"
// @Success 200 {object} dto.GetProspectResponse "Prospect record"
// @Failure 400 {object} errors.ErrorResponse "RECORD_003 - Invalid record ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin or moderator role"
// @Failure 404 {object} errors.ErrorResponse "RECORD_001 - Record not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /prospect/{id} [get]
func (h *ProspectHandler) GetProspect(c echo.Context) error {
	prospectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.RecordInvalidID)
	}

	prospect, err := h.prospectRepo.GetByID(prospectID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrProspectNotFound) {
			return SendError(c, errors.RecordNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GetProspectResponse{
		Prospect: prospect,
	})
}

// UpdateProspect replaces the updatable fields of a prospect
// @Summary Update prospect
// @Description Overwrites every updatable prospect field from the payload. Fields absent from the body are cleared. Email and companyId are immutable and ignored if sent.
// @Tags Prospects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Prospect ID (UUID)"
// @Param request body dto.UpdateProspectRequest true "Replacement field values"
// @Success 200 {object} dto.UpdateProspectResponse "Updated prospect"
// @Failure 400 {object} errors.ErrorResponse "RECORD_003 - Invalid record ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin or moderator role"
// @Failure 404 {object} errors.ErrorResponse "RECORD_001 - Record not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /prospect/{id} [put]
func (h *ProspectHandler) UpdateProspect(c echo.Context) error {
	prospectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.RecordInvalidID)
	}

	var req dto.UpdateProspectRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	// Overwrite semantics: every updatable column is written, absent payload
	// fields become empty values. The repository strips email and company_id.
	fields := map[string]interface{}{
		"first_name":     req.FirstName,
		"last_name":      req.LastName,
		"title":          req.Title,
		"phone":          req.Phone,
		"company_domain": req.CompanyDomain,
		"company_name":   req.CompanyName,
		"address":        req.Address,
		"city":           req.City,
		"state":          req.State,
		"country":        req.Country,
		"zip_code":       req.ZipCode,
	}

	if err := h.prospectRepo.UpdateFields(prospectID, fields); err != nil {
		if stderrors.Is(err, repositories.ErrProspectNotFound) {
			return SendError(c, errors.RecordNotFound)
		}
		return SendSystemError(c, err)
	}

	prospect, err := h.prospectRepo.GetByID(prospectID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UpdateProspectResponse{
		Prospect: prospect,
		Message:  "Prospect updated successfully",
	})
}
