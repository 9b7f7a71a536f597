package handlers

import (
	stderrors "errors"
	"net/http"

	"leadsearch/internal/dto"
	"leadsearch/internal/errors"
	"leadsearch/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CompanyHandler handles company record requests
type CompanyHandler struct {
	companyRepo repositories.CompanyRepositoryInterface
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyRepo repositories.CompanyRepositoryInterface) *CompanyHandler {
	return &CompanyHandler{
		companyRepo: companyRepo,
	}
}

// GetCompany retrieves a company by ID
// @Summary Get company
// @Description Retrieves a single company record by its ID
// @Tags Companies
// @Security BearerAuth
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Success 200 {object} dto.GetCompanyResponse "Company record"
// @Failure 400 {object} errors.ErrorResponse "RECORD_003 - Invalid record ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin or moderator role"
// @Failure 404 {object} errors.ErrorResponse "RECORD_001 - Record not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /company/{id} [get]
func (h *CompanyHandler) GetCompany(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.RecordInvalidID)
	}

	company, err := h.companyRepo.GetByID(companyID)
	if err != nil {
		if stderrors.Is(err, repositories.ErrCompanyNotFound) {
			return SendError(c, errors.RecordNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GetCompanyResponse{
		Company: company,
	})
}

// UpdateCompany replaces the updatable fields of a company
// @Summary Update company
// @Description Overwrites every updatable company field from the payload. Fields absent from the body are cleared. The domain is immutable and ignored if sent.
// @Tags Companies
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Company ID (UUID)"
// @Param request body dto.UpdateCompanyRequest true "Replacement field values"
// @Success 200 {object} dto.UpdateCompanyResponse "Updated company"
// @Failure 400 {object} errors.ErrorResponse "RECORD_003 - Invalid record ID format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005 - Requires admin or moderator role"
// @Failure 404 {object} errors.ErrorResponse "RECORD_001 - Record not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /company/{id} [put]
func (h *CompanyHandler) UpdateCompany(c echo.Context) error {
	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.RecordInvalidID)
	}

	var req dto.UpdateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	revenue := decimal.Zero
	if req.Revenue != "" {
		revenue, err = decimal.NewFromString(req.Revenue)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("revenue: must be a valid number"))
		}
	}

	// Overwrite semantics: every updatable column is written, absent payload
	// fields become empty values. The repository strips the domain column.
	fields := map[string]interface{}{
		"name":        req.Name,
		"industry":    req.Industry,
		"size":        req.Size,
		"revenue":     revenue,
		"address":     req.Address,
		"city":        req.City,
		"state":       req.State,
		"country":     req.Country,
		"zip_code":    req.ZipCode,
		"phone":       req.Phone,
		"website":     req.Website,
		"description": req.Description,
	}

	if err := h.companyRepo.UpdateFields(companyID, fields); err != nil {
		if stderrors.Is(err, repositories.ErrCompanyNotFound) {
			return SendError(c, errors.RecordNotFound)
		}
		return SendSystemError(c, err)
	}

	company, err := h.companyRepo.GetByID(companyID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.UpdateCompanyResponse{
		Company: company,
		Message: "Company updated successfully",
	})
}
