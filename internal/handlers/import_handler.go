package handlers

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"leadsearch/internal/dto"
	"leadsearch/internal/errors"
	"leadsearch/internal/models"
	"leadsearch/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// ImportHandler handles bulk customer imports on the internal surface
type ImportHandler struct {
	importService services.ImportServiceInterface
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService services.ImportServiceInterface) *ImportHandler {
	return &ImportHandler{
		importService: importService,
	}
}

// BulkImport imports a batch of customer records
// @Summary Bulk import customers
// @Description Upserts each record by its (externalSource, externalId) key. Per-record failures are reported in the result details; the batch itself always completes.
// @Tags Import
// @Accept json
// @Produce json
// @Param request body dto.BulkImportRequest true "Customer batch"
// @Success 200 {object} dto.BulkImportResponse "Batch result with per-item outcomes"
// @Failure 400 {object} errors.ErrorResponse "IMPORT_001 - Import batch contains no records"
// @Failure 500 {object} errors.ErrorResponse "IMPORT_002 - Import operation failed"
// @Router /bulk-import [post]
func (h *ImportHandler) BulkImport(c echo.Context) error {
	var req dto.BulkImportRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if len(req.Customers) == 0 {
		return SendError(c, errors.ImportEmptyBatch)
	}

	customers := make([]*models.Customer, len(req.Customers))
	conversionErrs := make(map[int]error)
	for i, record := range req.Customers {
		customer, err := toCustomerModel(&record)
		if err != nil {
			// Leave the slot nil so the importer records the failure in place
			conversionErrs[i] = err
			continue
		}
		customers[i] = customer
	}

	summary, err := h.importService.ImportCustomers(c.Request().Context(), customers, req.ClearExisting)
	if err != nil {
		if stderrors.Is(err, services.ErrEmptyImportBatch) {
			return SendError(c, errors.ImportEmptyBatch)
		}
		return SendError(c, errors.ImportFailed, errors.WithDetails(err.Error()))
	}

	details := make([]dto.BulkImportItemResult, len(summary.Details))
	for i, item := range summary.Details {
		result := dto.BulkImportItemResult{
			Index:          item.Index,
			ExternalSource: item.ExternalSource,
			ExternalID:     item.ExternalID,
			Success:        item.Success,
			Error:          item.Error,
		}
		// Records that never made it past conversion report the parse error
		// and keep their identity from the request
		if convErr, ok := conversionErrs[item.Index]; ok && !item.Success {
			record := req.Customers[item.Index]
			result.ExternalSource = record.ExternalSource
			result.ExternalID = record.ExternalID
			result.Error = convErr.Error()
		}
		details[i] = result
	}

	return c.JSON(http.StatusOK, dto.BulkImportResponse{
		Success: true,
		Message: fmt.Sprintf("Processed %d records: %d successful, %d failed", summary.Total, summary.Successful, summary.Failed),
		Results: dto.BulkImportResults{
			Total:      summary.Total,
			Successful: summary.Successful,
			Failed:     summary.Failed,
			Details:    details,
		},
	})
}

// toCustomerModel converts an import record to a customer model. Revenue
// strings that do not parse fail the whole record.
func toCustomerModel(record *dto.ImportCustomerRecord) (*models.Customer, error) {
	revenue := decimal.Zero
	if record.Revenue != "" {
		parsed, err := decimal.NewFromString(record.Revenue)
		if err != nil {
			return nil, fmt.Errorf("invalid revenue value %q", record.Revenue)
		}
		revenue = parsed
	}

	return &models.Customer{
		ExternalSource: record.ExternalSource,
		ExternalID:     record.ExternalID,
		Email:          record.Email,
		FirstName:      record.FirstName,
		LastName:       record.LastName,
		Company:        record.Company,
		Title:          record.Title,
		Phone:          record.Phone,
		Address:        record.Address,
		City:           record.City,
		State:          record.State,
		Country:        record.Country,
		ZipCode:        record.ZipCode,
		Revenue:        revenue,
		Industry:       record.Industry,
	}, nil
}
