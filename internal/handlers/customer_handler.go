package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"leadsearch/internal/dto"
	"leadsearch/internal/errors"
	"leadsearch/internal/repositories"

	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer lookup requests
type CustomerHandler struct {
	customerRepo repositories.CustomerRepositoryInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerRepo repositories.CustomerRepositoryInterface) *CustomerHandler {
	return &CustomerHandler{
		customerRepo: customerRepo,
	}
}

// GetCustomerByEmail retrieves a customer record by email
// @Summary Get customer by email
// @Description Looks up a single imported customer record by its email address
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param email path string true "Customer email"
// @Success 200 {object} dto.GetCustomerResponse "Customer record"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid email address format"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "RECORD_001 - Record not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customer/{email} [get]
func (h *CustomerHandler) GetCustomerByEmail(c echo.Context) error {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" || !strings.Contains(email, "@") {
		return SendError(c, errors.ValidationInvalidEmail)
	}

	customer, err := h.customerRepo.GetByEmail(email)
	if err != nil {
		if stderrors.Is(err, repositories.ErrCustomerNotFound) {
			return SendError(c, errors.RecordNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GetCustomerResponse{
		Customer: customer,
	})
}
