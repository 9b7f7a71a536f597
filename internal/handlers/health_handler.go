package handlers

import (
	"net/http"

	"leadsearch/internal/services"

	"github.com/labstack/echo/v4"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	healthService services.HealthServiceInterface
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(healthService services.HealthServiceInterface) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Check aggregates dependency health
// @Summary Health check
// @Description Probes the database, search cluster and cache. Returns 200 when all are healthy, 503 when some are down and 500 when all are down.
// @Tags Health
// @Produce json
// @Success 200 {object} services.HealthReport "All dependencies healthy"
// @Failure 500 {object} services.HealthReport "Every dependency down"
// @Failure 503 {object} services.HealthReport "Some dependencies down"
// @Router /health [get]
func (h *HealthHandler) Check(c echo.Context) error {
	report := h.healthService.Check(c.Request().Context())

	status := http.StatusOK
	switch report.Status {
	case services.HealthStatusDegraded:
		status = http.StatusServiceUnavailable
	case services.HealthStatusError:
		status = http.StatusInternalServerError
	}

	return c.JSON(status, report)
}
