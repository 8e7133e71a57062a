package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RaafaGarcia/smartadmin-api/internal/core/ports"
)

// DashboardHandler serves the aggregated dashboard payload.
type DashboardHandler struct {
	service ports.DashboardService
}

func NewDashboardHandler(service ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Metrics handles GET /api/dashboard/metrics.
//
// @Summary      Dashboard metrics
// @Description  Aggregate counts blended with documented demo placeholders.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardData
// @Failure      401  {object}  errorResponse
// @Router       /dashboard/metrics [get]
func (h *DashboardHandler) Metrics(c echo.Context) error {
	data, err := h.service.Metrics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, data)
}
