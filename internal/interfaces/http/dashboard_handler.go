package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/direcional-api/internal/application/analytics"
	"github.com/jhoicas/direcional-api/internal/application/dto"
)

// DashboardService resumen comercial.
type DashboardService interface {
	GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error)
}

var _ DashboardService = (*appanalytics.DashboardUseCase)(nil)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc DashboardService
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc DashboardService) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve unidades por status, reservas activas y ventas del día y del mes.
// GET /api/dashboard/summary
//
// No requiere parámetros; las fechas se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}
