package repository

import (
	"context"
	"time"

	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SalesMetrics agregado de ventas en un rango de fechas.
type SalesMetrics struct {
	Count       int
	TotalValue  decimal.Decimal // suma de sale_value
	DownPayment decimal.Decimal // suma de down_payment
}

// AnalyticsRepository consultas de solo lectura para el dashboard comercial.
type AnalyticsRepository interface {
	// CountUnitsByStatus cuenta unidades por status; los status sin unidades no aparecen.
	CountUnitsByStatus(ctx context.Context) (map[entity.UnitStatus]int, error)
	CountActiveReservations(ctx context.Context) (int, error)
	// GetSalesMetrics agrega las ventas con sold_at en [from, to).
	GetSalesMetrics(ctx context.Context, from, to time.Time) (SalesMetrics, error)
}
