package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard comercial.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// CountUnitsByStatus agrupa el catálogo por status.
func (r *AnalyticsRepo) CountUnitsByStatus(ctx context.Context) (map[entity.UnitStatus]int, error) {
	rows, err := r.q.Query(ctx, `SELECT status, COUNT(*) FROM units GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("analytics: unidades por status: %w", err)
	}
	defer rows.Close()

	out := make(map[entity.UnitStatus]int)
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("analytics: scan status: %w", err)
		}
		out[entity.UnitStatus(status)] = n
	}
	return out, rows.Err()
}

// CountActiveReservations cuenta reservas activas.
func (r *AnalyticsRepo) CountActiveReservations(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM reservations WHERE active`).Scan(&n); err != nil {
		return 0, fmt.Errorf("analytics: reservas activas: %w", err)
	}
	return n, nil
}

// GetSalesMetrics suma valores de venta y entrada con sold_at en [from, to).
func (r *AnalyticsRepo) GetSalesMetrics(ctx context.Context, from, to time.Time) (repository.SalesMetrics, error) {
	const query = `
	SELECT COUNT(*),
	       COALESCE(SUM(sale_value),   0),
	       COALESCE(SUM(down_payment), 0)
	FROM sales
	WHERE sold_at >= $1 AND sold_at < $2`

	var m repository.SalesMetrics
	if err := r.q.QueryRow(ctx, query, from, to).Scan(&m.Count, &m.TotalValue, &m.DownPayment); err != nil {
		return repository.SalesMetrics{}, fmt.Errorf("analytics: métricas de ventas: %w", err)
	}
	return m, nil
}
