// Package analytics contiene los casos de uso para el dashboard comercial.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

// DashboardUseCase genera el resumen del catálogo y de las ventas del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	now           func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, now: time.Now}
}

// WithClock fija el reloj (tests).
func (uc *DashboardUseCase) WithClock(now func() time.Time) *DashboardUseCase {
	uc.now = now
	return uc
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro consultas en paralelo:
//  1. CountUnitsByStatus
//  2. CountActiveReservations
//  3. GetSalesMetrics(hoy)
//  4. GetSalesMetrics(mes)
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := uc.now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := todayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		byStatus map[entity.UnitStatus]int
		active   int
		today    repository.SalesMetrics
		month    repository.SalesMetrics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		if byStatus, err = uc.analyticsRepo.CountUnitsByStatus(gctx); err != nil {
			return fmt.Errorf("dashboard: unidades: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if active, err = uc.analyticsRepo.CountActiveReservations(gctx); err != nil {
			return fmt.Errorf("dashboard: reservas: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if today, err = uc.analyticsRepo.GetSalesMetrics(gctx, todayStart, tomorrow); err != nil {
			return fmt.Errorf("dashboard: métricas de hoy: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		if month, err = uc.analyticsRepo.GetSalesMetrics(gctx, monthStart, tomorrow); err != nil {
			return fmt.Errorf("dashboard: métricas del mes: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	units := dto.UnitStatusCountDTO{
		Available: byStatus[entity.UnitStatusAvailable],
		Reserved:  byStatus[entity.UnitStatusReserved],
		Sold:      byStatus[entity.UnitStatusSold],
	}
	units.Total = units.Available + units.Reserved + units.Sold

	return &dto.DashboardSummaryDTO{
		Units:              units,
		ActiveReservations: active,
		Today:              toPeriod(today),
		Month:              toPeriod(month),
		DateLabel:          monthLabel(now),
	}, nil
}

func toPeriod(m repository.SalesMetrics) dto.SalesPeriodDTO {
	return dto.SalesPeriodDTO{
		Count:       m.Count,
		TotalValue:  m.TotalValue.Round(2),
		DownPayment: m.DownPayment.Round(2),
		Balance:     m.TotalValue.Sub(m.DownPayment).Round(2),
	}
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Outubro 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
