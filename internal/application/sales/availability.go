package sales

import (
	"context"

	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

// AvailabilityQuery lectura pura de disponibilidad de una unidad.
type AvailabilityQuery struct {
	units repository.UnitRepository
}

// NewAvailabilityQuery construye la consulta.
func NewAvailabilityQuery(units repository.UnitRepository) *AvailabilityQuery {
	return &AvailabilityQuery{units: units}
}

// Check indica si la unidad está AVAILABLE. NotFound si no existe.
func (q *AvailabilityQuery) Check(ctx context.Context, unitID string) (*dto.UnitAvailabilityResponse, error) {
	unit, err := q.units.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.NotFound(domain.EntityUnit)
	}
	return &dto.UnitAvailabilityResponse{
		UnitID:    unit.ID,
		Status:    string(unit.Status),
		Available: unit.IsAvailable(),
	}, nil
}
