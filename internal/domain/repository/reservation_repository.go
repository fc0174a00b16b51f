package repository

import (
	"context"

	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

// ReservationRepository define el puerto de persistencia para Reservation.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id string) (*entity.Reservation, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Reservation, error)
	ListByClientID(ctx context.Context, clientID string, offset, limit int) ([]*entity.Reservation, error)
	FindActiveByUnitID(ctx context.Context, unitID string) (*entity.Reservation, error)
	ExistsByUnitID(ctx context.Context, unitID string) (bool, error)
	UpdateActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) (bool, error)
}
