package repository

import (
	"context"

	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

// UnitRepository define el puerto de persistencia para Unit.
type UnitRepository interface {
	Create(ctx context.Context, unit *entity.Unit) error
	FindByID(ctx context.Context, id string) (*entity.Unit, error)
	// FindByIDForUpdate bloquea la fila hasta el fin de la transacción (SELECT FOR UPDATE).
	FindByIDForUpdate(ctx context.Context, id string) (*entity.Unit, error)
	FindByNumber(ctx context.Context, number string) (*entity.Unit, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Unit, error)
	ListByStatus(ctx context.Context, status entity.UnitStatus, offset, limit int) ([]*entity.Unit, error)
	// UpdateFields persiste los campos descriptivos; nunca el status.
	UpdateFields(ctx context.Context, unit *entity.Unit) error
	UpdateStatus(ctx context.Context, id string, status entity.UnitStatus) error
	Delete(ctx context.Context, id string) (bool, error)
}
