package repository

import (
	"context"

	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	FindByID(ctx context.Context, id string) (*entity.Sale, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Sale, error)
	ListByClientID(ctx context.Context, clientID string, offset, limit int) ([]*entity.Sale, error)
	FindByUnitID(ctx context.Context, unitID string) (*entity.Sale, error)
	Delete(ctx context.Context, id string) (bool, error)
}
