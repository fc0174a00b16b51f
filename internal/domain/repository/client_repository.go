package repository

import (
	"context"

	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

// ClientRepository define el puerto de persistencia para Client.
// Los métodos Find* devuelven (nil, nil) si no existe el registro.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	FindByNationalID(ctx context.Context, nationalID string) (*entity.Client, error)
	List(ctx context.Context, offset, limit int) ([]*entity.Client, error)
	// Update persiste solo los campos de contacto (name, email, phone).
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id string) (bool, error)
}
