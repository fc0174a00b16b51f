package repository

import (
	"context"

	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para las credenciales (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
