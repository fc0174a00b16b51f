package auth

import (
	"context"
	"time"

	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

// UserLookup resuelve credenciales por username. Lo cumplen el repositorio y la caché de usuarios.
type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

// RevocationList lista de tokens revocados (logout) indexada por jti.
type RevocationList interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
