// Package revocation implementa la lista de tokens revocados por logout.
package revocation

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/direcional-api/internal/application/auth"
)

// Prefijo de clave para tokens revocados.
const revokedTokenKeyPrefix = "trl:jti:"

var _ auth.RevocationList = (*RedisList)(nil)

// RedisList lista de revocación compartida entre instancias. La clave expira con el token.
type RedisList struct {
	client redis.UniversalClient
}

// NewRedisList construye la lista sobre un cliente Redis; su ciclo de vida lo maneja el llamador.
func NewRedisList(client redis.UniversalClient) *RedisList {
	return &RedisList{client: client}
}

// Revoke marca jti como revocado durante ttl.
func (l *RedisList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return l.client.Set(ctx, revokedTokenKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked indica si jti está en la lista. Una clave ausente o expirada no está revocada.
func (l *RedisList) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	_, err := l.client.Get(ctx, revokedTokenKeyPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
