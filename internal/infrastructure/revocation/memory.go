package revocation

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/jhoicas/direcional-api/internal/application/auth"
)

var _ auth.RevocationList = (*MemoryList)(nil)

// MemoryList lista de revocación local al proceso; se usa cuando REDIS_URL no está configurado.
type MemoryList struct {
	c *gocache.Cache
}

// NewMemoryList construye la lista en memoria.
func NewMemoryList() *MemoryList {
	return &MemoryList{c: gocache.New(gocache.NoExpiration, time.Minute)}
}

// Revoke marca jti como revocado durante ttl.
func (l *MemoryList) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	l.c.Set(revokedTokenKeyPrefix+jti, struct{}{}, ttl)
	return nil
}

// IsRevoked indica si jti está en la lista.
func (l *MemoryList) IsRevoked(_ context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	_, ok := l.c.Get(revokedTokenKeyPrefix + jti)
	return ok, nil
}
