// Package cache cachea en memoria las credenciales que el gate resuelve en cada request.
package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/direcional-api/internal/application/auth"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

var _ auth.UserLookup = (*UserCache)(nil)

// UserCache envuelve un UserLookup con una caché TTL. Solo se cachean usuarios encontrados;
// lookups concurrentes del mismo username se colapsan en una sola consulta.
type UserCache struct {
	next auth.UserLookup
	c    *gocache.Cache
	sf   singleflight.Group
	ttl  time.Duration
}

// NewUserCache construye la caché. ttl <= 0 desactiva el cacheo (pass-through).
func NewUserCache(next auth.UserLookup, ttl time.Duration) *UserCache {
	cleanup := time.Minute
	if ttl > 0 && ttl < cleanup {
		cleanup = ttl
	}
	return &UserCache{next: next, c: gocache.New(ttl, cleanup), ttl: ttl}
}

// FindByUsername devuelve una copia del usuario cacheado o consulta al siguiente lookup.
func (uc *UserCache) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if uc.ttl <= 0 {
		return uc.next.FindByUsername(ctx, username)
	}
	if v, ok := uc.c.Get(username); ok {
		u := v.(entity.User)
		return &u, nil
	}
	// La consulta compartida no depende de la cancelación del primer llamador.
	shared := context.WithoutCancel(ctx)
	v, err, _ := uc.sf.Do(username, func() (any, error) {
		user, err := uc.next.FindByUsername(shared, username)
		if err != nil || user == nil {
			return user, err
		}
		uc.c.Set(username, *user, uc.ttl)
		return user, nil
	})
	if err != nil {
		return nil, err
	}
	user, _ := v.(*entity.User)
	if user == nil {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}
