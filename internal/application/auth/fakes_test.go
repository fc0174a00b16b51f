package auth_test

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/direcional-api/internal/application/auth"
	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "direcional-api-test"
)

func newTokenService() *auth.TokenService {
	return auth.NewTokenService(auth.TokenConfig{
		Secret:     testSecret,
		DefaultTTL: 30 * time.Minute,
		Issuer:     testIssuer,
		BcryptCost: bcrypt.MinCost,
	})
}

// memUserRepo repositorio de usuarios en memoria.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
	err   error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return domain.Conflict(domain.EntityUser, "duplicate user")
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *memUserRepo) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) setActive(username string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			u.Active = active
		}
	}
}

// mockRevocation lista de revocación con testify/mock.
type mockRevocation struct {
	mock.Mock
}

func (m *mockRevocation) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	args := m.Called(ctx, jti, ttl)
	return args.Error(0)
}

func (m *mockRevocation) IsRevoked(ctx context.Context, jti string) (bool, error) {
	args := m.Called(ctx, jti)
	return args.Bool(0), args.Error(1)
}
