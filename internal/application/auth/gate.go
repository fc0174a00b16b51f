package auth

import (
	"context"
	"fmt"

	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/pkg/jwt"
)

// Identity usuario autenticado más los claims del token que lo acreditó.
type Identity struct {
	User   *entity.User
	Claims *TokenClaims
}

// Gate re-deriva la identidad a partir del bearer token en cada llamada mutante.
type Gate struct {
	tokens  *TokenService
	users   UserLookup
	revoked RevocationList
}

// NewGate construye el gate. revoked puede ser nil (sin logout).
func NewGate(tokens *TokenService, users UserLookup, revoked RevocationList) *Gate {
	return &Gate{tokens: tokens, users: users, revoked: revoked}
}

// Authenticate devuelve ErrUnauthorized si el token es inválido, está revocado,
// o el usuario no existe o está inactivo. Fallos de infraestructura se propagan envueltos.
func (g *Gate) Authenticate(ctx context.Context, token string) (*Identity, error) {
	claims, err := g.tokens.decode(token)
	if err != nil {
		if jwt.IsExpired(err) {
			return nil, domain.Unauthorized("token expirado")
		}
		return nil, domain.Unauthorized("token inválido")
	}
	if g.revoked != nil {
		revoked, err := g.revoked.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("auth: consultar revocación: %w", err)
		}
		if revoked {
			return nil, domain.Unauthorized("token revocado")
		}
	}
	user, err := g.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("auth: buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.Unauthorized("usuario no encontrado")
	}
	if !user.Active {
		return nil, domain.Unauthorized("usuario inactivo")
	}
	return &Identity{User: user, Claims: claims}, nil
}
