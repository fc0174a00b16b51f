package http

import (
	"context"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/direcional-api/internal/application/auth"
	"github.com/jhoicas/direcional-api/internal/domain"
)

// Locals keys para la identidad autenticada en Fiber.
const (
	LocalIdentity = "identity"
	LocalUserID   = "user_id"
)

// Authenticator resuelve un bearer token en una identidad. Lo cumple *auth.Gate.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Identity, error)
}

var _ Authenticator = (*auth.Gate)(nil)

// AuthMiddleware valida el Bearer Token contra el gate y deja la identidad en c.Locals.
func AuthMiddleware(gate Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// fasthttp recorta los espacios finales: "Bearer   " llega como "Bearer".
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return unauthorized(c, CodeMissingToken, "Authorization header requerido")
		}
		scheme, rest, _ := strings.Cut(authHeader, " ")
		if !strings.EqualFold(scheme, "Bearer") {
			return unauthorized(c, CodeInvalidToken, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(rest)
		if tokenString == "" {
			return unauthorized(c, CodeMissingToken, "token vacío")
		}
		id, err := gate.Authenticate(c.UserContext(), tokenString)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				return unauthorized(c, CodeInvalidToken, domain.Message(err))
			}
			return err
		}
		c.Locals(LocalIdentity, id)
		c.Locals(LocalUserID, id.User.ID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, code, msg string) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return errorJSON(c, fiber.StatusUnauthorized, code, msg)
}

// GetIdentity devuelve la identidad del contexto (después del middleware de auth).
func GetIdentity(c *fiber.Ctx) *auth.Identity {
	id, _ := c.Locals(LocalIdentity).(*auth.Identity)
	return id
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
