package auth

import (
	"time"

	"github.com/jhoicas/direcional-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// TokenConfig configuración para hash de passwords y generación de tokens.
type TokenConfig struct {
	Secret     string
	DefaultTTL time.Duration
	Issuer     string
	BcryptCost int // 0 = bcrypt.DefaultCost
}

// IssuedToken token firmado junto con su jti y expiración absoluta.
type IssuedToken struct {
	Token     string
	ID        string
	ExpiresAt time.Time
}

// TokenClaims identidad recuperada de un token válido.
type TokenClaims struct {
	Subject   string
	ID        string
	ExpiresAt time.Time
}

// TokenService hashea/verifica passwords y emite/verifica bearer tokens. Sin estado: no requiere locks.
type TokenService struct {
	cfg TokenConfig
}

// NewTokenService construye el servicio de tokens.
func NewTokenService(cfg TokenConfig) *TokenService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &TokenService{cfg: cfg}
}

// HashPassword genera un hash bcrypt con salt nuevo en cada llamada.
func (s *TokenService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.cfg.BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword indica si plain produjo hash. Un hash malformado devuelve false.
func (s *TokenService) VerifyPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IssueToken emite un token para subject con la vida por defecto.
func (s *TokenService) IssueToken(subject string) (*IssuedToken, error) {
	return s.IssueTokenWithTTL(subject, s.cfg.DefaultTTL)
}

// IssueTokenWithTTL emite un token con expiración now+ttl; ttl <= 0 produce un token ya expirado.
func (s *TokenService) IssueTokenWithTTL(subject string, ttl time.Duration) (*IssuedToken, error) {
	signed, claims, err := jwt.Generate(s.cfg.Secret, subject, s.cfg.Issuer, ttl)
	if err != nil {
		return nil, err
	}
	return &IssuedToken{
		Token:     signed,
		ID:        claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// DecodeToken verifica firma y expiración. ok=false para cualquier token inválido, sin error.
func (s *TokenService) DecodeToken(token string) (*TokenClaims, bool) {
	claims, err := s.decode(token)
	return claims, err == nil
}

func (s *TokenService) decode(token string) (*TokenClaims, error) {
	claims, err := jwt.Parse(s.cfg.Secret, s.cfg.Issuer, token)
	if err != nil {
		return nil, err
	}
	return &TokenClaims{
		Subject:   claims.Subject,
		ID:        claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
