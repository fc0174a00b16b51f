package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/domain"
	"github.com/jhoicas/direcional-api/internal/domain/entity"
	"github.com/jhoicas/direcional-api/internal/domain/repository"
)

// TokenTypeBearer tipo de token devuelto en el login.
const TokenTypeBearer = "bearer"

// AuthUseCase casos de uso de autenticación: registro, login, logout y consulta de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	tokens   *TokenService
	revoked  RevocationList
}

// NewAuthUseCase construye el caso de uso de auth. revoked puede ser nil.
func NewAuthUseCase(userRepo repository.UserRepository, tokens *TokenService, revoked RevocationList) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokens: tokens, revoked: revoked}
}

// Register crea una credencial activa. Conflict si el username o el email ya existen.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict(domain.EntityUser, "username already exists")
	}
	existing, err = uc.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Conflict(domain.EntityUser, "email already exists")
	}

	hash, err := uc.tokens.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica username/password y emite un bearer token. Unauthorized ante cualquier fallo de credencial.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active || !uc.tokens.VerifyPassword(in.Password, user.PasswordHash) {
		return nil, domain.Unauthorized("incorrect username or password")
	}
	issued, err := uc.tokens.IssueToken(user.Username)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{
		AccessToken: issued.Token,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   issued.ExpiresAt,
	}, nil
}

// Logout revoca el token de la identidad hasta su expiración.
func (uc *AuthUseCase) Logout(ctx context.Context, id *Identity) error {
	if uc.revoked == nil || id == nil || id.Claims == nil {
		return nil
	}
	ttl := time.Until(id.Claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return uc.revoked.Revoke(ctx, id.Claims.ID, ttl)
}

// GetUser obtiene un usuario por ID.
func (uc *AuthUseCase) GetUser(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.NotFound(domain.EntityUser)
	}
	return toUserResponse(user), nil
}

// ToUserResponse adapta la entidad a la salida HTTP.
func ToUserResponse(u *entity.User) *dto.UserResponse { return toUserResponse(u) }

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
