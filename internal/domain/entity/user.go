package entity

import "time"

// User credencial de acceso a la API (corretor/operador).
type User struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
