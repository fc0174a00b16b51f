package entity

import "time"

// Reservation bloqueo temporal de una unidad para un cliente.
// ExpiresAt es informativo: ningún flujo expira reservas automáticamente.
type Reservation struct {
	ID         string
	ClientID   string
	UnitID     string
	ReservedAt time.Time
	ExpiresAt  time.Time
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
