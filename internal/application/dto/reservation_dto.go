package dto

import "time"

// CreateReservationRequest entrada para reservar una unidad.
type CreateReservationRequest struct {
	ClientID  string    `json:"client_id" validate:"required,uuid"`
	UnitID    string    `json:"unit_id" validate:"required,uuid"`
	ExpiresAt time.Time `json:"expires_at" validate:"required"`
}

// ReservationResponse salida de una reserva.
type ReservationResponse struct {
	ID         string    `json:"id"`
	ClientID   string    `json:"client_id"`
	UnitID     string    `json:"unit_id"`
	ReservedAt time.Time `json:"reserved_at"`
	ExpiresAt  time.Time `json:"expires_at"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
