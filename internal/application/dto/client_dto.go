package dto

import "time"

// CreateClientRequest entrada para registrar un cliente.
type CreateClientRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=255"`
	NationalID string `json:"national_id" validate:"required,len=11,numeric"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Phone      string `json:"phone" validate:"required,min=8,max=20"`
}

// UpdateClientRequest entrada para actualizar datos de contacto (el CPF es inmutable).
type UpdateClientRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email *string `json:"email" validate:"omitempty,email,max=255"`
	Phone *string `json:"phone" validate:"omitempty,min=8,max=20"`
}

// ClientResponse salida de un cliente.
type ClientResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	NationalID string    `json:"national_id"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
