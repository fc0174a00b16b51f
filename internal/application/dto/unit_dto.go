package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateUnitRequest entrada para catalogar una unidad. Siempre nace AVAILABLE.
type CreateUnitRequest struct {
	Number string          `json:"number" validate:"required,min=1,max=10"`
	Block  string          `json:"block" validate:"required,min=1,max=10"`
	Floor  int             `json:"floor" validate:"min=0"`
	Rooms  int             `json:"rooms" validate:"min=1"`
	Area   decimal.Decimal `json:"area" validate:"gt=0"`
	Price  decimal.Decimal `json:"price" validate:"gt=0"`
}

// UpdateUnitRequest entrada para actualizar campos descriptivos (el status no se edita aquí).
type UpdateUnitRequest struct {
	Number *string          `json:"number" validate:"omitempty,min=1,max=10"`
	Block  *string          `json:"block" validate:"omitempty,min=1,max=10"`
	Floor  *int             `json:"floor" validate:"omitempty,min=0"`
	Rooms  *int             `json:"rooms" validate:"omitempty,min=1"`
	Area   *decimal.Decimal `json:"area" validate:"omitempty,gt=0"`
	Price  *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
}

// UnitResponse salida de una unidad.
type UnitResponse struct {
	ID        string          `json:"id"`
	Number    string          `json:"number"`
	Block     string          `json:"block"`
	Floor     int             `json:"floor"`
	Rooms     int             `json:"rooms"`
	Area      decimal.Decimal `json:"area"`
	Price     decimal.Decimal `json:"price"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UnitAvailabilityResponse resultado de la consulta de disponibilidad.
type UnitAvailabilityResponse struct {
	UnitID    string `json:"unit_id"`
	Status    string `json:"status"`
	Available bool   `json:"available"`
}
