package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para registrar una venta.
type CreateSaleRequest struct {
	ClientID    string          `json:"client_id" validate:"required,uuid"`
	UnitID      string          `json:"unit_id" validate:"required,uuid"`
	SaleValue   decimal.Decimal `json:"sale_value" validate:"gt=0"`
	DownPayment decimal.Decimal `json:"down_payment" validate:"gt=0"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID          string          `json:"id"`
	ClientID    string          `json:"client_id"`
	UnitID      string          `json:"unit_id"`
	SaleValue   decimal.Decimal `json:"sale_value"`
	DownPayment decimal.Decimal `json:"down_payment"`
	SoldAt      time.Time       `json:"sold_at"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
