package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale venta finalizada de una unidad a un cliente. Como máximo una por unidad.
type Sale struct {
	ID          string
	ClientID    string
	UnitID      string
	SaleValue   decimal.Decimal
	DownPayment decimal.Decimal
	SoldAt      time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
