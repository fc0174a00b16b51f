package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitStatus estado de disponibilidad de una unidad.
type UnitStatus string

// Estados válidos de Unit.
const (
	UnitStatusAvailable UnitStatus = "AVAILABLE"
	UnitStatusReserved  UnitStatus = "RESERVED"
	UnitStatusSold      UnitStatus = "SOLD"
)

// Valid indica si s es un estado conocido.
func (s UnitStatus) Valid() bool {
	switch s {
	case UnitStatusAvailable, UnitStatusReserved, UnitStatusSold:
		return true
	}
	return false
}

// Unit representa un apartamento del catálogo. Status solo lo modifican los flujos de reserva y venta.
type Unit struct {
	ID        string
	Number    string // único en todo el catálogo
	Block     string
	Floor     int
	Rooms     int
	Area      decimal.Decimal // m²
	Price     decimal.Decimal
	Status    UnitStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable indica si la unidad puede reservarse.
func (u *Unit) IsAvailable() bool { return u.Status == UnitStatusAvailable }

// CanBeSold indica si la unidad admite una venta (disponible o reservada).
func (u *Unit) CanBeSold() bool {
	return u.Status == UnitStatusAvailable || u.Status == UnitStatusReserved
}
