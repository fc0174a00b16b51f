package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	Units              UnitStatusCountDTO `json:"units"`
	ActiveReservations int                `json:"active_reservations"`
	Today              SalesPeriodDTO     `json:"today"`
	Month              SalesPeriodDTO     `json:"month"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Outubro 2026"
}

// UnitStatusCountDTO unidades del catálogo por status.
type UnitStatusCountDTO struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Sold      int `json:"sold"`
}

// SalesPeriodDTO ventas de un período.
type SalesPeriodDTO struct {
	Count       int             `json:"count"`
	TotalValue  decimal.Decimal `json:"total_value"`
	DownPayment decimal.Decimal `json:"down_payment"`
	Balance     decimal.Decimal `json:"balance"` // total_value - down_payment
}
