package entity

import "time"

// Client representa un comprador (persona física identificada por CPF).
type Client struct {
	ID         string
	Name       string
	NationalID string // CPF, único e inmutable
	Email      string
	Phone      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
