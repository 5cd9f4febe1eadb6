package entity

import "time"

// Category representa uma seção do cardápio (Bebidas, Lanches, ...).
type Category struct {
	ID        string
	CompanyID string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
