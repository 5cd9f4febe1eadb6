package entity

import "time"

// Company representa uma loja/tenant do sistema. Cada sessão administra
// exatamente uma empresa ativa; categorias e produtos pertencem a ela.
type Company struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
