package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um item do cardápio. Image é apenas o nome do arquivo
// gravado em uploads; a URL de exibição é montada pelo cliente.
// Excluir a categoria não remove o produto: CategoryID fica pendurado e o
// rótulo é exibido como "N/A".
type Product struct {
	ID          string
	CompanyID   string
	CategoryID  string
	Name        string
	Description string
	Price       decimal.Decimal
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
