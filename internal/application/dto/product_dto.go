package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para criar um produto. Em requisições
// multipart os mesmos campos chegam como form values e a imagem como arquivo.
type CreateProductRequest struct {
	Name        string          `json:"name" form:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" form:"description"`
	Price       decimal.Decimal `json:"price" form:"price"`
	CategoryID  string          `json:"categoryId" form:"categoryId"`
}

// UpdateProductRequest entrada para atualizar um produto (campos opcionais).
type UpdateProductRequest struct {
	Name        *string          `json:"name" form:"name"`
	Description *string          `json:"description" form:"description"`
	Price       *decimal.Decimal `json:"price" form:"price"`
	CategoryID  *string          `json:"categoryId" form:"categoryId"`
}

// ProductResponse saída de um produto. Image é o nome do arquivo em uploads.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	CategoryID  string          `json:"categoryId"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
