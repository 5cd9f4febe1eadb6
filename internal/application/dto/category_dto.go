package dto

import "time"

// CreateCategoryRequest entrada para criar uma categoria do cardápio.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// UpdateCategoryRequest entrada para renomear uma categoria.
type UpdateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CategoryResponse saída de uma categoria.
type CategoryResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"companyId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
