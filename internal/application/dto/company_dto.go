package dto

import "time"

// CreateCompanyRequest entrada para cadastrar uma empresa. Quando OwnerName e
// OwnerPassword vêm preenchidos, o cadastro também cria o usuário dono e o
// vínculo usuário-empresa em uma única transação (fluxo de onboarding).
type CreateCompanyRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	OwnerName     string `json:"ownerName"`
	OwnerPassword string `json:"ownerPassword"`
}

// UpdateCompanyRequest entrada para atualizar uma empresa (campos opcionais).
type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// CompanyResponse saída de uma empresa.
type CompanyResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
