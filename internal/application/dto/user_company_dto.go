package dto

import "time"

// CreateUserCompanyRequest entrada para vincular um usuário a uma empresa.
type CreateUserCompanyRequest struct {
	UserID    string `json:"userId" validate:"required,uuid"`
	CompanyID string `json:"companyId" validate:"required,uuid"`
}

// UserCompanyResponse saída de um vínculo. Company vem embutida porque o
// cliente usa a primeira associação para definir a empresa ativa no login.
type UserCompanyResponse struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	CompanyID string           `json:"companyId"`
	Company   *CompanyResponse `json:"company,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}
