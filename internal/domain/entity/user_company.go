package entity

import "time"

// UserCompany vincula um usuário a uma empresa. No login, a primeira
// associação do usuário define a empresa ativa da sessão.
type UserCompany struct {
	ID        string
	UserID    string
	CompanyID string
	CreatedAt time.Time
}
