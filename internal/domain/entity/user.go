package entity

import "time"

// User representa um operador do sistema. O vínculo com empresas é feito
// via UserCompany; um usuário pode pertencer a mais de uma empresa.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // hash bcrypt, nunca em texto plano após persistir
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
