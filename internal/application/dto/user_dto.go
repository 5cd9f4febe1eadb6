package dto

import "time"

// RegisterUserRequest entrada para cadastrar um usuário (password em texto, hasheado no use case).
type RegisterUserRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserResponse saída de um usuário (nunca inclui password).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse saída com o token de acesso. O cliente decodifica o sub do
// token para buscar as empresas do usuário.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
