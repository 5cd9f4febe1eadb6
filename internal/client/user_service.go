package client

import (
	"context"
	"net/http"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
)

// UserService operações de usuário e de vínculo usuário-empresa da API.
type UserService struct {
	api *Client
}

// NewUserService constrói o service sobre o cliente compartilhado.
func NewUserService(api *Client) *UserService {
	return &UserService{api: api}
}

// Register cadastra um usuário.
func (s *UserService) Register(ctx context.Context, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	payload, err := JSONPayload(in)
	if err != nil {
		return nil, wrap(err, "Erro ao criar o usuário")
	}
	var out dto.UserResponse
	if err := s.api.Do(ctx, http.MethodPost, "/users/register", payload, &out); err != nil {
		return nil, wrap(err, "Erro ao criar o usuário")
	}
	return &out, nil
}

// Login autentica o usuário e devolve o token de acesso.
func (s *UserService) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	payload, err := JSONPayload(in)
	if err != nil {
		return nil, wrap(err, "Erro ao fazer login")
	}
	var out dto.LoginResponse
	if err := s.api.Do(ctx, http.MethodPost, "/auth/login", payload, &out); err != nil {
		return nil, wrap(err, "Erro ao fazer login")
	}
	return &out, nil
}

// Companies lista os vínculos usuário-empresa de um usuário, com a empresa
// embutida. O login usa o primeiro vínculo como empresa ativa.
func (s *UserService) Companies(ctx context.Context, userID string) ([]dto.UserCompanyResponse, error) {
	var out []dto.UserCompanyResponse
	if err := s.api.Do(ctx, http.MethodGet, "/user-company/user/"+userID, nil, &out); err != nil {
		return nil, wrap(err, "Erro ao obter as empresas do usuário")
	}
	return out, nil
}

// UsersByCompany lista os usuários vinculados a uma empresa.
func (s *UserService) UsersByCompany(ctx context.Context, companyID string) ([]dto.UserResponse, error) {
	var out []dto.UserResponse
	if err := s.api.Do(ctx, http.MethodGet, "/user-company/company/"+companyID, nil, &out); err != nil {
		return nil, wrap(err, "Erro ao obter os usuários da empresa")
	}
	return out, nil
}

// Associate vincula um usuário a uma empresa.
func (s *UserService) Associate(ctx context.Context, in dto.CreateUserCompanyRequest) (*dto.UserCompanyResponse, error) {
	payload, err := JSONPayload(in)
	if err != nil {
		return nil, wrap(err, "Erro ao vincular o usuário à empresa")
	}
	var out dto.UserCompanyResponse
	if err := s.api.Do(ctx, http.MethodPost, "/user-company", payload, &out); err != nil {
		return nil, wrap(err, "Erro ao vincular o usuário à empresa")
	}
	return &out, nil
}
