package client

import (
	"context"
	"net/http"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
)

// CompanyService operações de empresa da API.
type CompanyService struct {
	api *Client
}

// NewCompanyService constrói o service sobre o cliente compartilhado.
func NewCompanyService(api *Client) *CompanyService {
	return &CompanyService{api: api}
}

// Create cadastra uma empresa, opcionalmente com o usuário dono.
func (s *CompanyService) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	payload, err := JSONPayload(in)
	if err != nil {
		return nil, wrap(err, "Erro ao criar empresa")
	}
	var out dto.CompanyResponse
	if err := s.api.Do(ctx, http.MethodPost, "/company", payload, &out); err != nil {
		return nil, wrap(err, "Erro ao criar empresa")
	}
	return &out, nil
}

// GetByID busca uma empresa. Falha devolve nil sem erro: a tela que usa
// essa consulta trata ausência como estado vazio, não como falha.
func (s *CompanyService) GetByID(ctx context.Context, id string) *dto.CompanyResponse {
	var out dto.CompanyResponse
	if err := s.api.Do(ctx, http.MethodGet, "/company/"+id, nil, &out); err != nil {
		return nil
	}
	return &out
}

// Update atualiza os dados cadastrais de uma empresa.
func (s *CompanyService) Update(ctx context.Context, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	payload, err := JSONPayload(in)
	if err != nil {
		return nil, wrap(err, "Erro ao atualizar empresa")
	}
	var out dto.CompanyResponse
	if err := s.api.Do(ctx, http.MethodPut, "/company/"+id, payload, &out); err != nil {
		return nil, wrap(err, "Erro ao atualizar empresa")
	}
	return &out, nil
}
