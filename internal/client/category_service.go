package client

import (
	"context"
	"net/http"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
)

// CategoryService operações de categoria da API.
type CategoryService struct {
	api *Client
}

// NewCategoryService constrói o service sobre o cliente compartilhado.
func NewCategoryService(api *Client) *CategoryService {
	return &CategoryService{api: api}
}

// Create cria uma categoria.
func (s *CategoryService) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	payload, err := JSONPayload(in)
	if err != nil {
		return nil, wrap(err, "Erro ao criar a categoria")
	}
	var out dto.CategoryResponse
	if err := s.api.Do(ctx, http.MethodPost, "/category", payload, &out); err != nil {
		return nil, wrap(err, "Erro ao criar a categoria")
	}
	return &out, nil
}

// List lista as categorias da empresa autenticada.
func (s *CategoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	var out []dto.CategoryResponse
	if err := s.api.Do(ctx, http.MethodGet, "/category", nil, &out); err != nil {
		return nil, wrap(err, "Erro ao obter as categorias")
	}
	return out, nil
}

// Update renomeia uma categoria.
func (s *CategoryService) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	payload, err := JSONPayload(in)
	if err != nil {
		return nil, wrap(err, "Erro ao atualizar a categoria")
	}
	var out dto.CategoryResponse
	if err := s.api.Do(ctx, http.MethodPut, "/category/"+id, payload, &out); err != nil {
		return nil, wrap(err, "Erro ao atualizar a categoria")
	}
	return &out, nil
}

// Delete remove uma categoria.
func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.api.Do(ctx, http.MethodDelete, "/category/"+id, nil, nil); err != nil {
		return wrap(err, "Erro ao deletar a categoria")
	}
	return nil
}
