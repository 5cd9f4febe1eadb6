package client

import (
	"context"
	"net/http"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
)

// ProductService operações de produto da API. Create e Update recebem um
// Payload já montado: JSON quando não há imagem, multipart quando há.
type ProductService struct {
	api *Client
}

// NewProductService constrói o service sobre o cliente compartilhado.
func NewProductService(api *Client) *ProductService {
	return &ProductService{api: api}
}

// Create cria um produto.
func (s *ProductService) Create(ctx context.Context, payload *Payload) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := s.api.Do(ctx, http.MethodPost, "/product", payload, &out); err != nil {
		return nil, wrap(err, "Erro ao criar o produto")
	}
	return &out, nil
}

// List lista os produtos da empresa autenticada.
func (s *ProductService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	var out []dto.ProductResponse
	if err := s.api.Do(ctx, http.MethodGet, "/product", nil, &out); err != nil {
		return nil, wrap(err, "Erro ao obter os produtos")
	}
	return out, nil
}

// GetByID obtém um produto.
func (s *ProductService) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := s.api.Do(ctx, http.MethodGet, "/product/"+id, nil, &out); err != nil {
		return nil, wrap(err, "Erro ao obter o produto")
	}
	return &out, nil
}

// Update atualiza um produto.
func (s *ProductService) Update(ctx context.Context, id string, payload *Payload) (*dto.ProductResponse, error) {
	var out dto.ProductResponse
	if err := s.api.Do(ctx, http.MethodPut, "/product/"+id, payload, &out); err != nil {
		return nil, wrap(err, "Erro ao atualizar o produto")
	}
	return &out, nil
}

// Delete remove um produto.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	if err := s.api.Do(ctx, http.MethodDelete, "/product/"+id, nil, nil); err != nil {
		return wrap(err, "Erro ao deletar o produto")
	}
	return nil
}
