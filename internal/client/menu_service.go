package client

import (
	"context"
	"net/http"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
)

// MenuService consulta o cardápio público de uma empresa.
type MenuService struct {
	api *Client
}

// NewMenuService constrói o service sobre o cliente compartilhado.
func NewMenuService(api *Client) *MenuService {
	return &MenuService{api: api}
}

// Get monta o cardápio público da empresa.
func (s *MenuService) Get(ctx context.Context, companyID string) (*dto.MenuResponse, error) {
	var out dto.MenuResponse
	if err := s.api.Do(ctx, http.MethodGet, "/menu/"+companyID, nil, &out); err != nil {
		return nil, wrap(err, "Erro ao carregar o cardápio")
	}
	return &out, nil
}
