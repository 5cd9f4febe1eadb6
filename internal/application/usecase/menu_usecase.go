package usecase

import (
	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/domain"
	"github.com/Pedrohss2/cardapio-front/internal/domain/repository"
)

// MenuUseCase monta o cardápio público de uma empresa para o visitante não
// autenticado: categorias na ordem de criação, cada uma com seus produtos.
type MenuUseCase struct {
	companyRepo  repository.CompanyRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewMenuUseCase constrói o caso de uso.
func NewMenuUseCase(companyRepo repository.CompanyRepository, categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *MenuUseCase {
	return &MenuUseCase{companyRepo: companyRepo, categoryRepo: categoryRepo, productRepo: productRepo}
}

// Menu devolve o cardápio da empresa. Produtos com categoria excluída vão
// para Uncategorized em vez de sumirem do cardápio.
func (uc *MenuUseCase) Menu(companyID string) (*dto.MenuResponse, error) {
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	categories, err := uc.categoryRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]dto.ProductResponse, len(categories))
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}
	var uncategorized []dto.ProductResponse
	for _, p := range products {
		resp := *toProductResponse(p)
		if known[p.CategoryID] {
			byCategory[p.CategoryID] = append(byCategory[p.CategoryID], resp)
		} else {
			uncategorized = append(uncategorized, resp)
		}
	}

	sections := make([]dto.MenuSection, 0, len(categories))
	for _, c := range categories {
		sections = append(sections, dto.MenuSection{
			Category: *toCategoryResponse(c),
			Products: byCategory[c.ID],
		})
	}
	return &dto.MenuResponse{
		Company:       *entityToCompanyResponse(company),
		Sections:      sections,
		Uncategorized: uncategorized,
	}, nil
}
