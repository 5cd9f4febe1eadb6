package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pedrohss2/cardapio-front/internal/application/usecase"
	"github.com/Pedrohss2/cardapio-front/internal/domain"
	"github.com/Pedrohss2/cardapio-front/internal/domain/entity"
)

type fakeCompanyRepo struct {
	companies map[string]*entity.Company
}

func (r *fakeCompanyRepo) Create(c *entity.Company) error { return nil }
func (r *fakeCompanyRepo) Update(c *entity.Company) error { return nil }
func (r *fakeCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.companies[id], nil
}

type fakeCategoryListRepo struct {
	items []*entity.Category
}

func (r *fakeCategoryListRepo) Create(*entity.Category) error { return nil }
func (r *fakeCategoryListRepo) GetByID(string) (*entity.Category, error) { return nil, nil }
func (r *fakeCategoryListRepo) Update(*entity.Category) error { return nil }
func (r *fakeCategoryListRepo) Delete(string) error { return nil }
func (r *fakeCategoryListRepo) ListByCompany(string) ([]*entity.Category, error) {
	return r.items, nil
}

type fakeProductListRepo struct {
	items []*entity.Product
}

func (r *fakeProductListRepo) Create(*entity.Product) error { return nil }
func (r *fakeProductListRepo) GetByID(string) (*entity.Product, error) { return nil, nil }
func (r *fakeProductListRepo) Update(*entity.Product) error { return nil }
func (r *fakeProductListRepo) Delete(string) error { return nil }
func (r *fakeProductListRepo) ListByCompany(string) ([]*entity.Product, error) {
	return r.items, nil
}

// O cardápio agrupa os produtos por categoria na ordem das categorias;
// produto de categoria excluída vai para Uncategorized, não some.
func TestMenu_AgrupaPorCategoria(t *testing.T) {
	uc := usecase.NewMenuUseCase(
		&fakeCompanyRepo{companies: map[string]*entity.Company{
			"c-1": {ID: "c-1", Name: "Cantina da Praça"},
		}},
		&fakeCategoryListRepo{items: []*entity.Category{
			{ID: "cat-1", CompanyID: "c-1", Name: "Bebidas"},
			{ID: "cat-2", CompanyID: "c-1", Name: "Sobremesas"},
		}},
		&fakeProductListRepo{items: []*entity.Product{
			{ID: "p-1", CompanyID: "c-1", CategoryID: "cat-1", Name: "Suco", Price: decimal.NewFromFloat(12.5)},
			{ID: "p-2", CompanyID: "c-1", CategoryID: "cat-2", Name: "Bolo", Price: decimal.NewFromFloat(8)},
			{ID: "p-3", CompanyID: "c-1", CategoryID: "cat-excluida", Name: "Órfão", Price: decimal.NewFromFloat(5)},
		}},
	)

	menu, err := uc.Menu("c-1")
	require.NoError(t, err)
	assert.Equal(t, "Cantina da Praça", menu.Company.Name)

	require.Len(t, menu.Sections, 2)
	assert.Equal(t, "Bebidas", menu.Sections[0].Category.Name)
	require.Len(t, menu.Sections[0].Products, 1)
	assert.Equal(t, "Suco", menu.Sections[0].Products[0].Name)
	assert.Equal(t, "Sobremesas", menu.Sections[1].Category.Name)

	require.Len(t, menu.Uncategorized, 1, "produto de categoria excluída vai para Uncategorized")
	assert.Equal(t, "Órfão", menu.Uncategorized[0].Name)
}

// Empresa inexistente devolve ErrNotFound.
func TestMenu_EmpresaInexistente(t *testing.T) {
	uc := usecase.NewMenuUseCase(
		&fakeCompanyRepo{companies: map[string]*entity.Company{}},
		&fakeCategoryListRepo{},
		&fakeProductListRepo{},
	)

	_, err := uc.Menu("nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
