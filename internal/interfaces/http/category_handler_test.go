package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/application/usecase"
	"github.com/Pedrohss2/cardapio-front/internal/domain/entity"
	apphttp "github.com/Pedrohss2/cardapio-front/internal/interfaces/http"
)

// fakeCategoryRepo implementação em memória do porto de categorias.
type fakeCategoryRepo struct {
	items []*entity.Category
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	cp := *c
	r.items = append(r.items, &cp)
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	for _, it := range r.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) Update(c *entity.Category) error {
	for i, it := range r.items {
		if it.ID == c.ID {
			cp := *c
			r.items[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeCategoryRepo) ListByCompany(companyID string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, it := range r.items {
		if it.CompanyID == companyID {
			cp := *it
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	kept := r.items[:0]
	for _, it := range r.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

func buildCategoryApp(repo *fakeCategoryRepo) *fiber.App {
	app := fiber.New()
	h := apphttp.NewCategoryHandler(usecase.NewCategoryUseCase(repo))
	app.Post("/category", apphttp.AuthMiddleware(testJWTSecret), h.Create)
	app.Get("/category", apphttp.AuthMiddleware(testJWTSecret), h.List)
	app.Delete("/category/:id", apphttp.AuthMiddleware(testJWTSecret), h.Delete)
	return app
}

// Criar "Bebidas" e listar: a lista deve conter exatamente uma categoria,
// com id gerado pelo servidor e o nome enviado.
func TestCategoryHandler_CriarEListar(t *testing.T) {
	repo := &fakeCategoryRepo{}
	app := buildCategoryApp(repo)

	body, _ := json.Marshal(map[string]string{"name": "Bebidas"})
	req := httptest.NewRequest(http.MethodPost, "/category", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created dto.CategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID, "o id deve ser gerado pelo servidor")
	assert.Equal(t, "Bebidas", created.Name)
	assert.Equal(t, testCompanyID, created.CompanyID, "a categoria deve pertencer à empresa do token")

	req = httptest.NewRequest(http.MethodGet, "/category", nil)
	req.Header.Set("Authorization", validToken(t))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []dto.CategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1, "a lista deve conter exatamente a categoria criada")
	assert.Equal(t, created.ID, list[0].ID)
	assert.Equal(t, "Bebidas", list[0].Name)
}

// Sem token a rota protegida recusa antes de chegar no use case.
func TestCategoryHandler_SemToken_Retorna401(t *testing.T) {
	repo := &fakeCategoryRepo{}
	app := buildCategoryApp(repo)

	body, _ := json.Marshal(map[string]string{"name": "Bebidas"})
	req := httptest.NewRequest(http.MethodPost, "/category", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Empty(t, repo.items, "nada deve ser persistido sem token")
}

// Deletar categoria inexistente devolve 404.
func TestCategoryHandler_DeletarInexistente_Retorna404(t *testing.T) {
	app := buildCategoryApp(&fakeCategoryRepo{})

	req := httptest.NewRequest(http.MethodDelete, "/category/nao-existe", nil)
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
