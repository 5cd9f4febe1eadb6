package screen_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pedrohss2/cardapio-front/internal/admin/screen"
	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/client"
)

// fakeAPI backend em memória com os endpoints de categoria e produto.
// Conta os GETs de lista para provar que as telas nunca refazem o fetch
// após uma mutação.
type fakeAPI struct {
	mu         sync.Mutex
	categories []dto.CategoryResponse
	products   []dto.ProductResponse
	listGets   int
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/category", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			f.listGets++
			_ = json.NewEncoder(w).Encode(f.categories)
		case http.MethodPost:
			var in dto.CreateCategoryRequest
			_ = json.NewDecoder(r.Body).Decode(&in)
			created := dto.CategoryResponse{ID: uuid.New().String(), Name: in.Name}
			f.categories = append(f.categories, created)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(created)
		}
	})
	mux.HandleFunc("/category/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/category/")
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodPut:
			var in dto.UpdateCategoryRequest
			_ = json.NewDecoder(r.Body).Decode(&in)
			for i := range f.categories {
				if f.categories[i].ID == id {
					f.categories[i].Name = in.Name
					_ = json.NewEncoder(w).Encode(f.categories[i])
					return
				}
			}
			f.notFound(w, "categoria não encontrada")
		case http.MethodDelete:
			for i := range f.categories {
				if f.categories[i].ID == id {
					f.categories = append(f.categories[:i], f.categories[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			f.notFound(w, "categoria não encontrada")
		}
	})
	mux.HandleFunc("/product", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			f.listGets++
			_ = json.NewEncoder(w).Encode(f.products)
		case http.MethodPost:
			var in dto.CreateProductRequest
			_ = json.NewDecoder(r.Body).Decode(&in)
			created := dto.ProductResponse{
				ID:         uuid.New().String(),
				Name:       in.Name,
				Price:      in.Price,
				CategoryID: in.CategoryID,
			}
			f.products = append(f.products, created)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(created)
		}
	})
	mux.HandleFunc("/product/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/product/")
		f.mu.Lock()
		defer f.mu.Unlock()
		if r.Method == http.MethodDelete {
			for i := range f.products {
				if f.products[i].ID == id {
					f.products = append(f.products[:i], f.products[i+1:]...)
					w.WriteHeader(http.StatusNoContent)
					return
				}
			}
			f.notFound(w, "produto não encontrado")
		}
	})
	return mux
}

func (f *fakeAPI) notFound(w http.ResponseWriter, msg string) {
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "NOT_FOUND", Message: msg})
}

func (f *fakeAPI) listGetCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listGets
}

func newCategoryScreen(t *testing.T) (*screen.CategoryScreen, *fakeAPI, func()) {
	t.Helper()
	fake := &fakeAPI{}
	srv := httptest.NewServer(fake.handler())
	s := screen.NewCategoryScreen(client.NewCategoryService(client.New(srv.URL)))
	return s, fake, srv.Close
}

func newProductScreen(t *testing.T, fake *fakeAPI) (*screen.ProductScreen, func()) {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	api := client.New(srv.URL)
	s := screen.NewProductScreen(client.NewProductService(api), client.NewCategoryService(api), srv.URL)
	return s, srv.Close
}

// Criar acrescenta exatamente um item à lista local, sem novo fetch.
func TestCategoryScreen_CriarMutaListaLocal(t *testing.T) {
	s, fake, done := newCategoryScreen(t)
	defer done()

	require.Equal(t, screen.PhaseIdle, s.Phase())
	require.NoError(t, s.Load(context.Background()))
	require.Equal(t, screen.PhaseReady, s.Phase())
	gets := fake.listGetCount()

	created, err := s.Create(context.Background(), "Bebidas")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Bebidas", items[0].Name)
	assert.Equal(t, gets, fake.listGetCount(), "a mutação não pode refazer o fetch da lista")
}

// Renomear substitui o item correspondente, preservando os demais.
func TestCategoryScreen_AtualizarSubstituiItem(t *testing.T) {
	s, _, done := newCategoryScreen(t)
	defer done()

	require.NoError(t, s.Load(context.Background()))
	a, err := s.Create(context.Background(), "Bebidas")
	require.NoError(t, err)
	_, err = s.Create(context.Background(), "Sobremesas")
	require.NoError(t, err)

	_, err = s.Update(context.Background(), a.ID, "Drinks")
	require.NoError(t, err)

	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Drinks", items[0].Name)
	assert.Equal(t, "Sobremesas", items[1].Name)
}

// Deletar remove exatamente o id pedido; repetir o delete falha e deixa a
// lista exatamente como estava.
func TestCategoryScreen_DeletarRemoveExatamenteUm(t *testing.T) {
	s, _, done := newCategoryScreen(t)
	defer done()

	require.NoError(t, s.Load(context.Background()))
	a, err := s.Create(context.Background(), "Bebidas")
	require.NoError(t, err)
	b, err := s.Create(context.Background(), "Sobremesas")
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), a.ID))
	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)

	err = s.Delete(context.Background(), a.ID)
	require.Error(t, err, "repetir o delete do mesmo id deve falhar")
	assert.Equal(t, "categoria não encontrada", err.Error())
	assert.Equal(t, items, s.Items(), "a falha não pode alterar a lista local")
}

// Mutação antes do Load é recusada.
func TestCategoryScreen_MutacaoAntesDoLoad(t *testing.T) {
	s, _, done := newCategoryScreen(t)
	defer done()

	_, err := s.Create(context.Background(), "Bebidas")
	assert.ErrorIs(t, err, screen.ErrNotLoaded)
}

// Uma segunda mutação é recusada enquanto a primeira está em voo.
func TestCategoryScreen_SubmittingSerializaMutacoes(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			close(entered)
			<-release
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(dto.CategoryResponse{ID: "c-1", Name: "Bebidas"})
			return
		}
		_ = json.NewEncoder(w).Encode([]dto.CategoryResponse{})
	}))
	defer srv.Close()

	s := screen.NewCategoryScreen(client.NewCategoryService(client.New(srv.URL)))
	require.NoError(t, s.Load(context.Background()))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.Create(context.Background(), "Bebidas")
		assert.NoError(t, err)
	}()

	<-entered
	_, err := s.Create(context.Background(), "Sobremesas")
	assert.ErrorIs(t, err, screen.ErrSubmitting, "mutação concorrente deve ser recusada")

	close(release)
	wg.Wait()
	assert.Len(t, s.Items(), 1)
}

// Preço formatado sempre com duas casas e prefixo R$.
func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "R$ 12.50", screen.FormatPrice(decimal.NewFromFloat(12.5)))
	assert.Equal(t, "R$ 9.90", screen.FormatPrice(decimal.NewFromFloat(9.9)))
	assert.Equal(t, "R$ 100.00", screen.FormatPrice(decimal.NewFromInt(100)))
}

// Produto com categoria inexistente exibe "N/A"; os demais exibem o nome.
func TestProductScreen_CategoriaPendenteViraNA(t *testing.T) {
	fake := &fakeAPI{
		categories: []dto.CategoryResponse{{ID: "cat-1", Name: "Bebidas"}},
		products: []dto.ProductResponse{
			{ID: "p-1", Name: "Suco", Price: decimal.NewFromFloat(12.5), CategoryID: "cat-1", Image: "suco.png"},
			{ID: "p-2", Name: "Bolo", Price: decimal.NewFromFloat(8), CategoryID: "cat-excluida"},
		},
	}
	s, done := newProductScreen(t, fake)
	defer done()

	require.NoError(t, s.Load(context.Background()))

	rows := s.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Bebidas", rows[0].CategoryLabel)
	assert.Equal(t, "R$ 12.50", rows[0].PriceLabel)
	assert.True(t, strings.HasSuffix(rows[0].ImageURL, "/uploads/suco.png"))
	assert.Equal(t, "N/A", rows[1].CategoryLabel, "categoria excluída deve virar N/A")
	assert.Empty(t, rows[1].ImageURL, "produto sem imagem não tem URL")

	assert.Equal(t, "N/A", s.CategoryLabel("qualquer-outra"))
}

// Deletar produto remove exatamente um; repetir falha com a lista intacta.
func TestProductScreen_DeletarRemoveExatamenteUm(t *testing.T) {
	fake := &fakeAPI{
		products: []dto.ProductResponse{
			{ID: "p-1", Name: "Suco", Price: decimal.NewFromFloat(12.5)},
			{ID: "p-2", Name: "Bolo", Price: decimal.NewFromFloat(8)},
		},
	}
	s, done := newProductScreen(t, fake)
	defer done()

	require.NoError(t, s.Load(context.Background()))
	require.NoError(t, s.Delete(context.Background(), "p-1"))

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "p-2", rows[0].Product.ID)

	err := s.Delete(context.Background(), "p-1")
	require.Error(t, err)
	assert.Equal(t, "produto não encontrado", err.Error())
	assert.Len(t, s.Rows(), 1, "a falha não pode alterar a lista local")
}

// Criar produto sem imagem manda JSON e acrescenta à lista local.
func TestProductScreen_CriarSemImagem(t *testing.T) {
	fake := &fakeAPI{}
	s, done := newProductScreen(t, fake)
	defer done()

	require.NoError(t, s.Load(context.Background()))
	gets := fake.listGetCount()

	created, err := s.Create(context.Background(), screen.ProductInput{
		Name:  "X-Burguer",
		Price: decimal.NewFromFloat(25.9),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Len(t, s.Rows(), 1)
	assert.Equal(t, gets, fake.listGetCount(), "a mutação não pode refazer o fetch da lista")
}
