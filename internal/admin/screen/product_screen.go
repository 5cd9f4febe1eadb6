package screen

import (
	"context"
	"io"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/client"
)

// ProductInput dados do formulário de produto. Image nil significa sem
// imagem nova: o create manda JSON puro e o update preserva a atual.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  string
	ImageName   string
	Image       io.Reader
}

func (in ProductInput) payload() (*client.Payload, error) {
	if in.Image == nil {
		return client.JSONPayload(dto.CreateProductRequest{
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			CategoryID:  in.CategoryID,
		})
	}
	return client.MultipartPayload(map[string]string{
		"name":        in.Name,
		"description": in.Description,
		"price":       in.Price.String(),
		"categoryId":  in.CategoryID,
	}, in.ImageName, in.Image)
}

// ProductRow linha pronta para exibição: preço formatado, rótulo da
// categoria e URL pública da imagem já resolvidos.
type ProductRow struct {
	Product       dto.ProductResponse
	PriceLabel    string
	CategoryLabel string
	ImageURL      string
}

// ProductScreen tela de gerenciamento de produtos. Carrega produtos e
// categorias juntos porque a lista exibe o nome da categoria de cada
// produto; produto apontando para categoria inexistente exibe "N/A".
type ProductScreen struct {
	svc        *client.ProductService
	categories *client.CategoryService
	baseURL    string

	mu         sync.Mutex
	phase      Phase
	submitting bool
	items      []dto.ProductResponse
	labels     map[string]string
}

// NewProductScreen constrói a tela no estado idle.
func NewProductScreen(svc *client.ProductService, categories *client.CategoryService, baseURL string) *ProductScreen {
	return &ProductScreen{svc: svc, categories: categories, baseURL: baseURL}
}

// Phase devolve o estado de carga atual.
func (s *ProductScreen) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Load faz a carga inicial de produtos e categorias.
func (s *ProductScreen) Load(ctx context.Context) error {
	s.mu.Lock()
	s.phase = PhaseLoading
	s.mu.Unlock()

	items, err := s.svc.List(ctx)
	if err != nil {
		s.mu.Lock()
		s.phase = PhaseIdle
		s.mu.Unlock()
		return err
	}
	cats, err := s.categories.List(ctx)
	if err != nil {
		s.mu.Lock()
		s.phase = PhaseIdle
		s.mu.Unlock()
		return err
	}

	labels := make(map[string]string, len(cats))
	for _, c := range cats {
		labels[c.ID] = c.Name
	}
	s.mu.Lock()
	s.items = items
	s.labels = labels
	s.phase = PhaseReady
	s.mu.Unlock()
	return nil
}

// CategoryLabel devolve o nome da categoria, ou "N/A" quando o produto
// referencia uma categoria que não existe mais.
func (s *ProductScreen) CategoryLabel(categoryID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name, ok := s.labels[categoryID]; ok {
		return name
	}
	return "N/A"
}

// Rows devolve as linhas prontas para exibição.
func (s *ProductScreen) Rows() []ProductRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]ProductRow, 0, len(s.items))
	for _, p := range s.items {
		label, ok := s.labels[p.CategoryID]
		if !ok {
			label = "N/A"
		}
		rows = append(rows, ProductRow{
			Product:       p,
			PriceLabel:    FormatPrice(p.Price),
			CategoryLabel: label,
			ImageURL:      ImageURL(s.baseURL, p.Image),
		})
	}
	return rows
}

func (s *ProductScreen) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseReady {
		return ErrNotLoaded
	}
	if s.submitting {
		return ErrSubmitting
	}
	s.submitting = true
	return nil
}

func (s *ProductScreen) end() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

// Create cria um produto e o acrescenta ao fim da lista local.
func (s *ProductScreen) Create(ctx context.Context, in ProductInput) (*dto.ProductResponse, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	payload, err := in.payload()
	if err != nil {
		return nil, err
	}
	created, err := s.svc.Create(ctx, payload)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *created)
	s.mu.Unlock()
	return created, nil
}

// Update atualiza um produto e substitui o item correspondente da lista.
func (s *ProductScreen) Update(ctx context.Context, id string, in ProductInput) (*dto.ProductResponse, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	payload, err := in.payload()
	if err != nil {
		return nil, err
	}
	updated, err := s.svc.Update(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// Delete remove um produto e o filtra da lista local.
func (s *ProductScreen) Delete(ctx context.Context, id string) error {
	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	if err := s.svc.Delete(ctx, id); err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}
