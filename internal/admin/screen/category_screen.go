package screen

import (
	"context"
	"sync"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/client"
)

// CategoryScreen tela de gerenciamento de categorias.
type CategoryScreen struct {
	svc *client.CategoryService

	mu         sync.Mutex
	phase      Phase
	submitting bool
	items      []dto.CategoryResponse
}

// NewCategoryScreen constrói a tela no estado idle.
func NewCategoryScreen(svc *client.CategoryService) *CategoryScreen {
	return &CategoryScreen{svc: svc}
}

// Phase devolve o estado de carga atual.
func (s *CategoryScreen) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Items devolve uma cópia da lista em memória.
func (s *CategoryScreen) Items() []dto.CategoryResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dto.CategoryResponse, len(s.items))
	copy(out, s.items)
	return out
}

// Load faz a carga inicial da lista. Falha devolve a tela para idle, para
// que a carga possa ser tentada de novo.
func (s *CategoryScreen) Load(ctx context.Context) error {
	s.mu.Lock()
	s.phase = PhaseLoading
	s.mu.Unlock()

	items, err := s.svc.List(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.phase = PhaseIdle
		return err
	}
	s.items = items
	s.phase = PhaseReady
	return nil
}

// begin marca a tela como submitting; recusa se já houver mutação em voo.
func (s *CategoryScreen) begin() error {
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

func (s *CategoryScreen) end() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

// Create cria uma categoria e a acrescenta ao fim da lista local.
func (s *CategoryScreen) Create(ctx context.Context, name string) (*dto.CategoryResponse, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	created, err := s.svc.Create(ctx, dto.CreateCategoryRequest{Name: name})
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *created)
	s.mu.Unlock()
	return created, nil
}

// Update renomeia uma categoria e substitui o item correspondente da lista.
func (s *CategoryScreen) Update(ctx context.Context, id, name string) (*dto.CategoryResponse, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	updated, err := s.svc.Update(ctx, id, dto.UpdateCategoryRequest{Name: name})
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

// Delete remove uma categoria e a filtra da lista local. A confirmação do
// usuário acontece antes, na camada web; chegar aqui significa confirmado.
func (s *CategoryScreen) Delete(ctx context.Context, id string) error {
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
