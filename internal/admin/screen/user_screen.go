package screen

import (
	"context"
	"errors"
	"sync"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/client"
)

// ErrPasswordMismatch validação local do formulário de usuário; nenhuma
// chamada de rede acontece quando a confirmação de senha não bate.
var ErrPasswordMismatch = errors.New("as senhas não coincidem")

// UserScreen tela de equipe: usuários vinculados à empresa ativa.
type UserScreen struct {
	users     *client.UserService
	companyID string

	mu         sync.Mutex
	phase      Phase
	submitting bool
	items      []dto.UserResponse
}

// NewUserScreen constrói a tela para a empresa ativa da sessão.
func NewUserScreen(users *client.UserService, companyID string) *UserScreen {
	return &UserScreen{users: users, companyID: companyID}
}

// Phase devolve o estado de carga atual.
func (s *UserScreen) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Items devolve uma cópia da lista em memória.
func (s *UserScreen) Items() []dto.UserResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]dto.UserResponse, len(s.items))
	copy(out, s.items)
	return out
}

// Load faz a carga inicial da equipe.
func (s *UserScreen) Load(ctx context.Context) error {
	s.mu.Lock()
	s.phase = PhaseLoading
	s.mu.Unlock()

	items, err := s.users.UsersByCompany(ctx, s.companyID)
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

func (s *UserScreen) begin() error {
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

func (s *UserScreen) end() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
}

// Create valida a confirmação de senha, cadastra o usuário, vincula-o à
// empresa ativa e o acrescenta à lista local.
func (s *UserScreen) Create(ctx context.Context, name, email, password, confirm string) (*dto.UserResponse, error) {
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	if err := s.begin(); err != nil {
		return nil, err
	}
	defer s.end()

	created, err := s.users.Register(ctx, dto.RegisterUserRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	if _, err := s.users.Associate(ctx, dto.CreateUserCompanyRequest{
		UserID:    created.ID,
		CompanyID: s.companyID,
	}); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.items = append(s.items, *created)
	s.mu.Unlock()
	return created, nil
}
