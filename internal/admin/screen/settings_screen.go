package screen

import (
	"context"
	"sync"

	"github.com/Pedrohss2/cardapio-front/internal/admin/session"
	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/client"
)

// SettingsScreen tela de configurações da empresa ativa. Salvar atualiza a
// API e em seguida a empresa guardada na sessão, para que as outras telas
// enxerguem o novo nome sem relogar.
type SettingsScreen struct {
	companies *client.CompanyService
	sess      *session.Session

	mu         sync.Mutex
	submitting bool
}

// NewSettingsScreen constrói a tela sobre a sessão ativa.
func NewSettingsScreen(companies *client.CompanyService, sess *session.Session) *SettingsScreen {
	return &SettingsScreen{companies: companies, sess: sess}
}

// Company devolve a empresa ativa da sessão.
func (s *SettingsScreen) Company() *dto.CompanyResponse {
	return s.sess.Snapshot().Company
}

// Save atualiza os dados cadastrais da empresa ativa.
func (s *SettingsScreen) Save(ctx context.Context, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return nil, ErrSubmitting
	}
	s.submitting = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	company := s.sess.Snapshot().Company
	if company == nil {
		return nil, ErrNotLoaded
	}
	updated, err := s.companies.Update(ctx, company.ID, in)
	if err != nil {
		return nil, err
	}
	if err := s.sess.UpdateCompany(updated); err != nil {
		return nil, err
	}
	return updated, nil
}
