package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/Pedrohss2/cardapio-front/internal/application/auth"
	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/domain/entity"
	"github.com/Pedrohss2/cardapio-front/internal/domain/repository"
)

// UserCompanyUseCase casos de uso para vínculos usuário-empresa.
// Todas as listagens são filtradas no servidor; o cliente nunca recebe
// associações de outras empresas para peneirar localmente.
type UserCompanyUseCase struct {
	repo        repository.UserCompanyRepository
	companyRepo repository.CompanyRepository
}

// NewUserCompanyUseCase constrói o caso de uso.
func NewUserCompanyUseCase(repo repository.UserCompanyRepository, companyRepo repository.CompanyRepository) *UserCompanyUseCase {
	return &UserCompanyUseCase{repo: repo, companyRepo: companyRepo}
}

// Create vincula um usuário a uma empresa.
func (uc *UserCompanyUseCase) Create(in dto.CreateUserCompanyRequest) (*dto.UserCompanyResponse, error) {
	assoc := &entity.UserCompany{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		CompanyID: in.CompanyID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(assoc); err != nil {
		return nil, err
	}
	return uc.toResponse(assoc), nil
}

// ListByUser lista os vínculos de um usuário, com a empresa embutida. O
// cliente usa o primeiro item para definir a empresa ativa após o login.
func (uc *UserCompanyUseCase) ListByUser(userID string) ([]dto.UserCompanyResponse, error) {
	assocs, err := uc.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserCompanyResponse, 0, len(assocs))
	for _, a := range assocs {
		items = append(items, *uc.toResponse(a))
	}
	return items, nil
}

// ListUsersByCompany lista os usuários de uma empresa (tela de equipe).
func (uc *UserCompanyUseCase) ListUsersByCompany(companyID string) ([]dto.UserResponse, error) {
	users, err := uc.repo.ListUsersByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *auth.ToUserResponse(u))
	}
	return items, nil
}

func (uc *UserCompanyUseCase) toResponse(a *entity.UserCompany) *dto.UserCompanyResponse {
	out := &dto.UserCompanyResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		CompanyID: a.CompanyID,
		CreatedAt: a.CreatedAt,
	}
	if company, err := uc.companyRepo.GetByID(a.CompanyID); err == nil && company != nil {
		out.Company = entityToCompanyResponse(company)
	}
	return out
}
