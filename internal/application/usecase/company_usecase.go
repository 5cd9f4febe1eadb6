package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/domain"
	"github.com/Pedrohss2/cardapio-front/internal/domain/entity"
	"github.com/Pedrohss2/cardapio-front/internal/domain/repository"
)

// OnboardingTxRunner executa o cadastro empresa + dono + vínculo em uma transação.
type OnboardingTxRunner interface {
	Run(ctx context.Context, fn func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		assocRepo repository.UserCompanyRepository,
	) error) error
}

// CompanyUseCase aplica as regras de negócio para empresas.
type CompanyUseCase struct {
	repo repository.CompanyRepository
	tx   OnboardingTxRunner
}

// NewCompanyUseCase constrói o caso de uso com o porto de persistência e o runner transacional.
func NewCompanyUseCase(repo repository.CompanyRepository, tx OnboardingTxRunner) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, tx: tx}
}

// Create cadastra uma empresa. Quando OwnerName/OwnerPassword vêm preenchidos,
// cria também o usuário dono e o vínculo na mesma transação, para que o login
// logo após o cadastro já encontre a associação.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	now := time.Now()
	company := &entity.Company{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if in.OwnerName == "" || in.OwnerPassword == "" {
		if err := uc.repo.Create(company); err != nil {
			return nil, err
		}
		return entityToCompanyResponse(company), nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	owner := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.OwnerName,
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	assoc := &entity.UserCompany{
		ID:        uuid.New().String(),
		UserID:    owner.ID,
		CompanyID: company.ID,
		CreatedAt: now,
	}
	err = uc.tx.Run(ctx, func(
		companyRepo repository.CompanyRepository,
		userRepo repository.UserRepository,
		assocRepo repository.UserCompanyRepository,
	) error {
		if err := companyRepo.Create(company); err != nil {
			return err
		}
		if err := userRepo.Create(owner); err != nil {
			return err
		}
		return assocRepo.Create(assoc)
	})
	if err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

// GetByID obtém uma empresa por ID.
func (uc *CompanyUseCase) GetByID(id string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, nil
	}
	return entityToCompanyResponse(company), nil
}

// Update atualiza os dados cadastrais. Campos nil permanecem como estão.
func (uc *CompanyUseCase) Update(id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Email != nil {
		company.Email = *in.Email
	}
	company.UpdatedAt = time.Now()
	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return entityToCompanyResponse(company), nil
}

func entityToCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	if c == nil {
		return nil
	}
	return &dto.CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
