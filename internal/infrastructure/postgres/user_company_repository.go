package postgres

import (
	"context"
	"fmt"

	"github.com/Pedrohss2/cardapio-front/internal/domain"
	"github.com/Pedrohss2/cardapio-front/internal/domain/entity"
	"github.com/Pedrohss2/cardapio-front/internal/domain/repository"
)

var _ repository.UserCompanyRepository = (*UserCompanyRepo)(nil)

// UserCompanyRepo implementação do porto UserCompanyRepository sobre PostgreSQL (usável com pool ou tx).
type UserCompanyRepo struct {
	q Querier
}

// NewUserCompanyRepository constrói o adaptador de persistência para vínculos usuário-empresa.
func NewUserCompanyRepository(q Querier) *UserCompanyRepo {
	return &UserCompanyRepo{q: q}
}

// Create persiste um novo vínculo. O par (user_id, company_id) é único.
func (r *UserCompanyRepo) Create(assoc *entity.UserCompany) error {
	query := `
		INSERT INTO user_companies (id, user_id, company_id, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		assoc.ID, assoc.UserID, assoc.CompanyID, assoc.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user_company: %w", err)
	}
	return nil
}

// ListByUser lista os vínculos de um usuário em ordem de criação. A primeira
// associação é a que o cliente adota como empresa ativa no login.
func (r *UserCompanyRepo) ListByUser(userID string) ([]*entity.UserCompany, error) {
	query := `
		SELECT id, user_id, company_id, created_at
		FROM user_companies WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, userID)
	if err != nil {
		return nil, fmt.Errorf("list user_companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.UserCompany
	for rows.Next() {
		var uc entity.UserCompany
		if err := rows.Scan(&uc.ID, &uc.UserID, &uc.CompanyID, &uc.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user_company: %w", err)
		}
		list = append(list, &uc)
	}
	return list, rows.Err()
}

// ListUsersByCompany lista os usuários vinculados a uma empresa, filtrados no
// banco. A tela de equipe consome este resultado direto, sem filtrar no cliente.
func (r *UserCompanyRepo) ListUsersByCompany(companyID string) ([]*entity.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.password_hash, u.created_at, u.updated_at
		FROM users u
		JOIN user_companies uc ON uc.user_id = u.id
		WHERE uc.company_id = $1
		ORDER BY u.created_at`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list users by company: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
