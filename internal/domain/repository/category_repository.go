package repository

import "github.com/Pedrohss2/cardapio-front/internal/domain/entity"

// CategoryRepository define o porto de persistência para Category (DIP).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	ListByCompany(companyID string) ([]*entity.Category, error)
	Delete(id string) error
}
