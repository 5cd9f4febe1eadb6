package repository

import "github.com/Pedrohss2/cardapio-front/internal/domain/entity"

// ProductRepository define o porto de persistência para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByCompany(companyID string) ([]*entity.Product, error)
	Delete(id string) error
}
