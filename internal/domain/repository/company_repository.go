package repository

import "github.com/Pedrohss2/cardapio-front/internal/domain/entity"

// CompanyRepository define o porto de persistência para Company (DIP).
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
}
