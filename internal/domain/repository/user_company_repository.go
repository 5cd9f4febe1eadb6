package repository

import "github.com/Pedrohss2/cardapio-front/internal/domain/entity"

// UserCompanyRepository define o porto de persistência para o vínculo
// usuário-empresa. As listagens são filtradas no servidor; nenhuma rota
// devolve associações de todas as empresas para o cliente filtrar.
type UserCompanyRepository interface {
	Create(assoc *entity.UserCompany) error
	ListByUser(userID string) ([]*entity.UserCompany, error)
	ListUsersByCompany(companyID string) ([]*entity.User, error)
}
