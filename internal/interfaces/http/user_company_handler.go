package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/application/usecase"
	"github.com/Pedrohss2/cardapio-front/internal/domain"
)

// UserCompanyHandler trata as associações usuário-empresa. A listagem é
// sempre filtrada no servidor: ou pelo usuário dono do token, ou por uma
// empresa/usuário explícito na rota.
type UserCompanyHandler struct {
	uc *usecase.UserCompanyUseCase
}

// NewUserCompanyHandler constrói o handler.
func NewUserCompanyHandler(uc *usecase.UserCompanyUseCase) *UserCompanyHandler {
	return &UserCompanyHandler{uc: uc}
}

// Create associa um usuário a uma empresa (POST /user-company).
func (h *UserCompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.UserID == "" || in.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "userId e companyId são obrigatórios"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "usuário já associado à empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListMine lista as associações do usuário do token (GET /user-company).
func (h *UserCompanyHandler) ListMine(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListByUser lista as associações de um usuário (GET /user-company/user/:id).
func (h *UserCompanyHandler) ListByUser(c *fiber.Ctx) error {
	out, err := h.uc.ListByUser(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListUsers lista os usuários de uma empresa (GET /user-company/company/:id).
func (h *UserCompanyHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsersByCompany(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
