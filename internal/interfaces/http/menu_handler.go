package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
	"github.com/Pedrohss2/cardapio-front/internal/application/usecase"
	"github.com/Pedrohss2/cardapio-front/internal/domain"
)

// MenuHandler expõe o cardápio público de uma empresa, sem autenticação.
type MenuHandler struct {
	uc *usecase.MenuUseCase
}

// NewMenuHandler constrói o handler.
func NewMenuHandler(uc *usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Get monta o cardápio da empresa (GET /menu/:companyId).
func (h *MenuHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Menu(c.Params("companyId"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa não encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
