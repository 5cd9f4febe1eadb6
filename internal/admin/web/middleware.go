package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pedrohss2/cardapio-front/internal/admin/session"
	"github.com/Pedrohss2/cardapio-front/internal/application/dto"
)

// RequireSession protege as rotas do painel: exige o cookie de sessão e que
// ele corresponda à sessão ativa do gateway. Sem isso a rota devolve 401 e
// o navegador volta para o login.
func RequireSession(sess *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(session.CookieName)
		if token == "" || !sess.IsAuthenticated() || token != sess.Snapshot().AccessToken {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_REQUIRED",
				Message: "faça login para continuar",
			})
		}
		return c.Next()
	}
}
