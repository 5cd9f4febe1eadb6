package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Pedrohss2/cardapio-front/internal/admin/session"
)

// Router registra as rotas do painel. Login, sessão e cardápio público são
// abertos; todo o resto exige o cookie de sessão.
func Router(app *fiber.App, h *Handlers, sess *session.Session) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/login", h.Login)
	app.Post("/register-company", h.RegisterCompany)
	app.Post("/logout", h.Logout)
	app.Get("/session", h.Session)
	app.Get("/menu/:companyId", h.Menu)

	admin := app.Group("/", RequireSession(sess))

	admin.Get("/categories", h.ListCategories)
	admin.Post("/categories", h.CreateCategory)
	admin.Put("/categories/:id", h.UpdateCategory)
	admin.Delete("/categories/:id", h.DeleteCategory)

	admin.Get("/products", h.ListProducts)
	admin.Post("/products", h.CreateProduct)
	admin.Put("/products/:id", h.UpdateProduct)
	admin.Delete("/products/:id", h.DeleteProduct)

	admin.Get("/team", h.ListTeam)
	admin.Post("/team", h.CreateTeamMember)

	admin.Get("/settings", h.GetSettings)
	admin.Put("/settings", h.UpdateSettings)
}
