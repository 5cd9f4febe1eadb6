package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/Pedrohss2/cardapio-front/internal/application/auth"
	"github.com/Pedrohss2/cardapio-front/internal/application/usecase"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	UserCompanyUC *usecase.UserCompanyUseCase
	MenuUC        *usecase.MenuUseCase
	Storage       ImageStorage
	UploadsDir    string
	JWTSecret     string
	Metrics       *Metrics
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Imagens de produto (público)
	app.Static("/uploads", deps.UploadsDir)

	// Auth (público, com rate limit por IP no login)
	authHandler := NewAuthHandler(deps.AuthUC)
	loginLimiter := NewLoginRateLimiter(rate.Every(time.Second), 5)
	app.Post("/auth/login", loginLimiter.Middleware(), authHandler.Login)
	app.Post("/users/register", authHandler.Register)

	// Onboarding de empresa (público) e cardápio (público)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	app.Post("/company", companyHandler.Create)

	menuHandler := NewMenuHandler(deps.MenuUC)
	app.Get("/menu/:companyId", menuHandler.Get)

	// Rotas protegidas (exigem Bearer Token)
	protected := app.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/company/:id", companyHandler.GetByID)
	protected.Put("/company/:id", companyHandler.Update)

	categories := protected.Group("/category")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := protected.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC, deps.Storage)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	assoc := protected.Group("/user-company")
	userCompanyHandler := NewUserCompanyHandler(deps.UserCompanyUC)
	assoc.Post("/", userCompanyHandler.Create)
	assoc.Get("/", userCompanyHandler.ListMine)
	assoc.Get("/user/:id", userCompanyHandler.ListByUser)
	assoc.Get("/company/:id", userCompanyHandler.ListUsers)
}
