package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Pedrohss2/cardapio-front/internal/application/auth"
	"github.com/Pedrohss2/cardapio-front/internal/application/usecase"
	"github.com/Pedrohss2/cardapio-front/internal/infrastructure/postgres"
	"github.com/Pedrohss2/cardapio-front/internal/infrastructure/storage"
	httpRouter "github.com/Pedrohss2/cardapio-front/internal/interfaces/http"
	"github.com/Pedrohss2/cardapio-front/pkg/config"
	"github.com/Pedrohss2/cardapio-front/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	assocRepo := postgres.NewUserCompanyRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	uploads, err := storage.NewLocalStorage(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("diretório de uploads")
	}

	authUC := auth.NewAuthUseCase(userRepo, assocRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, txRunner)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	userCompanyUC := usecase.NewUserCompanyUseCase(assocRepo, companyRepo)
	menuUC := usecase.NewMenuUseCase(companyRepo, categoryRepo, productRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		CompanyUC:     companyUC,
		CategoryUC:    categoryUC,
		ProductUC:     productUC,
		UserCompanyUC: userCompanyUC,
		MenuUC:        menuUC,
		Storage:       uploads,
		UploadsDir:    uploads.Dir(),
		JWTSecret:     cfg.JWT.Secret,
		Metrics:       httpRouter.NewMetrics(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
