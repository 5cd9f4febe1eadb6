package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Pedrohss2/cardapio-front/internal/admin/session"
	"github.com/Pedrohss2/cardapio-front/internal/admin/web"
	"github.com/Pedrohss2/cardapio-front/internal/client"
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
		Str("api", cfg.API.BaseURL).
		Msg("iniciando painel administrativo")

	api := client.New(cfg.API.BaseURL)

	store, err := session.NewFileStore(cfg.Admin.SessionFile)
	if err != nil {
		log.Fatal().Err(err).Msg("storage da sessão")
	}
	sess, err := session.New(api, store)
	if err != nil {
		log.Fatal().Err(err).Msg("hidratar sessão")
	}
	defer sess.Close()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + " admin",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024,
	})
	app.Use(recover.New())

	web.Router(app, web.NewHandlers(api, sess), sess)

	go func() {
		if err := app.Listen(cfg.Admin.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor do painel finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando painel...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do painel")
	}

	log.Info().Msg("painel encerrado")
}
