package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/eurocore-global/supplyhub-api/internal/application/auth"
	"github.com/eurocore-global/supplyhub-api/internal/application/usecase"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/localstore"
	"github.com/eurocore-global/supplyhub-api/internal/infrastructure/records"
	"github.com/eurocore-global/supplyhub-api/internal/interfaces/http"
	"github.com/eurocore-global/supplyhub-api/internal/seed"
	"github.com/eurocore-global/supplyhub-api/pkg/config"
	"github.com/eurocore-global/supplyhub-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("starting application")

	store, closeStore, err := openStore(cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Msg("open local store")
	}
	defer closeStore()

	manufacturerRepo, err := records.NewManufacturerRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("load manufacturers")
	}
	customerRepo, err := records.NewCustomerRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("load customers")
	}
	rfqRepo, err := records.NewRFQRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("load rfqs")
	}
	sessionRepo, err := records.NewSessionRepository(store)
	if err != nil {
		log.Fatal().Err(err).Msg("load session")
	}

	if cfg.Store.SeedOnEmpty {
		empty, err := seed.Empty(manufacturerRepo, customerRepo, rfqRepo)
		if err != nil {
			log.Fatal().Err(err).Msg("inspect store")
		}
		if empty {
			if err := seed.Apply(manufacturerRepo, customerRepo, rfqRepo); err != nil {
				log.Fatal().Err(err).Msg("seed demo dataset")
			}
			log.Info().Msg("empty store, demo dataset loaded")
		}
	}

	manufacturerUC := usecase.NewManufacturerUseCase(manufacturerRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	rfqUC := usecase.NewRFQUseCase(rfqRepo, customerRepo)
	dashboardUC := usecase.NewDashboardUseCase(manufacturerRepo, customerRepo, rfqRepo)
	sessionUC := auth.NewSessionUseCase(sessionRepo, manufacturerRepo, customerRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Defence Supply Hub API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	http.Router(app, http.RouterDeps{
		ManufacturerUC: manufacturerUC,
		CustomerUC:     customerUC,
		RFQUC:          rfqUC,
		DashboardUC:    dashboardUC,
		SessionUC:      sessionUC,
		Sessions:       sessionRepo,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}

// openStore builds the configured localstore backend. The returned closer is
// a no-op for backends without a handle to release.
func openStore(cfg config.StoreConfig) (localstore.Store, func(), error) {
	switch cfg.Driver {
	case config.StoreDriverSQLite:
		s, err := localstore.NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.StoreDriverMemory:
		return localstore.NewMemoryStore(), func() {}, nil
	default:
		s, err := localstore.NewFileStore(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}
