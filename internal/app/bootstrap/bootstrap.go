package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	registrarservice "campus/contexts/academics/registrar-service"
	postgresadapter "campus/contexts/academics/registrar-service/adapters/postgres"
	"campus/internal/platform/config"
	"campus/internal/platform/db"
	"campus/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")

	var (
		module registrarservice.Module
		pg     *db.Postgres
	)
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		if strings.TrimSpace(cfg.PostgresDSN) == "" {
			return nil, errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
		pg, err = db.Connect(cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		repo := postgresadapter.NewRepository(pg.DB, logger)
		if err := repo.Migrate(); err != nil {
			_ = pg.Close()
			return nil, err
		}
		module = registrarservice.NewModule(registrarservice.Dependencies{
			Store:  repo,
			Logger: logger,
		})
	default:
		module = registrarservice.NewInMemoryModule(logger)
	}

	server := httpserver.New(module, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
