package bootstrap

import (
	"errors"
	"log/slog"
	"strings"

	authorsservice "editorial/contexts/editorial/authors-service"
	authorspostgres "editorial/contexts/editorial/authors-service/adapters/postgres"
	publicationsservice "editorial/contexts/editorial/publications-service"
	"editorial/contexts/editorial/publications-service/adapters/authorsgw"
	publicationspostgres "editorial/contexts/editorial/publications-service/adapters/postgres"
	"editorial/internal/platform/config"
	"editorial/internal/platform/db"
	"editorial/internal/platform/httpserver"
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
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := authorspostgres.Migrate(pg.DB); err != nil {
		_ = pg.Close()
		return nil, err
	}
	if err := publicationspostgres.Migrate(pg.DB); err != nil {
		_ = pg.Close()
		return nil, err
	}

	authorsModule := authorsservice.NewModule(authorsservice.Dependencies{
		Authors:     authorspostgres.NewRepository(pg.DB, logger),
		Clock:       authorspostgres.SystemClock{},
		IDGenerator: authorspostgres.UUIDGenerator{},
		Logger:      logger,
	})

	registry := authorsgw.NewClient(cfg.AuthorsBaseURL, cfg.AuthorsTimeout, logger)
	publicationsRepo := publicationspostgres.NewRepository(pg.DB, logger)
	publicationsModule := publicationsservice.NewModule(publicationsservice.Dependencies{
		Publications:      publicationsRepo,
		History:           publicationsRepo,
		Authors:           registry,
		Clock:             publicationspostgres.SystemClock{},
		IDGenerator:       publicationspostgres.UUIDGenerator{},
		EnrichConcurrency: cfg.EnrichConcurrency,
		Logger:            logger,
	})

	server := httpserver.New(publicationsModule, authorsModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a == nil {
		return nil
	}
	return a.postgres.Close()
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
