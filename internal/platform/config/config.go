package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string `envconfig:"SERVICE_NAME" default:"editorial"`
	HTTPPort    string `envconfig:"HTTP_PORT" default:"8080"`
	PostgresDSN string `envconfig:"POSTGRES_DSN"`

	// AuthorsBaseURL points the publications module at the author
	// registry. It defaults to this process, which serves both
	// contexts behind one mux.
	AuthorsBaseURL string        `envconfig:"AUTHORS_BASE_URL" default:"http://localhost:8080"`
	AuthorsTimeout time.Duration `envconfig:"AUTHORS_TIMEOUT" default:"5s"`

	EnrichConcurrency int `envconfig:"ENRICH_CONCURRENCY" default:"5"`
}

func Load() (Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
