package config

import (
	"os"
	"strings"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName    string
	HTTPPort       string
	StorageBackend string
	PostgresDSN    string
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "campus"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	backend := strings.TrimSpace(strings.ToLower(os.Getenv("STORAGE_BACKEND")))
	if backend != StoragePostgres {
		backend = StorageMemory
	}

	return Config{
		ServiceName:    service,
		HTTPPort:       port,
		StorageBackend: backend,
		PostgresDSN:    os.Getenv("POSTGRES_DSN"),
	}, nil
}
