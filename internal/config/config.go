package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Storage drivers selectable via STORAGE_DRIVER.
const (
	DriverFile     = "file"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// Config holds the whole application configuration, populated from
// environment variables (plus .env in development).
type Config struct {
	App      AppConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Database DatabaseConfig
	Feed     FeedConfig
}

type AppConfig struct {
	Name        string `env:"APP_NAME" envDefault:"ProNet"`
	Environment string `env:"APP_ENV" envDefault:"development"` // development, production
}

type StorageConfig struct {
	Driver  string `env:"STORAGE_DRIVER" envDefault:"file"` // file, redis, postgres
	DataDir string `env:"DATA_DIR" envDefault:"./data"`     // file driver only
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:""`
	Database string `env:"DB_NAME" envDefault:"pronet"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

type FeedConfig struct {
	// PageSize is the fixed number of records per page when browsing
	// member lists.
	PageSize int `env:"FEED_PAGE_SIZE" envDefault:"5"`
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations the application cannot run with.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverRedis, DriverPostgres:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.Storage.Driver)
	}
	if c.Feed.PageSize < 1 {
		return fmt.Errorf("FEED_PAGE_SIZE must be at least 1")
	}
	return nil
}
