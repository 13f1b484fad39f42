package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/nikolayk812/cartstate-demo/internal/catalog"
	"golang.org/x/text/currency"
)

type Config struct {
	Addr            string
	LogLevel        string
	Currency        currency.Unit
	CatalogJSON     string
	ShutdownTimeout time.Duration
}

// cartEnv holds raw env values.
type cartEnv struct {
	Addr            string        `env:"CART_ADDR"             envDefault:":8080"`
	LogLevel        string        `env:"CART_LOG_LEVEL"        envDefault:"info"`
	Currency        string        `env:"CART_CURRENCY"         envDefault:"USD"`
	CatalogJSON     string        `env:"CART_CATALOG"`
	ShutdownTimeout time.Duration `env:"CART_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// Load reads envFile into the process environment when it exists,
// then parses CART_* variables. Variables already set win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("godotenv.Load: %w", err)
		}
	}

	var raw cartEnv
	if err := env.Parse(&raw); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	unit, err := currency.ParseISO(raw.Currency)
	if err != nil {
		return Config{}, fmt.Errorf("currency[%s] is not valid: %w", raw.Currency, err)
	}

	if raw.ShutdownTimeout <= 0 {
		return Config{}, fmt.Errorf("shutdown timeout must be positive")
	}

	return Config{
		Addr:            raw.Addr,
		LogLevel:        raw.LogLevel,
		Currency:        unit,
		CatalogJSON:     raw.CatalogJSON,
		ShutdownTimeout: raw.ShutdownTimeout,
	}, nil
}

// Catalog returns the configured catalog or the built-in one.
func (c Config) Catalog() (*catalog.Catalog, error) {
	if c.CatalogJSON == "" {
		return catalog.Default(c.Currency), nil
	}

	cat, err := catalog.ParseJSON(c.CatalogJSON, c.Currency)
	if err != nil {
		return nil, fmt.Errorf("catalog.ParseJSON: %w", err)
	}

	return cat, nil
}
