// Package config loads the kiosk configuration from the environment.
// A .env file in the working directory is read first if present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the runtime configuration of one kiosk terminal.
type Config struct {
	Env  string
	Addr string

	// LogFormat is "json" or "text". It defaults to json in production.
	LogFormat string

	// ClientURL is the kiosk UI origin allowed by CORS and the websocket.
	ClientURL string

	DBPath      string
	CatalogPath string // empty uses the built-in catalog

	IdleTimeout time.Duration
	// ApprovalRate is the probability a simulated payment is approved.
	ApprovalRate float64
}

// Load reads the configuration from the environment, falling back to
// defaults for unset variables. Malformed numbers are errors.
func Load() (*Config, error) {
	_ = godotenv.Load()

	idle, err := strconv.Atoi(getEnv("IDLE_TIMEOUT_SECONDS", "60"))
	if err != nil || idle <= 0 {
		return nil, fmt.Errorf("invalid IDLE_TIMEOUT_SECONDS %q", os.Getenv("IDLE_TIMEOUT_SECONDS"))
	}

	rate, err := strconv.ParseFloat(getEnv("PAYMENT_APPROVAL_RATE", "1"), 64)
	if err != nil || rate < 0 || rate > 1 {
		return nil, fmt.Errorf("invalid PAYMENT_APPROVAL_RATE %q", os.Getenv("PAYMENT_APPROVAL_RATE"))
	}

	cfg := &Config{
		Env:          getEnv("ENV", "development"),
		Addr:         getEnv("ADDR", ":8080"),
		ClientURL:    getEnv("CLIENT_URL", "http://localhost:5173"),
		DBPath:       getEnv("DB_PATH", "./data/drinko.db"),
		CatalogPath:  getEnv("CATALOG_PATH", ""),
		IdleTimeout:  time.Duration(idle) * time.Second,
		ApprovalRate: rate,
	}

	defaultFormat := "text"
	if cfg.IsProduction() {
		defaultFormat = "json"
	}
	cfg.LogFormat = getEnv("LOG_FORMAT", defaultFormat)

	return cfg, nil
}

// IsProduction reports whether ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
