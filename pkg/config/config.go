// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// HTTP configures the listener.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" env-default:":8000" env-description:"listen address"`
	TLSCertFile     string        `env:"TLS_CERT_FILE" env-description:"serve TLS when set together with TLS_KEY_FILE"`
	TLSKeyFile      string        `env:"TLS_KEY_FILE"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// TLS reports whether both certificate and key are configured.
func (h HTTP) TLS() bool {
	return h.TLSCertFile != "" && h.TLSKeyFile != ""
}

// Tracing configures OpenTelemetry export.
type Tracing struct {
	Host        string  `env:"OTEL_HOST" env-description:"otlp grpc endpoint, export disabled when empty"`
	Probability float64 `env:"OTEL_PROBABILITY" env-default:"1.0"`
}

// Config is the full service configuration.
type Config struct {
	ServiceName string `env:"SERVICE_NAME" env-default:"bistro"`
	LogLevel    string `env:"LOG_LEVEL" env-default:"info"`
	Seed        bool   `env:"SEED" env-default:"true" env-description:"load the sample menu and orders"`
	HTTP        HTTP
	Tracing     Tracing
}

// Load reads an optional .env file from the working directory and then
// the process environment. Variables already set win over the file.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read env variables: %w", err)
	}
	if cfg.Tracing.Probability < 0 || cfg.Tracing.Probability > 1 {
		return Config{}, fmt.Errorf("OTEL_PROBABILITY must be within [0, 1], got %v", cfg.Tracing.Probability)
	}
	return cfg, nil
}
