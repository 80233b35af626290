package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":8000" {
		t.Errorf("addr: got %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ShutdownTimeout != 10*time.Second {
		t.Errorf("shutdown timeout: got %v", cfg.HTTP.ShutdownTimeout)
	}
	if cfg.HTTP.TLS() {
		t.Error("tls should be off by default")
	}
	if !cfg.Seed {
		t.Error("seed should default to true")
	}
	if cfg.ServiceName != "bistro" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Tracing.Probability != 1 || cfg.Tracing.Host != "" {
		t.Errorf("unexpected tracing defaults: %+v", cfg.Tracing)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SEED", "false")
	t.Setenv("TLS_CERT_FILE", "server.crt")
	t.Setenv("TLS_KEY_FILE", "server.key")
	t.Setenv("OTEL_PROBABILITY", "0.25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.Addr != ":9090" || cfg.Seed || !cfg.HTTP.TLS() || cfg.Tracing.Probability != 0.25 {
		t.Fatalf("env not applied: %+v", cfg)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	// godotenv sets the variable for the whole process; register cleanup first.
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected level from .env, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsBadProbability(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OTEL_PROBABILITY", "2")
	if _, err := Load(); err == nil {
		t.Fatal("expected an error")
	}
}
