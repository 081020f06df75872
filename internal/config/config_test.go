package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Inventory.File != "inventory.json" {
		t.Errorf("expected File=inventory.json, got %s", cfg.Inventory.File)
	}
	if cfg.Inventory.LowStockThreshold != 5 {
		t.Errorf("expected LowStockThreshold=5, got %d", cfg.Inventory.LowStockThreshold)
	}
	if cfg.Logger.Level != "info" || cfg.Logger.Format != "console" {
		t.Errorf("unexpected logger config %+v", cfg.Logger)
	}
	if cfg.Server.Addr() != "localhost:8080" {
		t.Errorf("expected localhost:8080, got %s", cfg.Server.Addr())
	}
	if cfg.Watch.Debounce != 250*time.Millisecond {
		t.Errorf("expected 250ms debounce, got %v", cfg.Watch.Debounce)
	}
	if cfg.Server.JWTSecret != "" || cfg.Server.TokenTTL != 24*time.Hour {
		t.Errorf("unexpected token config %q %v", cfg.Server.JWTSecret, cfg.Server.TokenTTL)
	}
	if cfg.Database.URL != "" {
		t.Errorf("expected no database URL, got %s", cfg.Database.URL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INVENTORY_FILE", "/tmp/stock.json")
	t.Setenv("LOW_STOCK_THRESHOLD", "3")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("WATCH_DEBOUNCE", "1s")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DATABASE_URL", "postgres://localhost/inventory")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Inventory.File != "/tmp/stock.json" {
		t.Errorf("expected File=/tmp/stock.json, got %s", cfg.Inventory.File)
	}
	if cfg.Inventory.LowStockThreshold != 3 {
		t.Errorf("expected LowStockThreshold=3, got %d", cfg.Inventory.LowStockThreshold)
	}
	if cfg.Logger.Format != "json" {
		t.Errorf("expected Format=json, got %s", cfg.Logger.Format)
	}
	if cfg.Watch.Debounce != time.Second {
		t.Errorf("expected 1s debounce, got %v", cfg.Watch.Debounce)
	}
	if cfg.Server.JWTSecret != "s3cret" {
		t.Errorf("expected JWTSecret=s3cret, got %s", cfg.Server.JWTSecret)
	}
	if cfg.Database.URL != "postgres://localhost/inventory" {
		t.Errorf("expected DATABASE_URL override, got %s", cfg.Database.URL)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "inventory.yaml")
	content := "inventory:\n  file: warehouse.json\n  low_stock_threshold: 12\nserver:\n  port: 9090\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Inventory.File != "warehouse.json" {
		t.Errorf("expected File=warehouse.json, got %s", cfg.Inventory.File)
	}
	if cfg.Inventory.LowStockThreshold != 12 {
		t.Errorf("expected LowStockThreshold=12, got %d", cfg.Inventory.LowStockThreshold)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected Port=9090, got %d", cfg.Server.Port)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("INVENTORY_FILE", "")
	os.Unsetenv("INVENTORY_FILE")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("INVENTORY_FILE=from-dotenv.json\n"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Inventory.File != "from-dotenv.json" {
		t.Errorf("expected File=from-dotenv.json, got %s", cfg.Inventory.File)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "Unknown log level", key: "LOG_LEVEL", val: "verbose"},
		{name: "Unknown log format", key: "LOG_FORMAT", val: "xml"},
		{name: "Negative threshold", key: "LOW_STOCK_THRESHOLD", val: "-1"},
		{name: "Port out of range", key: "SERVER_PORT", val: "70000"},
		{name: "Negative debounce", key: "WATCH_DEBOUNCE", val: "-1s"},
		{name: "Negative token ttl", key: "TOKEN_TTL", val: "-1h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv(tt.key, tt.val)

			if _, err := Load(""); err == nil {
				t.Errorf("expected an error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
