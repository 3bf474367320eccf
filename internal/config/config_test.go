package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("SERVER_ADDR", "")
	t.Setenv("NASA_API_KEY", "")
	t.Setenv("CORS_ORIGINS", "")

	cfg := Load()
	if cfg.ServerAddr != ":5001" {
		t.Errorf("ServerAddr = %q, want :5001", cfg.ServerAddr)
	}
	if cfg.NASAAPIKey != DefaultAPIKey {
		t.Error("API key should fall back to the built-in default")
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SERVER_ADDR", ":8080")
	t.Setenv("NASA_API_KEY", "my-own-key")

	cfg := Load()
	if cfg.ServerAddr != ":8080" {
		t.Errorf("ServerAddr = %q, want :8080", cfg.ServerAddr)
	}
	if cfg.NASAAPIKey != "my-own-key" {
		t.Errorf("NASAAPIKey = %q", cfg.NASAAPIKey)
	}
	if cfg.IsDev() {
		t.Error("production env should not be dev")
	}
}

func TestLoadProvidersMissingFileIsOK(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	cfg, err := LoadProviders()
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg != nil {
		t.Error("missing file should yield a nil config")
	}
}

func TestLoadProvidersParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	data := []byte(`
endpoints:
  api_base: "http://localhost:9999"
  eonet_base: "http://localhost:9998"
timeouts:
  apod: 5
  exoplanets: 30
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	cfg, err := LoadProviders()
	if err != nil {
		t.Fatalf("LoadProviders: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected a config")
	}
	if cfg.Endpoints.APIBase != "http://localhost:9999" {
		t.Errorf("APIBase = %q", cfg.Endpoints.APIBase)
	}
	if cfg.Timeouts["apod"] != 5 || cfg.Timeouts["exoplanets"] != 30 {
		t.Errorf("timeouts not parsed: %v", cfg.Timeouts)
	}
}

func TestLoadProvidersBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	if err := os.WriteFile(path, []byte("endpoints: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	if _, err := LoadProviders(); err == nil {
		t.Error("malformed YAML should be an error")
	}
}
