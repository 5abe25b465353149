package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
catalog:
  path: "catalog.db"
auth:
  api_key: "test-key-123"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Catalog.Path != "catalog.db" {
		t.Errorf("catalog.path = %q, want %q", cfg.Catalog.Path, "catalog.db")
	}
	if cfg.Auth.APIKey != "test-key-123" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "test-key-123")
	}
}

// TestEnvOverride verifies that FUELPLAN_ env vars take precedence over YAML values.
// This ensures production deployments can override config via environment.
func TestEnvOverride(t *testing.T) {
	t.Setenv("FUELPLAN_SERVER_PORT", "9999")
	t.Setenv("FUELPLAN_CATALOG_PATH", "/tmp/override.db")
	t.Setenv("FUELPLAN_AUTH_API_KEY", "env-key")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Catalog.Path != "/tmp/override.db" {
		t.Errorf("catalog.path = %q, want %q", cfg.Catalog.Path, "/tmp/override.db")
	}
	if cfg.Auth.APIKey != "env-key" {
		t.Errorf("auth.api_key = %q, want %q", cfg.Auth.APIKey, "env-key")
	}
	// Unchanged fields should keep YAML values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
}

// TestCatalogPathDefault verifies that an omitted catalog path falls back to
// the in-memory DSN.
func TestCatalogPathDefault(t *testing.T) {
	yaml := `
server:
  port: 8080
auth:
  api_key: "key"
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Catalog.Path != ":memory:" {
		t.Errorf("catalog.path = %q, want %q", cfg.Catalog.Path, ":memory:")
	}
}

// TestValidationMissingPort verifies that missing required fields produce a clear error.
// Prevents starting the server with incomplete configuration.
func TestValidationMissingPort(t *testing.T) {
	yaml := `
server:
  host: "0.0.0.0"
auth:
  api_key: "key"
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for missing port")
	}
}

// TestValidationTailscaleNoPort verifies that a tsnet-only deployment does
// not require server.port but does require a hostname.
func TestValidationTailscaleNoPort(t *testing.T) {
	yaml := `
tailscale:
  enabled: true
  hostname: "fuelplan"
auth:
  api_key: "key"
`
	if _, err := Load(writeTemp(t, yaml)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noHost := `
tailscale:
  enabled: true
auth:
  api_key: "key"
`
	if _, err := Load(writeTemp(t, noHost)); err == nil {
		t.Fatal("expected validation error for missing tailscale hostname")
	}
}

// TestValidationMissingAPIKey verifies that a missing API key is rejected.
// Without an API key, the catalog write endpoints would be unprotected.
func TestValidationMissingAPIKey(t *testing.T) {
	yaml := `
server:
  port: 8080
auth: {}
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for missing api_key")
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
