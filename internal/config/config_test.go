package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseTokenList(t *testing.T) {
	tokens := ParseTokenList("run:secret1, acme:secret2 ,broken,:nons,noval:")
	if len(tokens) != 2 {
		t.Fatalf("parsed %d tokens, want 2: %v", len(tokens), tokens)
	}
	if tokens["run"] != "secret1" {
		t.Errorf("tokens[run] = %q, want secret1", tokens["run"])
	}
	if tokens["acme"] != "secret2" {
		t.Errorf("tokens[acme] = %q, want secret2", tokens["acme"])
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig on missing file: %v", err)
	}
	if cfg.Listen != DefaultListen {
		t.Errorf("Listen = %q, want %q", cfg.Listen, DefaultListen)
	}
	if cfg.Limits.MaxUploadSize != DefaultMaxUploadSize {
		t.Errorf("MaxUploadSize = %d, want %d", cfg.Limits.MaxUploadSize, DefaultMaxUploadSize)
	}
	if cfg.Storage.Type != "local" {
		t.Errorf("Storage.Type = %q, want local", cfg.Storage.Type)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
listen: ":9090"
base-url: "https://registry.example.com"
storage:
  type: mindb
auth:
  admin-token: root
  tokens:
    run: sekret
limits:
  max-upload-size: 1048576
  publishes-per-minute: 5
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Listen != ":9090" {
		t.Errorf("Listen = %q, want :9090", cfg.Listen)
	}
	if cfg.BaseURL != "https://registry.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Storage.Type != "mindb" {
		t.Errorf("Storage.Type = %q, want mindb", cfg.Storage.Type)
	}
	if cfg.Auth.Tokens["run"] != "sekret" {
		t.Errorf("Tokens[run] = %q, want sekret", cfg.Auth.Tokens["run"])
	}
	if cfg.Limits.MaxUploadSize != 1048576 {
		t.Errorf("MaxUploadSize = %d", cfg.Limits.MaxUploadSize)
	}
	if cfg.Limits.PublishesPerMinute != 5 {
		t.Errorf("PublishesPerMinute = %d, want 5", cfg.Limits.PublishesPerMinute)
	}
	// Unset limits fall back to defaults.
	if cfg.Limits.ReadsPerMinute != 600 {
		t.Errorf("ReadsPerMinute = %d, want 600", cfg.Limits.ReadsPerMinute)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("REGISTRY_URL", "https://env.example.com")
	t.Setenv("PORT", "7070")
	t.Setenv("REGISTRY_MAX_UPLOAD_MB", "2")
	t.Setenv("REGISTRY_ADMIN_TOKEN", "env-root")
	t.Setenv("REGISTRY_TOKENS", "run:env-token")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.BaseURL != "https://env.example.com" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Listen != ":7070" {
		t.Errorf("Listen = %q, want :7070", cfg.Listen)
	}
	if cfg.Limits.MaxUploadSize != 2*1024*1024 {
		t.Errorf("MaxUploadSize = %d", cfg.Limits.MaxUploadSize)
	}
	if cfg.Auth.AdminToken != "env-root" {
		t.Errorf("AdminToken = %q", cfg.Auth.AdminToken)
	}
	if cfg.Auth.Tokens["run"] != "env-token" {
		t.Errorf("Tokens[run] = %q", cfg.Auth.Tokens["run"])
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{Storage: StorageConfig{Type: "local"}}
	if err := cfg.Validate(); err != nil {
		t.Errorf("local should validate: %v", err)
	}
	cfg.Storage.Type = "s3"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown storage type should fail validation")
	}
}
