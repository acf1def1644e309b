package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	DefaultListen        = ":8080"
	DefaultBaseURL       = "http://localhost:8080"
	DefaultDataDir       = "./registry-data"
	DefaultMaxUploadSize = 50 * 1024 * 1024
)

type Config struct {
	Listen   string        `yaml:"listen"`
	BaseURL  string        `yaml:"base-url"`
	DataDir  string        `yaml:"data-dir"`
	Storage  StorageConfig `yaml:"storage"`
	Auth     AuthConfig    `yaml:"auth"`
	Limits   LimitsConfig  `yaml:"limits"`
	Log      string        `yaml:"log"`
	LogLevel string        `yaml:"log-level"`
}

type StorageConfig struct {
	Type string `yaml:"type"` // local, mindb
}

type AuthConfig struct {
	AdminToken string            `yaml:"admin-token"`
	Tokens     map[string]string `yaml:"tokens"` // namespace -> token
}

type LimitsConfig struct {
	MaxUploadSize      int64 `yaml:"max-upload-size"` // bytes
	ReadsPerMinute     int   `yaml:"reads-per-minute"`
	PublishesPerMinute int   `yaml:"publishes-per-minute"`
	Burst              int   `yaml:"burst"`
}

func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// No config file: run on defaults and environment alone.
	} else if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

// applyEnv overlays the environment variables the registry has always been
// driven by in deployments. Environment wins over the file.
func (c *Config) applyEnv() {
	if v := os.Getenv("REGISTRY_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("REGISTRY_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if _, err := strconv.Atoi(v); err == nil {
			c.Listen = ":" + v
		}
	}
	if v := os.Getenv("REGISTRY_MAX_UPLOAD_MB"); v != "" {
		if mb, err := strconv.ParseInt(v, 10, 64); err == nil && mb > 0 {
			c.Limits.MaxUploadSize = mb * 1024 * 1024
		}
	}
	if v := os.Getenv("REGISTRY_ADMIN_TOKEN"); v != "" {
		c.Auth.AdminToken = v
	}
	if v := os.Getenv("REGISTRY_TOKENS"); v != "" {
		if c.Auth.Tokens == nil {
			c.Auth.Tokens = make(map[string]string)
		}
		for namespace, token := range ParseTokenList(v) {
			c.Auth.Tokens[namespace] = token
		}
	}
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.Storage.Type == "" {
		c.Storage.Type = "local"
	}
	if c.Limits.MaxUploadSize <= 0 {
		c.Limits.MaxUploadSize = DefaultMaxUploadSize
	}
	if c.Limits.ReadsPerMinute <= 0 {
		c.Limits.ReadsPerMinute = 600
	}
	if c.Limits.PublishesPerMinute <= 0 {
		c.Limits.PublishesPerMinute = 60
	}
	if c.Limits.Burst <= 0 {
		c.Limits.Burst = 10
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// ParseTokenList parses "ns1:token1,ns2:token2" into a namespace -> token map.
// Malformed entries are skipped.
func ParseTokenList(s string) map[string]string {
	tokens := make(map[string]string)
	for _, entry := range strings.Split(s, ",") {
		namespace, token, ok := strings.Cut(strings.TrimSpace(entry), ":")
		if !ok {
			continue
		}
		namespace = strings.TrimSpace(namespace)
		token = strings.TrimSpace(token)
		if namespace != "" && token != "" {
			tokens[namespace] = token
		}
	}
	return tokens
}

func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "local", "mindb":
	default:
		return fmt.Errorf("unsupported storage type: %s", c.Storage.Type)
	}
	return nil
}
