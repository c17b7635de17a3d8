package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/recenterhq/driftcheck/internal/config"
)

func baseConfig() *config.Config {
	return &config.Config{
		Addr:          ":8080",
		JWTSecret:     "strongsecret",
		APITimeout:    5 * time.Second,
		DatabasePath:  "driftcheck.db",
		TokenDuration: time.Hour,
		Client: config.ClientConfig{
			Endpoint:  "http://localhost:8080",
			QueuePath: "queue.db",
			Timeout:   5 * time.Second,
			Locale:    "en",
		},
	}
}

func TestValidate_InsecureJWT_FailsWhenNotDevelopment(t *testing.T) {
	os.Setenv("DRIFT_ENV", "production")
	defer os.Unsetenv("DRIFT_ENV")

	cfg := baseConfig()
	cfg.JWTSecret = "supersecretkey"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for insecure JWT in non-development env")
	}
}

func TestValidate_InsecureJWT_AllowsDevelopment(t *testing.T) {
	os.Setenv("DRIFT_ENV", "development")
	defer os.Unsetenv("DRIFT_ENV")

	cfg := baseConfig()
	cfg.JWTSecret = "supersecretkey"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected Validate to succeed in development env, got: %v", err)
	}
}

func TestValidate_BadClientEndpoint(t *testing.T) {
	cfg := baseConfig()
	cfg.Client.Endpoint = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for malformed client endpoint")
	}
}

func TestValidate_MissingQueuePath(t *testing.T) {
	cfg := baseConfig()
	cfg.Client.QueuePath = ""
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected Validate to fail for empty queue_path")
	}
}

func TestLoadConfig_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("addr: \":9090\"\njwt_secret: \"filesecret\"\nclient:\n  endpoint: \"https://api.example.com\"\n  queue_path: \"/tmp/q.db\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.JWTSecret != "filesecret" {
		t.Fatalf("yaml values not applied: %+v", cfg)
	}
	if cfg.Client.Endpoint != "https://api.example.com" {
		t.Fatalf("client endpoint not applied: %+v", cfg.Client)
	}
	// untouched fields keep their defaults
	if cfg.DatabasePath == "" || cfg.APITimeout <= 0 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadConfig_MissingFileErrors(t *testing.T) {
	if _, err := config.LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
