package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// insecureJWTSecret is the development default; Validate refuses it outside
// development.
const insecureJWTSecret = "supersecretkey"

type Config struct {
	Addr          string        `yaml:"addr"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	DatabasePath  string        `yaml:"database_path"`
	TokenDuration time.Duration `yaml:"token_duration"`
	Client        ClientConfig  `yaml:"client"`
}

// ClientConfig configures the offline-first client: where to submit and
// where the local queue lives.
type ClientConfig struct {
	Endpoint  string        `yaml:"endpoint"`
	QueuePath string        `yaml:"queue_path"`
	Timeout   time.Duration `yaml:"timeout"`
	Locale    string        `yaml:"locale"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Addr:          getEnv("DRIFT_ADDR", ":8080"),
		JWTSecret:     getEnv("DRIFT_JWT_SECRET", insecureJWTSecret),
		APITimeout:    15 * time.Second,
		DatabasePath:  getEnv("DRIFT_DATABASE_PATH", "driftcheck.db"),
		TokenDuration: 1 * time.Hour,
		Client: ClientConfig{
			Endpoint:  getEnv("DRIFT_ENDPOINT", "http://localhost:8080"),
			QueuePath: getEnv("DRIFT_QUEUE_PATH", "driftcheck-queue.db"),
			Timeout:   10 * time.Second,
			Locale:    getEnv("DRIFT_LOCALE", "en"),
		},
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// Validate checks the loaded configuration for values that are unsafe or
// unusable. The insecure default JWT secret is only tolerated when
// DRIFT_ENV=development.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if c.JWTSecret == insecureJWTSecret && os.Getenv("DRIFT_ENV") != "development" {
		return fmt.Errorf("jwt_secret is the insecure default; set a real secret or DRIFT_ENV=development")
	}
	if c.Client.Endpoint != "" {
		if _, err := url.ParseRequestURI(c.Client.Endpoint); err != nil {
			return fmt.Errorf("client.endpoint: %w", err)
		}
	}
	if c.Client.QueuePath == "" {
		return fmt.Errorf("client.queue_path must not be empty")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
