package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
)

type apiConfig struct {
	BaseURL   string        `koanf:"base_url"`
	Timeout   time.Duration `koanf:"timeout"`
	Token     string        `koanf:"token"`
	UserAgent string        `koanf:"user_agent"`
}

type cacheConfig struct {
	Backend  string        `koanf:"backend"`
	TTL      time.Duration `koanf:"ttl"`
	RedisURL string        `koanf:"redis_url"`
}

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`
}

type storageConfig struct {
	DataDir  string `koanf:"data_dir"`
	InMemory bool   `koanf:"in_memory"`
}

type authConfig struct {
	Secret   string        `koanf:"secret"`
	Issuer   string        `koanf:"issuer"`
	TokenTTL time.Duration `koanf:"token_ttl"`
}

type Config struct {
	API   apiConfig   `koanf:"api"`
	Cache cacheConfig `koanf:"cache"`

	// Local CMS twin
	HTTP    http          `koanf:"http"`
	Storage storageConfig `koanf:"storage"`
	Auth    authConfig    `koanf:"auth"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		API: apiConfig{
			BaseURL:   "http://127.0.0.1:3000/api",
			Timeout:   30 * time.Second,
			UserAgent: "hadj-admin",
		},

		Cache: cacheConfig{
			Backend: "none",
			TTL:     30 * time.Second,
		},

		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
		},

		Storage: storageConfig{
			DataDir: "./data",
		},

		Auth: authConfig{
			Issuer:   "hadj-admin",
			TokenTTL: 24 * time.Hour,
		},
	}
}

// New loads the configuration. path, when not empty, takes precedence over
// the CONFIG_PATH environment variable.
func New(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	options := []config.Option{}
	if path != "" {
		options = append(options, config.WithLocalYAML(path))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
