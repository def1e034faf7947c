package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is loaded once at startup and passed to every component that needs
// it. Nothing reads the environment after Load returns.
type Config struct {
	Port        string        `env:"PORT" envDefault:"8080"`
	DatabaseURL string        `env:"DATABASE_URL,required,notEmpty"`
	TokenSecret string        `env:"ACCESS_TOKEN_SECRET,required,notEmpty"`
	TokenTTL    time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"600h"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	BcryptCost  int           `env:"BCRYPT_COST" envDefault:"10"`

	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// DBConnectAttempts bounds the startup ping loop.
	DBConnectAttempts int           `env:"DB_CONNECT_ATTEMPTS" envDefault:"5"`
	DBConnectBackoff  time.Duration `env:"DB_CONNECT_BACKOFF" envDefault:"2s"`
}

// Load reads an optional .env file and parses the environment into a Config.
// It reports whether a .env file was found so the caller can log it once the
// logger is configured.
func Load(files ...string) (*Config, bool, error) {
	loaded := godotenv.Load(files...) == nil

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, loaded, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return nil, loaded, fmt.Errorf("ACCESS_TOKEN_TTL must be positive, got %s", cfg.TokenTTL)
	}
	return cfg, loaded, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
