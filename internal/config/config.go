package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	RedisURL    string `env:"REDIS_URL" envDefault:"localhost:6379"`
	AuditDBPath string `env:"AUDIT_DB_PATH" envDefault:"./lifesim.db"`

	LLMProvider    string        `env:"LLM_PROVIDER" envDefault:"openai"`
	ModelName      string        `env:"MODEL_NAME" envDefault:"gpt-4o-mini"`
	OpenAIAPIKey   string        `env:"OPENAI_API_KEY"`
	GeminiAPIKey   string        `env:"GEMINI_API_KEY"`
	GatewayTimeout time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"30s"`
}

// Load reads configuration from the environment, after loading a .env
// file if one is present in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing .env is fine

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level string to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
