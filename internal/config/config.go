package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"aalkc-erp-backend"`
		Port int    `envconfig:"PORT" default:"8000"`
	}

	DB struct {
		Host         string `envconfig:"DB_HOST" default:"localhost"`
		Port         int    `envconfig:"DB_PORT" default:"5432"`
		User         string `envconfig:"DB_USER" default:"postgres"`
		Password     string `envconfig:"DB_PASSWORD" default:""`
		Name         string `envconfig:"DB_NAME" default:"erp"`
		SSLMode      string `envconfig:"DB_SSLMODE" default:"disable"`
		MaxOpenConns int    `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		Migrate      bool   `envconfig:"DB_MIGRATE" default:"true"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Auth struct {
		// Empty disables the bearer token check.
		JWTSecret string `envconfig:"AUTH_JWT_SECRET"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	}

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}
}

func (c *Config) ConnectionString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DB.User, c.DB.Password),
		Host:     fmt.Sprintf("%s:%d", c.DB.Host, c.DB.Port),
		Path:     c.DB.Name,
		RawQuery: "sslmode=" + url.QueryEscape(c.DB.SSLMode),
	}

	return u.String()
}

// LogLevel maps LOG_LEVEL onto a slog level, falling back to info.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo
	}

	return level
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
