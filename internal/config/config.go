package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name      string `envconfig:"APP_NAME" default:"Nivesh"`
		Port      int    `envconfig:"PORT" default:"8080"`
		StaticDir string `envconfig:"STATIC_DIR" default:"./web/dist"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"nivesh"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Prices struct {
		AlphaVantageKey string        `envconfig:"ALPHAVANTAGE_API_KEY"`
		IndianAPIKey    string        `envconfig:"INDIANAPI_KEY"`
		MetalBaseURL    string        `envconfig:"METAL_API_URL" default:"https://api.gold-api.com"`
		FXBaseURL       string        `envconfig:"FX_API_URL" default:"https://open.er-api.com/v6"`
		CacheTTL        time.Duration `envconfig:"PRICE_CACHE_TTL" default:"5m"`
	}

	Refresh struct {
		// Cron expression for scheduled price refresh; empty disables it.
		Schedule string `envconfig:"REFRESH_SCHEDULE" default:""`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
