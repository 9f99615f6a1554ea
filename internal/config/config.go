package config

import (
	"errors"
	"fmt"
	"io/fs"
	"itemlist/pkg/retry"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	API      API
	Retry    Retry
	Redis    Redis
}

type API struct {
	BaseURL string        `env:"ITEMS_API_URL" envDefault:"http://localhost:8000"`
	Timeout time.Duration `env:"ITEMS_API_TIMEOUT" envDefault:"15s"`
}

type Retry struct {
	MaxRetries int           `env:"RETRY_MAX_RETRIES" envDefault:"3"`
	BaseDelay  time.Duration `env:"RETRY_BASE_DELAY" envDefault:"1s"`
	MaxDelay   time.Duration `env:"RETRY_MAX_DELAY" envDefault:"10s"`
}

// Redis stores items when Addr is set; otherwise the API server keeps them in memory.
type Redis struct {
	Addr      string `env:"REDIS_ADDRESS"`
	Password  string `env:"REDIS_PASSWORD"`
	DB        int    `env:"REDIS_DB" envDefault:"0"`
	KeyPrefix string `env:"REDIS_KEY_PREFIX" envDefault:"items"`
}

// Policy turns the retry section into an executor policy.
func (r Retry) Policy() retry.Policy {
	p := retry.DefaultPolicy()
	p.MaxRetries = r.MaxRetries
	p.BaseDelay = r.BaseDelay
	p.MaxDelay = r.MaxDelay
	return p
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Config) validate() error {
	switch {
	case c.API.BaseURL == "":
		return errors.New("ITEMS_API_URL must not be empty")
	case c.Retry.MaxRetries < 0:
		return errors.New("RETRY_MAX_RETRIES must be >= 0")
	case c.Retry.BaseDelay < 0 || c.Retry.MaxDelay < 0:
		return errors.New("retry delays must be >= 0")
	}
	return nil
}
