package cdek

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environment selects one of the carrier's named API deployments.
type Environment string

const (
	// EnvironmentProduction targets the live carrier API.
	EnvironmentProduction Environment = "production"
	// EnvironmentDemo targets the carrier's sandbox API. It is the default
	// so that misconfigured processes never hit production by accident.
	EnvironmentDemo Environment = "demo"
)

var endpoints = map[Environment]string{
	EnvironmentProduction: "https://api.cdek.ru/v2",
	EnvironmentDemo:       "https://api.edu.cdek.ru/v2",
}

// Config holds client construction parameters. All fields are loadable from
// the environment via LoadConfig; an explicit BaseURL overrides the
// environment selector.
type Config struct {
	ClientID     string        `env:"CDEK_CLIENT_ID"`
	ClientSecret string        `env:"CDEK_CLIENT_SECRET"`
	Environment  Environment   `env:"CDEK_API_ENV" envDefault:"demo"`
	BaseURL      string        `env:"CDEK_API_URL"`
	HTTPTimeout  time.Duration `env:"CDEK_HTTP_TIMEOUT" envDefault:"10s"`
}

// baseURL resolves the API base: explicit override first, then the named
// environment.
func (c Config) baseURL() (string, error) {
	if c.BaseURL != "" {
		return c.BaseURL, nil
	}
	environment := c.Environment
	if environment == "" {
		environment = EnvironmentDemo
	}
	base, ok := endpoints[environment]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownEnvironment, environment)
	}
	return base, nil
}

func (c Config) validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return ErrMissingCredentials
	}
	return nil
}

var dotenvOnce sync.Once

// LoadConfig reads client configuration from the process environment,
// loading a .env file first when one exists in the working directory.
func LoadConfig() (Config, error) {
	dotenvOnce.Do(func() {
		// The .env file is optional.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(errors.New("failed to parse environment variables into config"), err)
	}
	return cfg, nil
}
