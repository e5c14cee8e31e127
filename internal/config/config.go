package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App     App
	HTTP    HTTP
	Probe   Probe
	Metrics Metrics
	Leads   Leads
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"lead-qualifier"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	NoColor  bool   `env:"LOG_NO_COLOR" envDefault:"false"`
}

// Load reads an optional .env file and then the process environment.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
