package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr         string        `env:"FACULTYHUB_ADDR" envDefault:":8080"`
	DataPath         string        `env:"FACULTYHUB_DATA" envDefault:"facultyhub.db"`
	JWTSecret        string        `env:"FACULTYHUB_JWT_SECRET" envDefault:"facultyhub-dev-secret-change-me"`
	GelfAddr         string        `env:"FACULTYHUB_GELF_ADDR"`
	SubmitResetDelay time.Duration `env:"FACULTYHUB_SUBMIT_RESET_DELAY" envDefault:"400ms"`
}

// Load parses configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
