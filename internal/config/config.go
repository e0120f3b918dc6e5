package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the storefront runtime configuration, loaded from environment
// variables.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// RabbitURL is optional; when empty the order.placed publisher is not
	// wired and checkout still works.
	RabbitURL string `env:"RABBITMQ_URL"`

	// AuthSecret enables bearer-token verification. When empty the service
	// trusts the X-User-Id header (local/demo mode).
	AuthSecret string `env:"AUTH_SECRET"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
