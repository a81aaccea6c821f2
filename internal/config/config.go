// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the menu and serve commands.
type Config struct {
	HTTPAddr        string        `env:"EMS_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"EMS_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"EMS_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"EMS_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"EMS_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	NotifyEnabled bool   `env:"EMS_NOTIFY_ENABLED" envDefault:"true"`
	NotifySender  string `env:"EMS_NOTIFY_SENDER" envDefault:"events@localhost"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
