package platform

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig is the process environment understood by the CLI.
type EnvConfig struct {
	Dir           string `env:"NOTEKEEPER_DIR"`
	Adapter       string `env:"NOTEKEEPER_ADAPTER" envDefault:"fs"`
	RedisAddr     string `env:"NOTEKEEPER_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"NOTEKEEPER_REDIS_PASSWORD"`
	RedisDB       int    `env:"NOTEKEEPER_REDIS_DB" envDefault:"0"`
	ReadOnly      bool   `env:"NOTEKEEPER_READ_ONLY" envDefault:"false"`
	SystemDark    bool   `env:"NOTEKEEPER_SYSTEM_DARK" envDefault:"false"`
}

// ParseEnv loads EnvConfig from environment variables.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
