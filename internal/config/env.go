package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Env holds the PENTRIS_* environment overrides. Zero values mean unset.
type Env struct {
	DB          string        `env:"PENTRIS_DB"`
	FPS         int           `env:"PENTRIS_FPS"`
	Seed        int64         `env:"PENTRIS_SEED"`
	SSHAddr     string        `env:"PENTRIS_SSH_ADDR"`
	HostKey     string        `env:"PENTRIS_HOST_KEY"`
	IdleTimeout time.Duration `env:"PENTRIS_IDLE_TIMEOUT"`
	Config      string        `env:"PENTRIS_CONFIG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// LoadEnv reads the PENTRIS_* variables.
func LoadEnv() (Env, error) {
	var e Env
	err := ParseEnv(&e)
	return e, err
}
