package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load loads environment variables into the provided configuration struct.
//
// The function first attempts to load the default .env file if it hasn't
// been loaded yet, then parses environment variables into the struct
// based on its `env` field tags. The CLI is short-lived, so unlike a
// long-running service there is no per-type caching: each call parses
// the current environment.
//
// Example:
//
//	type CLIConfig struct {
//		Language string `env:"CADASTRO_LANG" envDefault:"pt-BR"`
//		LogLevel string `env:"CADASTRO_LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg CLIConfig
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}
