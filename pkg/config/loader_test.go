package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cadastro/pkg/config"
)

type testConfig struct {
	Language string `env:"CADASTRO_TEST_LANG" envDefault:"pt-BR"`
	LogLevel string `env:"CADASTRO_TEST_LOG_LEVEL" envDefault:"info"`
	Required string `env:"CADASTRO_TEST_REQUIRED"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when env is unset", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		require.NoError(t, err)

		assert.Equal(t, "pt-BR", cfg.Language)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Empty(t, cfg.Required)
	})

	t.Run("reads values from environment", func(t *testing.T) {
		t.Setenv("CADASTRO_TEST_LANG", "en")
		t.Setenv("CADASTRO_TEST_LOG_LEVEL", "debug")

		var cfg testConfig
		err := config.Load(&cfg)
		require.NoError(t, err)

		assert.Equal(t, "en", cfg.Language)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("wraps parse failures", func(t *testing.T) {
		type badConfig struct {
			Count int `env:"CADASTRO_TEST_COUNT"`
		}
		t.Setenv("CADASTRO_TEST_COUNT", "not-a-number")

		var cfg badConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("returns config on success", func(t *testing.T) {
		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() { config.MustLoad[testConfig](nil) })
	})
}
