package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cadastro/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("writes to the configured output", func(t *testing.T) {
		buf := new(bytes.Buffer)
		log := logger.New(logger.WithOutput(buf), logger.WithNoColor())

		log.Info("validation accepted", "field", "cpf")

		output := buf.String()
		require.NotEmpty(t, output)
		assert.Contains(t, output, "validation accepted")
		assert.Contains(t, output, "cpf")
	})

	t.Run("respects the configured level", func(t *testing.T) {
		buf := new(bytes.Buffer)
		log := logger.New(logger.WithOutput(buf), logger.WithNoColor())

		log.Debug("hidden at info level")
		assert.Empty(t, buf.String())

		log = logger.New(
			logger.WithOutput(buf),
			logger.WithNoColor(),
			logger.WithLevel(slog.LevelDebug),
		)
		log.Debug("visible at debug level")
		assert.Contains(t, buf.String(), "visible at debug level")
	})

	t.Run("ignores nil output", func(t *testing.T) {
		assert.NotPanics(t, func() {
			_ = logger.New(logger.WithOutput(nil))
		})
	})
}
