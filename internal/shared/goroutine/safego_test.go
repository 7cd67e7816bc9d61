package goroutine

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"obleafusion/internal/shared/logger"
)

func TestSafeGo(t *testing.T) {
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))

	t.Run("delivers the returned error", func(t *testing.T) {
		want := errors.New("listen failed")
		assert.Equal(t, want, <-SafeGo(log, "server", func() error { return want }))
	})

	t.Run("delivers nil on success", func(t *testing.T) {
		assert.NoError(t, <-SafeGo(log, "server", func() error { return nil }))
	})

	t.Run("converts a panic into an error", func(t *testing.T) {
		err := <-SafeGo(log, "server", func() error { panic("boom") })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
	})
}
