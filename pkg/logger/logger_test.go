package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoiceboard/pkg/logger"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name    string
		env     logger.Environment
		level   string
		wantErr bool
	}{
		{name: "development with debug level", env: logger.Development, level: "debug"},
		{name: "production with info level", env: logger.Production, level: "info"},
		{name: "production with empty level", env: logger.Production, level: ""},
		{name: "invalid level", env: logger.Development, level: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.NewLogger(tt.env, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, log)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, log)
		})
	}
}

func TestFromContext(t *testing.T) {
	t.Run("logger present in context", func(t *testing.T) {
		testLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), testLogger)

		extracted, err := logger.FromContext(ctx)
		require.NoError(t, err)
		assert.Same(t, testLogger, extracted)
	})

	t.Run("logger missing from context", func(t *testing.T) {
		_, err := logger.FromContext(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, logger.ErrLoggerNotFound)
	})
}

func TestLogFallback(t *testing.T) {
	t.Run("context logger takes priority", func(t *testing.T) {
		contextLogger, err := logger.NewLogger(logger.Development, "debug")
		require.NoError(t, err)

		ctx := logger.NewContext(context.Background(), contextLogger)

		assert.Same(t, contextLogger, logger.Log(ctx))
	})

	t.Run("global logger used when context empty", func(t *testing.T) {
		globalLogger, err := logger.NewLogger(logger.Production, "warn")
		require.NoError(t, err)

		logger.SetGlobalLogger(globalLogger)

		assert.Same(t, globalLogger, logger.Log(context.Background()))
	})

	t.Run("never returns nil", func(t *testing.T) {
		assert.NotNil(t, logger.Log(context.Background()))
	})
}

func TestRequestIDContext(t *testing.T) {
	t.Run("explicit request id", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-42")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.Equal(t, "req-42", id)
	})

	t.Run("empty request id generates one", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "")

		id, ok := logger.GetRequestID(ctx)
		require.True(t, ok)
		assert.NotEmpty(t, id)
	})

	t.Run("absent request id", func(t *testing.T) {
		_, ok := logger.GetRequestID(context.Background())
		assert.False(t, ok)
	})
}

func TestWithRequestID(t *testing.T) {
	log, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)

	t.Run("returns new logger when request id exists", func(t *testing.T) {
		ctx := logger.NewRequestIDContext(context.Background(), "req-1")
		assert.NotSame(t, log, log.WithRequestID(ctx))
	})

	t.Run("returns same logger when no request id", func(t *testing.T) {
		assert.Same(t, log, log.WithRequestID(context.Background()))
	})
}
