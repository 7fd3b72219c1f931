package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/guardbook/pkg/logger"
)

func TestHandler_Handle(t *testing.T) {
	t.Parallel()

	buf := new(bytes.Buffer)
	l := slog.New(&logger.Handler{Handler: slog.NewJSONHandler(buf, nil)})

	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithAccount(ctx, "guard", "7")

	l.With("component", "test").InfoContext(ctx, "hello")

	var got map[string]any

	err := json.Unmarshal(buf.Bytes(), &got)
	require.NoError(t, err)

	require.Equal(t, "req-1", got["request_id"])
	require.Equal(t, "guard", got["account"])
	require.Equal(t, "7", got["account_id"])
	require.Equal(t, "guardbook", got["origin_service"])
	require.Equal(t, "test", got["component"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := logger.New("loud")
	require.Error(t, err)
}
