package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/cheques/pkg/logger"
)

//nolint:paralleltest
func TestHandler_AddsContextIDs(t *testing.T) {
	buf := new(bytes.Buffer)

	l, err := logger.NewWithWriter(buf, "debug", logger.FormatJSON)
	require.NoError(t, err)

	userID := uuid.Must(uuid.NewV4())
	ctx := logger.WithRequestID(context.Background(), "req-1")
	ctx = logger.WithUserID(ctx, userID)

	l.With("component", "test").InfoContext(ctx, "hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "hello", record["msg"])
	require.Equal(t, "req-1", record["request_id"])
	require.Equal(t, userID.String(), record["user_id"])
	require.Equal(t, "test", record["component"])
	require.Equal(t, "req-1", logger.RequestIDFromCtx(ctx))
}

//nolint:paralleltest
func TestNew_Level(t *testing.T) {
	buf := new(bytes.Buffer)

	_, err := logger.NewWithWriter(buf, "warn", logger.FormatText)
	require.NoError(t, err)

	slog.Info("dropped")
	slog.Warn("kept")

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), "kept")

	_, err = logger.NewWithWriter(buf, "loud", logger.FormatJSON)
	require.Error(t, err)

	_, err = logger.NewWithWriter(buf, "info", "xml")
	require.Error(t, err)
}
