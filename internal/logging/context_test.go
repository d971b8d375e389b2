package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/FinnDore/spot/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	ctx = logging.AddToContext(ctx, logger)

	retrievedLogger := logging.FromContext(ctx)
	require.Equal(t, logger, retrievedLogger)
}

func TestFromContextFallback(t *testing.T) {
	t.Parallel()

	// A context without a logger should still return a usable logger
	logger := logging.FromContext(context.Background())
	require.NotNil(t, logger)
}

func TestAddMetaToContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	rootLogger := slog.New(slog.NewJSONHandler(buf, nil)).With(slog.String("rootprop", "rootval"))
	ctx := logging.AddToContext(context.Background(), rootLogger)

	ctx = logging.AddMetaToContext(ctx, slog.String("testprop", "testval"))
	logging.FromContext(ctx).Info("test")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "test", entry["msg"])
	require.Equal(t, "rootval", entry["rootprop"])
	require.Equal(t, "testval", entry["testprop"])
}
