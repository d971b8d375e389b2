package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/FinnDore/spot/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestNewRequestLoggerMiddleware(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	rootLogger := slog.New(slog.NewJSONHandler(buf, nil))
	middleware := logging.NewRequestLoggerMiddleware(rootLogger)

	handler := middleware(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("handled")
		w.WriteHeader(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/top-songs", nil)
	req.Header.Set("User-Agent", "test-agent")
	handler(w, req)

	require.Equal(t, http.StatusNoContent, w.Result().StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "handled", entry["msg"])
	require.Equal(t, "GET", entry["method"])
	require.Equal(t, "/top-songs", entry["path"])
	require.Equal(t, "test-agent", entry["userAgent"])
}

func TestNewRequestLoggerMiddlewareMissingUserAgent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	middleware := logging.NewRequestLoggerMiddleware(slog.New(slog.NewJSONHandler(buf, nil)))

	handler := middleware(func(w http.ResponseWriter, r *http.Request) {
		logging.FromContext(r.Context()).Info("handled")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	handler(w, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "<missing>", entry["userAgent"])
}
