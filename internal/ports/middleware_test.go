package ports

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FinnDore/spot/internal/ratelimiting"
)

func TestComposeMiddlewares(t *testing.T) {
	t.Parallel()

	appendingMiddleware := func(value string) func(http.HandlerFunc) http.HandlerFunc {
		return func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				w.Header().Add("X-Order", value)
				next(w, r)
			}
		}
	}

	composed := ComposeMiddlewares(
		appendingMiddleware("first"),
		appendingMiddleware("second"),
		appendingMiddleware("third"),
	)

	handler := composed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"first", "second", "third"}, w.Header().Values("X-Order"))
}

func TestNewRateLimitMiddleware(t *testing.T) {
	t.Parallel()

	limiter, stop := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(1),
		ratelimiting.BurstSize(2),
	)
	t.Cleanup(stop)
	requestLimiter := ratelimiting.NewRequestBasedRateLimiter(limiter, ratelimiting.IPKeyFunc)

	limited := false
	middleware := NewRateLimitMiddleware(requestLimiter, func(w http.ResponseWriter, r *http.Request) {
		limited = true
		w.WriteHeader(http.StatusTooManyRequests)
	})

	handler := middleware(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	makeRequest := func() int {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "192.0.2.1:1234"
		w := httptest.NewRecorder()
		handler(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, makeRequest())
	assert.Equal(t, http.StatusOK, makeRequest())
	assert.Equal(t, http.StatusTooManyRequests, makeRequest())
	assert.True(t, limited)
}

func TestNewTokenAuthMiddleware(t *testing.T) {
	t.Parallel()

	okHandler := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	t.Run("empty expected token disables the check", func(t *testing.T) {
		t.Parallel()

		handler := NewTokenAuthMiddleware("")(okHandler)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodPost, "/player/play", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("valid token passes", func(t *testing.T) {
		t.Parallel()

		handler := NewTokenAuthMiddleware("secret")(okHandler)

		r := httptest.NewRequest(http.MethodPost, "/player/play", nil)
		r.Header.Set("Authorization", "Bearer secret")
		w := httptest.NewRecorder()
		handler(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewTokenAuthMiddleware("secret")(okHandler)

		w := httptest.NewRecorder()
		handler(w, httptest.NewRequest(http.MethodPost, "/player/play", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token without bearer prefix is rejected", func(t *testing.T) {
		t.Parallel()

		handler := NewTokenAuthMiddleware("secret")(okHandler)

		r := httptest.NewRequest(http.MethodPost, "/player/play", nil)
		r.Header.Set("Authorization", "secret-but-wrong")
		w := httptest.NewRecorder()
		handler(w, r)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
