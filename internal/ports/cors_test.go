package ports

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDomainSuffixes(t *testing.T) {
	t.Parallel()

	t.Run("valid suffixes", func(t *testing.T) {
		t.Parallel()
		_, err := NewDomainSuffixes("example.com", "example.org")
		assert.NoError(t, err)
	})

	t.Run("leading dot", func(t *testing.T) {
		t.Parallel()
		_, err := NewDomainSuffixes(".example.com")
		assert.Error(t, err)
	})

	t.Run("scheme included", func(t *testing.T) {
		t.Parallel()
		_, err := NewDomainSuffixes("https://example.com")
		assert.Error(t, err)
	})
}

func TestOriginMatchesSuffix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		origin  string
		suffix  string
		matches bool
	}{
		{origin: "https://example.com", suffix: "example.com", matches: true},
		{origin: "https://www.example.com", suffix: "example.com", matches: true},
		{origin: "https://deeply.nested.example.com", suffix: "example.com", matches: true},
		{origin: "http://example.com", suffix: "example.com", matches: false},
		{origin: "https://example.com.evil.com", suffix: "example.com", matches: false},
		{origin: "https://notexample.com", suffix: "example.com", matches: false},
		{origin: "", suffix: "example.com", matches: false},
	}

	for _, c := range cases {
		t.Run(c.origin, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, c.matches, originMatchesSuffix(c.origin, c.suffix))
		})
	}
}

func TestBuildCORSMiddleware(t *testing.T) {
	t.Parallel()

	suffixes, err := NewDomainSuffixes("example.com")
	require.NoError(t, err)

	middleware := BuildCORSMiddleware(suffixes)

	t.Run("allowed origin gets cors headers", func(t *testing.T) {
		t.Parallel()

		handler := middleware(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "https://sub.example.com")
		w := httptest.NewRecorder()
		handler(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://sub.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight for allowed origin short-circuits", func(t *testing.T) {
		t.Parallel()

		handler := middleware(func(w http.ResponseWriter, r *http.Request) {
			t.Error("next handler should not be called for preflight")
		})

		r := httptest.NewRequest(http.MethodOptions, "/", nil)
		r.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()
		handler(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "GET,POST,PUT", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("disallowed origin gets no cors headers", func(t *testing.T) {
		t.Parallel()

		handler := middleware(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "https://evil.com")
		w := httptest.NewRecorder()
		handler(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
