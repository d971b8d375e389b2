package ports

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/FinnDore/spot/internal/logging"
	"github.com/FinnDore/spot/internal/ratelimiting"
)

func NewRateLimitMiddleware(rateLimiter ratelimiting.RequestRateLimiter, onLimitExceeded http.HandlerFunc) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !rateLimiter.Consume(r) {
				onLimitExceeded(w, r)
				return
			}

			next(w, r)
		}
	}
}

// NewTokenAuthMiddleware guards mutating routes with a shared bearer token.
// An empty expected token disables the check, which only happens in
// development.
func NewTokenAuthMiddleware(expectedToken string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if expectedToken == "" {
				next(w, r)
				return
			}

			const prefix = "Bearer "
			authorization := r.Header.Get("Authorization")
			token, hasPrefix := strings.CutPrefix(authorization, prefix)
			if !hasPrefix || subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				statusCode := http.StatusUnauthorized
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(statusCode)
				w.Write([]byte(`{"success":false,"cause":"Unauthorized"}`))

				logging.FromContext(r.Context()).Info("Returning response", "statusCode", statusCode, "reason", "invalid auth token")
				return
			}

			next(w, r)
		}
	}
}

func ComposeMiddlewares(middlewares ...func(http.HandlerFunc) http.HandlerFunc) func(http.HandlerFunc) http.HandlerFunc {
	if len(middlewares) == 1 {
		return middlewares[0]
	}
	first := middlewares[0]
	rest := ComposeMiddlewares(middlewares[1:]...)
	return func(h http.HandlerFunc) http.HandlerFunc {
		return first(rest(h))
	}
}
