package ports

import (
	"log/slog"
	"net/http"

	"github.com/FinnDore/spot/internal/app"
	"github.com/FinnDore/spot/internal/logging"
	"github.com/FinnDore/spot/internal/ratelimiting"
	"github.com/FinnDore/spot/internal/reporting"
)

func makeOnLimitExceeded(rateLimiter ratelimiting.RequestRateLimiter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.FromContext(ctx)

		statusCode := http.StatusTooManyRequests

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write([]byte(`{"success":false,"cause":"Rate limit exceeded"}`))

		logger.Info("Returning response", "statusCode", statusCode, "reason", "ratelimit exceeded", "key", rateLimiter.KeyFor(r))
	}
}

func MakeGetCurrentTrackHandler(
	getCurrentTrack app.GetCurrentTrack,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	ipLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(8),
		ratelimiting.BurstSize(120),
	)
	ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		ipLimiter,
		ratelimiting.IPKeyFunc,
	)

	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("current-track"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("current-track"),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter, makeOnLimitExceeded(ipRateLimiter)),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.FromContext(ctx)

		playing, err := getCurrentTrack(ctx)
		if err != nil {
			logger.Error("Error getting current track", "error", err)
			statusCode := writeErrorResponse(ctx, w, err)
			logger.Info("Returning response", "statusCode", statusCode, "reason", "error")
			return
		}

		if playing.NothingPlaying() {
			statusCode := http.StatusNoContent
			w.WriteHeader(statusCode)
			logger.Info("Returning response", "statusCode", statusCode, "reason", "nothing playing")
			return
		}

		responseData, err := currentlyPlayingToResponseData(playing)
		if err != nil {
			logger.Error("Failed to marshal current track", "error", err)
			reporting.Report(ctx, err)

			statusCode := writeErrorResponse(ctx, w, err)
			logger.Info("Returning response", "statusCode", statusCode, "reason", "error")
			return
		}

		statusCode := http.StatusOK
		logger.Info("Returning response", "statusCode", statusCode, "reason", "success")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write(responseData)
	}

	return middleware(handler)
}
