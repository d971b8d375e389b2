package ports

import (
	"log/slog"
	"net/http"

	"github.com/FinnDore/spot/internal/app"
	"github.com/FinnDore/spot/internal/logging"
	"github.com/FinnDore/spot/internal/ratelimiting"
	"github.com/FinnDore/spot/internal/reporting"
)

func MakeGetTopSongsHandler(
	getTopTracks app.GetTopTracks,
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
		buildMetricsMiddleware("top-songs"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("top-songs"),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter, makeOnLimitExceeded(ipRateLimiter)),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := logging.FromContext(ctx)

		tracks, err := getTopTracks(ctx)
		if err != nil {
			logger.Error("Error getting top tracks", "error", err)
			statusCode := writeErrorResponse(ctx, w, err)
			logger.Info("Returning response", "statusCode", statusCode, "reason", "error")
			return
		}

		responseData, err := topTracksToResponseData(tracks)
		if err != nil {
			logger.Error("Failed to marshal top tracks", "error", err)
			reporting.Report(ctx, err)

			statusCode := writeErrorResponse(ctx, w, err)
			logger.Info("Returning response", "statusCode", statusCode, "reason", "error")
			return
		}

		statusCode := http.StatusOK
		logger.Info("Returning response", "statusCode", statusCode, "reason", "success", "count", len(tracks))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		w.Write(responseData)
	}

	return middleware(handler)
}
