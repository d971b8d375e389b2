package ports

import (
	"log/slog"
	"net/http"

	"github.com/FinnDore/spot/internal/app"
	"github.com/FinnDore/spot/internal/domain"
	"github.com/FinnDore/spot/internal/logging"
	"github.com/FinnDore/spot/internal/ratelimiting"
	"github.com/FinnDore/spot/internal/reporting"
)

func MakePlayerHandler(
	executePlaybackCommand app.ExecutePlaybackCommand,
	authToken string,
	allowedOrigins *DomainSuffixes,
	rootLogger *slog.Logger,
	sentryMiddleware func(http.HandlerFunc) http.HandlerFunc,
) http.HandlerFunc {
	ipLimiter, _ := ratelimiting.NewTokenBucketRateLimiter(
		ratelimiting.RefillPerSecond(2),
		ratelimiting.BurstSize(30),
	)
	ipRateLimiter := ratelimiting.NewRequestBasedRateLimiter(
		ipLimiter,
		ratelimiting.IPKeyFunc,
	)

	middleware := ComposeMiddlewares(
		buildMetricsMiddleware("player"),
		logging.NewRequestLoggerMiddleware(rootLogger),
		sentryMiddleware,
		reporting.NewAddMetaMiddleware("player"),
		BuildCORSMiddleware(allowedOrigins),
		NewRateLimitMiddleware(ipRateLimiter, makeOnLimitExceeded(ipRateLimiter)),
		NewTokenAuthMiddleware(authToken),
	)

	handler := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rawCommand := r.PathValue("player_state")

		ctx = logging.AddMetaToContext(ctx,
			slog.String("command", rawCommand),
		)
		logger := logging.FromContext(ctx)

		ctx = reporting.AddExtrasToContext(ctx,
			map[string]string{
				"command": rawCommand,
			},
		)

		command, err := domain.ParsePlaybackCommand(rawCommand)
		if err != nil {
			statusCode := writeErrorResponse(ctx, w, err)
			logger.Info("Returning response", "statusCode", statusCode, "reason", "invalid command")
			return
		}

		err = executePlaybackCommand(ctx, command)
		if err != nil {
			logger.Error("Error executing playback command", "error", err)
			statusCode := writeErrorResponse(ctx, w, err)
			logger.Info("Returning response", "statusCode", statusCode, "reason", "error")
			return
		}

		statusCode := http.StatusNoContent
		logger.Info("Returning response", "statusCode", statusCode, "reason", "success")
		w.WriteHeader(statusCode)
	}

	return middleware(handler)
}
