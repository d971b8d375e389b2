package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/FinnDore/spot/internal/adapters/cache"
	"github.com/FinnDore/spot/internal/adapters/musicprovider"
	"github.com/FinnDore/spot/internal/app"
	"github.com/FinnDore/spot/internal/config"
	"github.com/FinnDore/spot/internal/domain"
	"github.com/FinnDore/spot/internal/ports"
	"github.com/FinnDore/spot/internal/reporting"
	"github.com/FinnDore/spot/internal/telemetry"
)

// TODO: Put in config
const PROD_DOMAIN_SUFFIX = "finndore.dev"

const cacheTTL = 10 * time.Second

func main() {
	ctx := context.Background()

	instanceID := uuid.New().String()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("instanceID", instanceID)

	fail := func(msg string, args ...any) {
		logger.Error(msg, args...)
		os.Exit(1)
	}

	config, err := config.ConfigFromEnv()
	if err != nil {
		fail("Failed to load config", "error", err.Error())
	}
	logger.Info("Loaded config", "config", config.NonSensitiveString())

	shutdownTelemetry, err := telemetry.SetupOTelSDK(ctx, "spot")
	if err != nil {
		fail("Failed to initialize telemetry", "error", err.Error())
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			logger.Error("Failed to shut down telemetry", "error", err.Error())
		}
	}()

	currentTrackCoordinator := cache.NewCoordinator(cache.NewTTLCache[domain.CurrentlyPlaying](cacheTTL))
	topTracksCoordinator := cache.NewCoordinator(cache.NewTTLCache[[]domain.Track](cacheTTL))

	provider, err := musicprovider.NewSpotifyOrMock(ctx, config)
	if err != nil {
		fail("Failed to initialize Spotify client", "error", err.Error())
	}
	logger.Info("Initialized Spotify client")

	sentryMiddleware, flush, err := reporting.NewSentryMiddlewareOrMock(config)
	if err != nil {
		fail("Failed to initialize Sentry", "error", err.Error())
	}
	defer flush()
	logger.Info("Initialized Sentry middleware")

	allowedOrigins, err := ports.NewDomainSuffixes(PROD_DOMAIN_SUFFIX)
	if err != nil {
		fail("Failed to initialize allowed origins", "error", err.Error())
	}

	getCurrentTrack := app.BuildGetCurrentTrackWithCache(currentTrackCoordinator, provider)
	getTopTracks := app.BuildGetTopTracksWithCache(topTracksCoordinator, provider)
	executePlaybackCommand := app.BuildExecutePlaybackCommand(currentTrackCoordinator, provider)

	mux := http.NewServeMux()

	mux.HandleFunc(
		"OPTIONS /{$}",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"GET /{$}",
		ports.MakeGetCurrentTrackHandler(
			getCurrentTrack,
			allowedOrigins,
			logger.With("port", "current-track"),
			sentryMiddleware,
		),
	)

	mux.HandleFunc(
		"OPTIONS /top-songs",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc(
		"GET /top-songs",
		ports.MakeGetTopSongsHandler(
			getTopTracks,
			allowedOrigins,
			logger.With("port", "top-songs"),
			sentryMiddleware,
		),
	)

	playerHandler := ports.MakePlayerHandler(
		executePlaybackCommand,
		config.ExternalAuthToken(),
		allowedOrigins,
		logger.With("port", "player"),
		sentryMiddleware,
	)
	mux.HandleFunc(
		"OPTIONS /player/{player_state}",
		ports.BuildCORSHandler(allowedOrigins),
	)
	mux.HandleFunc("POST /player/{player_state}", playerHandler)
	mux.HandleFunc("PUT /player/{player_state}", playerHandler)

	logger.Info("Init complete")
	err = http.ListenAndServe(fmt.Sprintf(":%s", config.Port()), otelhttp.NewHandler(mux, "spot"))
	if errors.Is(err, http.ErrServerClosed) {
		logger.Info("Server shutdown")
	} else {
		fail("Server error", "error", err.Error())
	}
}
