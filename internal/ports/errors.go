package ports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/FinnDore/spot/internal/domain"
	"github.com/FinnDore/spot/internal/logging"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Cause   string `json:"cause"`
}

func writeErrorResponse(ctx context.Context, w http.ResponseWriter, responseError error) int {
	w.Header().Set("Content-Type", "application/json")

	// Unknown error: default to 500
	statusCode := http.StatusInternalServerError
	cause := "Internal server error"

	if errors.Is(responseError, domain.ErrInvalidCommand) {
		statusCode = http.StatusBadRequest
		cause = "Invalid playback command"
	} else if errors.Is(responseError, domain.ErrUpstreamRejected) {
		statusCode = http.StatusBadRequest
		cause = "Request rejected by Spotify"
	} else if errors.Is(responseError, domain.ErrUpstreamUnavailable) {
		statusCode = http.StatusBadGateway
		cause = "Spotify is unavailable"
	}

	errorBytes, err := json.Marshal(errorResponse{
		Success: false,
		Cause:   cause,
	})
	if err != nil {
		logging.FromContext(ctx).Error("failed to marshal error response", "error", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success":false,"cause":"Internal server error"}`))
		return http.StatusInternalServerError
	}

	w.WriteHeader(statusCode)
	w.Write(errorBytes)
	return statusCode
}
