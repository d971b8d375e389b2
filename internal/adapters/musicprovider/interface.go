package musicprovider

import (
	"context"

	"github.com/FinnDore/spot/internal/domain"
)

type MusicProvider interface {
	// Raises domain.ErrUpstreamUnavailable if the provider implementation receives an error believed to be intermittent. The call may be retried later.
	//
	// Raises domain.ErrUpstreamRejected if the provider rejects the request outright. Retrying will not help.
	GetCurrentTrack(ctx context.Context) (domain.CurrentlyPlaying, error)

	// Returns the user's most played tracks over the last few weeks, most played first.
	//
	// Raises the same errors as GetCurrentTrack.
	GetTopTracks(ctx context.Context) ([]domain.Track, error)

	// Executes the given playback command on the user's active device.
	//
	// Raises the same errors as GetCurrentTrack.
	SendPlaybackCommand(ctx context.Context, command domain.PlaybackCommand) error
}
