package musicprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"

	"github.com/FinnDore/spot/internal/config"
	"github.com/FinnDore/spot/internal/domain"
	"github.com/FinnDore/spot/internal/logging"
	"github.com/FinnDore/spot/internal/reporting"
)

const topTracksLimit = 10

type spotifyProvider struct {
	client *spotify.Client
}

func (provider *spotifyProvider) GetCurrentTrack(ctx context.Context) (domain.CurrentlyPlaying, error) {
	start := time.Now()
	playing, err := provider.client.PlayerCurrentlyPlaying(ctx)
	if err != nil {
		err := translateError(ctx, "get currently playing", err)
		return domain.CurrentlyPlaying{}, err
	}
	logging.FromContext(ctx).Info("spotify request completed", "operation", "get currently playing", "duration", time.Since(start).String())

	// Spotify responds with no content when nothing is playing
	if playing == nil || playing.Item == nil {
		return domain.CurrentlyPlaying{}, nil
	}

	track := trackFromFullTrack(playing.Item)
	return domain.CurrentlyPlaying{
		Playing:  playing.Playing,
		Progress: time.Duration(playing.Progress) * time.Millisecond,
		Track:    &track,
	}, nil
}

func (provider *spotifyProvider) GetTopTracks(ctx context.Context) ([]domain.Track, error) {
	start := time.Now()
	page, err := provider.client.CurrentUsersTopTracks(ctx, spotify.Limit(topTracksLimit), spotify.Timerange(spotify.ShortTermRange))
	if err != nil {
		err := translateError(ctx, "get top tracks", err)
		return nil, err
	}
	logging.FromContext(ctx).Info("spotify request completed", "operation", "get top tracks", "duration", time.Since(start).String())

	tracks := make([]domain.Track, 0, len(page.Tracks))
	for i := range page.Tracks {
		tracks = append(tracks, trackFromFullTrack(&page.Tracks[i]))
	}
	return tracks, nil
}

func (provider *spotifyProvider) SendPlaybackCommand(ctx context.Context, command domain.PlaybackCommand) error {
	var err error
	switch command {
	case domain.CommandPlay:
		err = provider.client.Play(ctx)
	case domain.CommandPause:
		err = provider.client.Pause(ctx)
	case domain.CommandNext:
		err = provider.client.Next(ctx)
	case domain.CommandPrevious:
		err = provider.client.Previous(ctx)
	default:
		return fmt.Errorf("unknown playback command %q: %w", string(command), domain.ErrInvalidCommand)
	}

	if err != nil {
		return translateError(ctx, fmt.Sprintf("send %s command", command), err)
	}

	logging.FromContext(ctx).Info("playback command sent", "command", string(command))
	return nil
}

// translateError maps errors from the Spotify client onto the domain error
// hierarchy. Responses from the API keep their status code semantics, while
// transport errors are assumed to be intermittent.
func translateError(ctx context.Context, operation string, err error) error {
	var spotifyErr spotify.Error
	if errors.As(err, &spotifyErr) {
		if spotifyErr.Status >= 500 || spotifyErr.Status == http.StatusTooManyRequests {
			err := fmt.Errorf("failed to %s: %s: %w", operation, spotifyErr.Message, domain.ErrUpstreamUnavailable)
			logging.FromContext(ctx).Error(err.Error(), "status", spotifyErr.Status)
			return err
		}
		err := fmt.Errorf("failed to %s: %s: %w", operation, spotifyErr.Message, domain.ErrUpstreamRejected)
		logging.FromContext(ctx).Error(err.Error(), "status", spotifyErr.Status)
		return err
	}

	err = fmt.Errorf("failed to %s: %w: %w", operation, domain.ErrUpstreamUnavailable, err)
	logging.FromContext(ctx).Error(err.Error())
	reporting.Report(ctx, err)
	return err
}

func NewSpotify(httpClient *http.Client) MusicProvider {
	return &spotifyProvider{
		client: spotify.New(httpClient),
	}
}

func NewSpotifyOrMock(ctx context.Context, conf config.Config) (MusicProvider, error) {
	if conf.SpotifyClientID() != "" && conf.SpotifyClientSecret() != "" && conf.SpotifyRefreshToken() != "" {
		authenticator := spotifyauth.New(
			spotifyauth.WithClientID(conf.SpotifyClientID()),
			spotifyauth.WithClientSecret(conf.SpotifyClientSecret()),
		)
		// The token source refreshes the access token on demand, so the
		// refresh token is all we need up front.
		httpClient := authenticator.Client(ctx, &oauth2.Token{RefreshToken: conf.SpotifyRefreshToken()})
		return NewSpotify(httpClient), nil
	}
	if conf.IsDevelopment() {
		return &mockedMusicProvider{}, nil
	}
	return nil, fmt.Errorf("missing Spotify credentials in non-development environment")
}
