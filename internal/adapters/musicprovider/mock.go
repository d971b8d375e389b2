package musicprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/FinnDore/spot/internal/domain"
)

// mockedMusicProvider serves canned data so the server can run locally
// without Spotify credentials.
type mockedMusicProvider struct{}

func mockTrack(index int) domain.Track {
	return domain.Track{
		Name:        fmt.Sprintf("Mock Track %d", index),
		Artists:     []string{"Mock Artist"},
		Album:       "Mock Album",
		AlbumArtURL: "https://example.com/album-art.png",
		URL:         fmt.Sprintf("https://open.spotify.com/track/mock-%d", index),
		Duration:    3 * time.Minute,
	}
}

func (provider *mockedMusicProvider) GetCurrentTrack(ctx context.Context) (domain.CurrentlyPlaying, error) {
	track := mockTrack(1)
	return domain.CurrentlyPlaying{
		Playing:  true,
		Progress: 42 * time.Second,
		Track:    &track,
	}, nil
}

func (provider *mockedMusicProvider) GetTopTracks(ctx context.Context) ([]domain.Track, error) {
	tracks := make([]domain.Track, 0, topTracksLimit)
	for i := 1; i <= topTracksLimit; i++ {
		tracks = append(tracks, mockTrack(i))
	}
	return tracks, nil
}

func (provider *mockedMusicProvider) SendPlaybackCommand(ctx context.Context, command domain.PlaybackCommand) error {
	return command.Validate()
}
