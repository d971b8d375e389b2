package ports

import (
	"encoding/json"
	"fmt"

	"github.com/FinnDore/spot/internal/domain"
)

type trackResponse struct {
	Name        string   `json:"name"`
	Artists     []string `json:"artists"`
	Album       string   `json:"album"`
	AlbumArtURL string   `json:"albumArtUrl,omitempty"`
	URL         string   `json:"url,omitempty"`
	DurationMS  int64    `json:"durationMs"`
}

type currentlyPlayingResponse struct {
	IsPlaying  bool          `json:"isPlaying"`
	ProgressMS int64         `json:"progressMs"`
	Track      trackResponse `json:"track"`
}

func trackToResponse(track domain.Track) trackResponse {
	artists := track.Artists
	if artists == nil {
		artists = []string{}
	}
	return trackResponse{
		Name:        track.Name,
		Artists:     artists,
		Album:       track.Album,
		AlbumArtURL: track.AlbumArtURL,
		URL:         track.URL,
		DurationMS:  track.Duration.Milliseconds(),
	}
}

// currentlyPlayingToResponseData requires a track to be present. Callers
// handle the nothing playing case before marshalling.
func currentlyPlayingToResponseData(playing domain.CurrentlyPlaying) ([]byte, error) {
	if playing.NothingPlaying() {
		return nil, fmt.Errorf("nothing is playing")
	}

	response := currentlyPlayingResponse{
		IsPlaying:  playing.Playing,
		ProgressMS: playing.Progress.Milliseconds(),
		Track:      trackToResponse(*playing.Track),
	}

	data, err := json.Marshal(response)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal currently playing response: %w", err)
	}
	return data, nil
}

func topTracksToResponseData(tracks []domain.Track) ([]byte, error) {
	responses := make([]trackResponse, 0, len(tracks))
	for _, track := range tracks {
		responses = append(responses, trackToResponse(track))
	}

	data, err := json.Marshal(responses)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal top tracks response: %w", err)
	}
	return data, nil
}
