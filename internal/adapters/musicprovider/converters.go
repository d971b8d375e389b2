package musicprovider

import (
	"github.com/zmb3/spotify/v2"

	"github.com/FinnDore/spot/internal/domain"
)

func trackFromFullTrack(fullTrack *spotify.FullTrack) domain.Track {
	artists := make([]string, 0, len(fullTrack.Artists))
	for _, artist := range fullTrack.Artists {
		artists = append(artists, artist.Name)
	}

	albumArtURL := ""
	if len(fullTrack.Album.Images) > 0 {
		// Images are ordered widest first
		albumArtURL = fullTrack.Album.Images[0].URL
	}

	return domain.Track{
		Name:        fullTrack.Name,
		Artists:     artists,
		Album:       fullTrack.Album.Name,
		AlbumArtURL: albumArtURL,
		URL:         fullTrack.ExternalURLs["spotify"],
		Duration:    fullTrack.TimeDuration(),
	}
}
