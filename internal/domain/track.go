package domain

import "time"

type Track struct {
	Name        string
	Artists     []string
	Album       string
	AlbumArtURL string
	URL         string
	Duration    time.Duration
}

// CurrentlyPlaying is the state of the user's player at the time it was
// queried. A zero value means no active session ("nothing playing"), which is
// a successful response, not an error.
type CurrentlyPlaying struct {
	Playing  bool
	Progress time.Duration

	// Track is nil when nothing is playing
	Track *Track
}

func (c CurrentlyPlaying) NothingPlaying() bool {
	return c.Track == nil
}
