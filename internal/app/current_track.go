package app

import (
	"context"
	"fmt"

	"github.com/FinnDore/spot/internal/adapters/cache"
	"github.com/FinnDore/spot/internal/adapters/musicprovider"
	"github.com/FinnDore/spot/internal/domain"
)

type GetCurrentTrack func(ctx context.Context) (domain.CurrentlyPlaying, error)

func BuildGetCurrentTrackWithCache(coordinator *cache.Coordinator[domain.CurrentlyPlaying], provider musicprovider.MusicProvider) GetCurrentTrack {
	return func(ctx context.Context) (domain.CurrentlyPlaying, error) {
		playing, err := coordinator.GetOrFetch(ctx, cache.KeyCurrentTrack, func(ctx context.Context) (domain.CurrentlyPlaying, error) {
			// NOTE: MusicProvider implementations handle their own error reporting
			return provider.GetCurrentTrack(ctx)
		})
		if err != nil {
			return domain.CurrentlyPlaying{}, fmt.Errorf("could not get currently playing track: %w", err)
		}

		return playing, nil
	}
}
