package app

import (
	"context"
	"fmt"

	"github.com/FinnDore/spot/internal/adapters/cache"
	"github.com/FinnDore/spot/internal/adapters/musicprovider"
	"github.com/FinnDore/spot/internal/domain"
)

type GetTopTracks func(ctx context.Context) ([]domain.Track, error)

func BuildGetTopTracksWithCache(coordinator *cache.Coordinator[[]domain.Track], provider musicprovider.MusicProvider) GetTopTracks {
	return func(ctx context.Context) ([]domain.Track, error) {
		tracks, err := coordinator.GetOrFetch(ctx, cache.KeyTopTracks, func(ctx context.Context) ([]domain.Track, error) {
			// NOTE: MusicProvider implementations handle their own error reporting
			return provider.GetTopTracks(ctx)
		})
		if err != nil {
			return nil, fmt.Errorf("could not get top tracks: %w", err)
		}

		return tracks, nil
	}
}
