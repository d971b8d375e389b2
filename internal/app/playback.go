package app

import (
	"context"
	"fmt"

	"github.com/FinnDore/spot/internal/adapters/cache"
	"github.com/FinnDore/spot/internal/adapters/musicprovider"
	"github.com/FinnDore/spot/internal/domain"
	"github.com/FinnDore/spot/internal/logging"
)

type ExecutePlaybackCommand func(ctx context.Context, command domain.PlaybackCommand) error

// BuildExecutePlaybackCommand wires command dispatch to cache invalidation.
// The cached current track is dropped after a successful command so that the
// next read observes the new player state.
func BuildExecutePlaybackCommand(coordinator *cache.Coordinator[domain.CurrentlyPlaying], provider musicprovider.MusicProvider) ExecutePlaybackCommand {
	return func(ctx context.Context, command domain.PlaybackCommand) error {
		if err := command.Validate(); err != nil {
			logging.FromContext(ctx).Error("invalid playback command", "command", string(command))
			return err
		}

		err := provider.SendPlaybackCommand(ctx, command)
		if err != nil {
			// NOTE: MusicProvider implementations handle their own error reporting
			// A failed command did not change the player state, so the cached
			// current track remains valid.
			return fmt.Errorf("could not execute %s command: %w", command, err)
		}

		coordinator.Invalidate(cache.KeyCurrentTrack)

		logging.FromContext(ctx).Info("playback command executed", "command", string(command))
		return nil
	}
}
