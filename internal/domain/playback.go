package domain

import "fmt"

type PlaybackCommand string

const (
	CommandPlay     PlaybackCommand = "play"
	CommandPause    PlaybackCommand = "pause"
	CommandNext     PlaybackCommand = "next"
	CommandPrevious PlaybackCommand = "previous"
)

func ParsePlaybackCommand(raw string) (PlaybackCommand, error) {
	switch raw {
	case "play":
		return CommandPlay, nil
	case "pause":
		return CommandPause, nil
	case "next":
		return CommandNext, nil
	case "previous":
		return CommandPrevious, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCommand, raw)
}

func (c PlaybackCommand) Validate() error {
	switch c {
	case CommandPlay, CommandPause, CommandNext, CommandPrevious:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidCommand, string(c))
}
