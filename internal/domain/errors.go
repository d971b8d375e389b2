package domain

import "errors"

var (
	ErrUpstreamUnavailable = errors.New("streaming service unavailable")
	ErrUpstreamRejected    = errors.New("streaming service rejected the request")
	ErrInvalidCommand      = errors.New("invalid playback command")
)
