package ai

import "errors"

var (
	ErrNotConfigured      = errors.New("anthropic api key not configured")
	ErrUnparsableResponse = errors.New("unparsable model response")
)
