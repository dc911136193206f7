package entities

import "errors"

// Domain errors
var (
	// Clip errors
	ErrUnsupportedClipRef = errors.New("unsupported clip reference")
	ErrUnsupportedFormat  = errors.New("unsupported audio format")
	ErrEmptyClip          = errors.New("clip has no samples")
)
