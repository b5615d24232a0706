package boardextract

import "errors"

var (
	// ErrImageNotFound is returned when an image path does not resolve to a file.
	ErrImageNotFound = errors.New("image not found")
	// ErrInvalidArgument covers bad pixel sources, directions, modes and config values.
	ErrInvalidArgument = errors.New("invalid argument")
)
