package stats

import "errors"

var (
	// ErrInvalidArgument is returned for a nil sample or a negative range.
	ErrInvalidArgument = errors.New("invalid argument")
)
