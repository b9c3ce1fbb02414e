package source

import "errors"

var (
	// ErrInvalidJSON indicates a data file that is not a single valid JSON value.
	ErrInvalidJSON = errors.New("invalid json")
)
