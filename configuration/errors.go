package configuration

import "errors"

var (
	// ErrAlreadyResolved is returned by Resolve on a resolved Configuration.
	ErrAlreadyResolved = errors.New("configuration already resolved")
)
