package config

import "errors"

// Validation errors returned by [ResolutionContext.validate].
var (
	// ErrInvalidAppName indicates an application name that is not a single
	// path element (empty segments, separators, "." or "..").
	ErrInvalidAppName = errors.New("invalid application name")
	// ErrInvalidEnvironment indicates an environment name containing
	// characters that cannot appear in a file name tag.
	ErrInvalidEnvironment = errors.New("invalid environment name")
)
