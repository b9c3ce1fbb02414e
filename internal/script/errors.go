package script

import "errors"

var (
	// ErrUnknownHook is returned when a module calls hook() with a name that
	// was never registered.
	ErrUnknownHook = errors.New("unknown configure hook")
	// ErrUnknownValue is returned when a module produces a value that cannot
	// be known at load time.
	ErrUnknownValue = errors.New("configuration value is not known")
)
