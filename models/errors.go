package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSources is returned when a resolution starts without any source
	// kind registered. Resolution cannot proceed.
	ErrNoSources = errors.New("no configuration sources configured")
	// ErrInvalidPath is returned by [ParsePath] for unsupported path types.
	ErrInvalidPath = errors.New("invalid configuration path")
	// ErrUnsupportedValue is returned by [Normalize] for values outside the
	// configuration value space.
	ErrUnsupportedValue = errors.New("unsupported configuration value")
	// ErrNotAnObject is returned when a source document's root is not an object.
	ErrNotAnObject = errors.New("configuration document is not an object")
)

// FileParseError reports a data file that could not be decoded. It is
// recovered by the source loader: the file is logged and contributes nothing.
type FileParseError struct {
	File string
	Err  error
}

func (e *FileParseError) Error() string {
	return fmt.Sprintf("config %s invalid: %v", e.File, e.Err)
}

func (e *FileParseError) Unwrap() error {
	return e.Err
}

// ModuleEvaluationError reports a scripted source that failed to evaluate.
// It aborts the resolution.
type ModuleEvaluationError struct {
	File string
	Err  error
}

func (e *ModuleEvaluationError) Error() string {
	return fmt.Sprintf("evaluate config module %s: %v", e.File, e.Err)
}

func (e *ModuleEvaluationError) Unwrap() error {
	return e.Err
}

// ConfigureHookError reports a section whose configure hook failed. It aborts
// the resolution.
type ConfigureHookError struct {
	Section string
	Err     error
}

func (e *ConfigureHookError) Error() string {
	return fmt.Sprintf("configure section %q: %v", e.Section, e.Err)
}

func (e *ConfigureHookError) Unwrap() error {
	return e.Err
}
