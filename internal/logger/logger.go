// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors and context-aware helpers used by the resolver
// and the confctl command.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Trace, Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Resolution code logs through a tagged child logger obtained via Tagged so
// every line carries the subsystem it belongs to.
package logger

import (
	"context"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TagField is the field name under which Tagged stores the subsystem tag.
const TagField = "tag"

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger constructs a *Logger for the given role label
// (e.g. "confctl", "resolver") writing JSON lines to os.Stdout.
//
// The logger is configured with:
//   - global log level set to Trace, so discovery lines are emitted unless
//     the level is lowered with SetLevel;
//   - a "role" field set to role;
//   - a "time" timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewConsoleLogger is like NewLogger but writes human-readable lines to w.
func NewConsoleLogger(role string, w io.Writer) *Logger {
	return newLogger(role, zerolog.ConsoleWriter{Out: w, NoColor: true})
}

func newLogger(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// SetLevel parses level ("trace", "debug", "info", "warn", "error") and
// applies it to the logger. Unknown values leave the level unchanged and
// return the parse error.
func (l *Logger) SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return err
	}
	l.Logger = l.Level(lvl)
	return nil
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and as the resolver default.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Tagged returns a child logger whose entries carry tag in the "tag" field.
func (l *Logger) Tagged(tag string) *Logger {
	return &Logger{l.With().Str(TagField, tag).Logger()}
}

// WithField returns a child logger carrying one extra string field.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// (disabled) logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
