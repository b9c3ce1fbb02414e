// Package utils provides general-purpose helper utilities
// used across different parts of the resolver.
// Includes tools for working with context, type-safe keys, hashing,
// canonical JSON encoding of configuration trees and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ResolutionIDCtxKey is the key used to store the identifier of the running
// resolution in the context.
var ResolutionIDCtxKey = contextKey("resolutionID")

// WithResolutionID returns a copy of ctx carrying id.
func WithResolutionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ResolutionIDCtxKey, id)
}

// GetResolutionIDFromContext retrieves the resolution identifier from the
// context.
//
// Returns the identifier and an ok flag:
//   - ok == true: value is found and has the correct string type
//   - ok == false: value is missing or has an unexpected type
func GetResolutionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ResolutionIDCtxKey).(string)
	return id, ok
}
