// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged [ResolutionContext] can be used to build
// search paths.
//
// The application name is joined into filesystem paths, so it must be a
// single path element. The environment may be any value without path
// separators; unknown environments simply select no overlay.
func (c *ResolutionContext) validate() error {
	if c.App != "" {
		if c.App == "." || c.App == ".." || strings.ContainsAny(c.App, `/\`) {
			return fmt.Errorf("%w: %q", ErrInvalidAppName, c.App)
		}
	}

	if strings.ContainsAny(c.Environment, `/\*?[`) {
		return fmt.Errorf("%w: %q", ErrInvalidEnvironment, c.Environment)
	}

	return nil
}
