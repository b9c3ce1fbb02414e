// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/MKhiriev/go-config-resolver/internal/source"
)

// ResolutionContext holds the per-run parameters of one configuration
// resolution. It is assembled once by [NewResolutionContext] and treated as
// immutable afterwards.
//
// Struct tags:
//   - env: environment variable read by the env layer (caarlos0/env).
//   - envSeparator: separator for list-valued variables.
type ResolutionContext struct {
	// App is the name of the application being run. Empty outside
	// named-app mode.
	// Env: CONFIG_APP, flag: --app
	App string `env:"CONFIG_APP"`

	// AppBaseDir is the directory holding all applications. Relative values
	// are resolved against RootDir.
	// Env: CONFIG_APP_PATH, flag: --appPath
	AppBaseDir string `env:"CONFIG_APP_PATH"`

	// CustomDirs are extra search directories with the highest priority.
	// Env: CONFIG_DIRS (comma separated)
	CustomDirs []string `env:"CONFIG_DIRS" envSeparator:","`

	// Environment selects the overlay layer ("development", "production").
	// Env: APP_ENV
	Environment string `env:"APP_ENV"`

	// RootDir anchors relative search directories. Defaults to the nearest
	// ancestor of the working directory holding go.mod.
	// Env: CONFIG_ROOT
	RootDir string `env:"CONFIG_ROOT"`
}

// AppConfigDir returns the config directory of the running application, or
// "" outside named-app mode.
func (c ResolutionContext) AppConfigDir() string {
	if c.App == "" {
		return ""
	}
	return joinClean(c.AppBaseDir, c.App, "config")
}

// SearchDirs describes the search directory tiers for this context.
// defaults replaces the built-in directory list when non-nil.
func (c ResolutionContext) SearchDirs(defaults, packages []string) source.SearchDirs {
	if defaults == nil {
		defaults = source.DefaultDirs
	}
	return source.SearchDirs{
		Root:      c.RootDir,
		Defaults:  defaults,
		Packages:  packages,
		AppConfig: c.AppConfigDir(),
		Custom:    c.CustomDirs,
	}
}
