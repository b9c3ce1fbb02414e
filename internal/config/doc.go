// Package config determines the [ResolutionContext] of a configuration
// resolution: which application runs, where applications live, which
// extra directories to search and which environment overlay to apply.
//
// The context is assembled from multiple layers in the following priority
// order (earlier layers win, later layers only fill empty fields):
//  1. Explicit values supplied by the caller
//  2. Command-line flags (--app, --appPath)
//  3. Environment variables (CONFIG_APP, CONFIG_APP_PATH, CONFIG_DIRS,
//     APP_ENV, CONFIG_ROOT)
//  4. Built-in defaults
//
// The main entry point is [NewResolutionContext].
package config
