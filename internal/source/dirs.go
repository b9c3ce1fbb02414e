package source

import (
	"fmt"
	"path/filepath"
)

// DefaultDirs are the built-in search directories, relative to the project
// root. Build output comes first so a checked-in config directory wins.
var DefaultDirs = []string{"build/config", "dist/config", "config"}

// RootMarker is the file identifying the project root.
const RootMarker = "go.mod"

// SearchDirs describes the search directory tiers of one resolution.
// [SearchDirs.List] orders them from lowest to highest priority:
// Defaults, Packages, AppConfig, Custom.
type SearchDirs struct {
	// Root anchors every relative entry.
	Root string
	// Defaults are the built-in directories.
	Defaults []string
	// Packages are directories contributed by packages. Entries may be
	// glob patterns ("vendor/*/config").
	Packages []string
	// AppConfig is the config directory of the running application, empty
	// outside named-app mode.
	AppConfig string
	// Custom are caller supplied directories.
	Custom []string
}

// List returns the ordered, absolute search directory list.
func (s SearchDirs) List() ([]string, error) {
	var dirs []string

	dirs = append(dirs, s.resolve(s.Defaults)...)

	for _, pattern := range s.resolve(s.Packages) {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expand package dir %q: %w", pattern, err)
		}
		dirs = append(dirs, matches...)
	}

	if s.AppConfig != "" {
		dirs = append(dirs, s.resolve([]string{s.AppConfig})...)
	}

	dirs = append(dirs, s.resolve(s.Custom)...)

	return dirs, nil
}

func (s SearchDirs) resolve(dirs []string) []string {
	out := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(s.Root, dir)
		}
		out = append(out, filepath.Clean(dir))
	}
	return out
}

// FindRoot returns the nearest ancestor of start (start included) holding
// [RootMarker]. When none does, start itself is returned.
func FindRoot(fsys FileSystem, start string) string {
	start = filepath.Clean(start)
	for dir := start; ; {
		if fsys.Exists(filepath.Join(dir, RootMarker)) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}
