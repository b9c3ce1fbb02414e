package source

import (
	"path/filepath"
	"strings"
)

// Pattern selects files by base name. A name matches when it satisfies at
// least one Include glob and no Exclude glob. Globs use filepath.Match
// syntax.
type Pattern struct {
	Include []string
	Exclude []string
}

// Match reports whether name (a base name, not a path) satisfies p.
func (p Pattern) Match(name string) bool {
	if !matchAny(p.Include, name) {
		return false
	}
	return !matchAny(p.Exclude, name)
}

// String renders the pattern for log lines, e.g. "*.json !(*.dev.json|*.prod.json)".
func (p Pattern) String() string {
	s := strings.Join(p.Include, "|")
	if len(p.Exclude) > 0 {
		s += " !(" + strings.Join(p.Exclude, "|") + ")"
	}
	return s
}

func matchAny(globs []string, name string) bool {
	for _, g := range globs {
		if ok, err := filepath.Match(g, name); err == nil && ok {
			return true
		}
	}
	return false
}
