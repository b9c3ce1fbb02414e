package models

import (
	"fmt"
	"strings"
)

// Path addresses a value inside a [Tree], one segment per nesting level.
// Numeric segments index into sequences.
type Path []string

// ParsePath accepts a dot-delimited string ("system.dirs.models"), a
// []string or a [Path]. Empty segments produced by leading, trailing or
// doubled dots are dropped.
func ParsePath(path any) (Path, error) {
	switch p := path.(type) {
	case Path:
		return p, nil
	case []string:
		return Path(p), nil
	case string:
		if p == "" {
			return Path{}, nil
		}
		parts := strings.Split(p, ".")
		out := make(Path, 0, len(parts))
		for _, part := range parts {
			if part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidPath, path)
	}
}

// String renders the path in dot notation.
func (p Path) String() string {
	return strings.Join(p, ".")
}
