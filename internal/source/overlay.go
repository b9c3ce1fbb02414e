package source

import (
	"fmt"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/merge"
	"github.com/MKhiriev/go-config-resolver/models"
)

// ResolveKind loads the contribution of one source kind: the common files
// of the kind form the base layer, and when environment names a known
// overlay ("development", "production") the files tagged for it are merged
// on top. Any other environment, including "", yields the base layer only.
func ResolveKind(fsys FileSystem, kind Kind, dirs []string, environment string, log *logger.Logger) (models.Tree, error) {
	log = log.WithField("kind", kind.Name)

	base, err := Load(fsys, dirs, kind.BasePattern(), kind.Load, log)
	if err != nil {
		return nil, fmt.Errorf("load %s sources: %w", kind.Name, err)
	}

	tag, ok := OverlayTags[environment]
	if !ok {
		return base, nil
	}

	overlay, err := Load(fsys, dirs, kind.OverlayPattern(tag), kind.Load, log)
	if err != nil {
		return nil, fmt.Errorf("load %s %s overlay: %w", kind.Name, environment, err)
	}

	return merge.Merge(base, overlay), nil
}
