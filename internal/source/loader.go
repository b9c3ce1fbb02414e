package source

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/merge"
	"github.com/MKhiriev/go-config-resolver/models"
)

// Load merges every file matching pattern under dirs into one tree.
//
// Directories that do not exist are skipped. Files are merged in directory
// order, and within a directory in walk order, so files found in later
// directories win scalar conflicts. A file whose load fails with
// *models.FileParseError is logged and contributes nothing; any other load
// error stops loading and is returned.
func Load(fsys FileSystem, dirs []string, pattern Pattern, load LoadFunc, log *logger.Logger) (models.Tree, error) {
	files, err := Discover(fsys, dirs, pattern, log)
	if err != nil {
		return nil, err
	}

	result := models.Tree{}
	for _, file := range files {
		log.Trace().Str("file", file).Msg("found config file")

		tree, err := load(file)
		if err != nil {
			var parseErr *models.FileParseError
			if errors.As(err, &parseErr) {
				log.Error().Err(parseErr.Err).Str("file", parseErr.File).Msg("config file invalid, skipped")
				continue
			}
			return nil, err
		}
		if tree == nil {
			continue
		}

		merge.Merge(result, tree)
	}

	return result, nil
}

// Discover lists the absolute, cleaned paths of all files matching pattern
// under the existing entries of dirs, preserving directory order.
func Discover(fsys FileSystem, dirs []string, pattern Pattern, log *logger.Logger) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		if !fsys.Exists(dir) {
			log.Trace().Str("dir", dir).Msg("config dir not found, skipped")
			continue
		}
		log.Trace().Str("dir", dir).Str("pattern", pattern.String()).Msg("found config dir")

		matches, err := fsys.Glob(dir, pattern)
		if err != nil {
			return nil, fmt.Errorf("scan config dir %s: %w", dir, err)
		}

		for _, match := range matches {
			abs, err := filepath.Abs(match)
			if err != nil {
				return nil, fmt.Errorf("resolve config file %s: %w", match, err)
			}
			files = append(files, filepath.Clean(abs))
		}
	}

	return files, nil
}
