package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
)

// OSFileSystem is the [FileSystem] backed by the host operating system.
type OSFileSystem struct {
	log *logger.Logger
}

// NewOSFileSystem returns the host [FileSystem].
func NewOSFileSystem() OSFileSystem {
	return OSFileSystem{}
}

// WithLogger returns a copy of f reporting skipped paths to log.
func (f OSFileSystem) WithLogger(log *logger.Logger) OSFileSystem {
	f.log = log
	return f
}

// Exists reports whether path exists on disk.
func (OSFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads the whole file at path.
func (OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Glob recursively searches root for all regular files whose base name
// matches pattern. Paths are returned in lexical walk order.
//
// Hidden files and directories (name starting with ".") below root are
// ignored. Paths that cannot be read are logged and skipped, so Glob only
// fails when the walk itself cannot start.
func (f OSFileSystem) Glob(root string, pattern Pattern) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d == nil {
				// root itself could not be stat'ed
				return err
			}
			if !errors.Is(err, fs.ErrNotExist) {
				f.logger().Warn().Err(err).Str("path", path).Msg("config path unreadable, skipped")
			}
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() && pattern.Match(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

func (f OSFileSystem) logger() *logger.Logger {
	if f.log == nil {
		return logger.Nop()
	}
	return f.log
}
