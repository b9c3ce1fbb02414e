package source

//go:generate mockgen -source=interfaces.go -destination=../mock/source_mock.go -package=mock

import "github.com/MKhiriev/go-config-resolver/models"

// FileSystem is the filesystem capability the source loader relies on:
// probing directories, reading files and scanning directory trees.
type FileSystem interface {
	// Exists reports whether path exists.
	Exists(path string) bool
	// ReadFile returns the content of the file at path.
	ReadFile(path string) ([]byte, error)
	// Glob walks root recursively and returns every regular file whose base
	// name satisfies pattern, in lexical walk order.
	Glob(root string, pattern Pattern) ([]string, error)
}

// ModuleLoader evaluates scripted configuration modules. Implementations
// that cache evaluated modules per path drop the cached result in
// Invalidate, so the next Evaluate reads the file again.
type ModuleLoader interface {
	Invalidate(path string)
	Evaluate(path string) (models.Tree, error)
}
