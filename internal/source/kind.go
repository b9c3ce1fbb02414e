package source

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-config-resolver/models"
)

// Known environment names and the file tag selecting their overlay files.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// OverlayTags maps an environment name to the tag carried by its overlay
// files ("app.dev.json", "app.prod.hcl").
var OverlayTags = map[string]string{
	EnvDevelopment: "dev",
	EnvProduction:  "prod",
}

// LoadFunc loads one configuration file into a tree. A nil tree with a nil
// error means the file contributes nothing.
type LoadFunc func(path string) (models.Tree, error)

// Kind describes one category of configuration input: which files belong
// to it and how a file is turned into a tree.
type Kind struct {
	// Name identifies the kind in logs ("hcl", "yaml", "json").
	Name string
	// Extensions lists file extensions without the leading dot.
	Extensions []string
	// Load turns one file into a tree. Returning *models.FileParseError
	// skips the file; any other error aborts the resolution.
	Load LoadFunc
}

// BasePattern selects the common files of the kind: every file with one of
// the kind's extensions that is not tagged for an environment.
func (k Kind) BasePattern() Pattern {
	p := Pattern{}
	for _, ext := range k.Extensions {
		p.Include = append(p.Include, "*."+ext)
		for _, tag := range sortedTags() {
			p.Exclude = append(p.Exclude, "*."+tag+"."+ext)
		}
	}
	return p
}

// OverlayPattern selects the files of the kind tagged with tag.
func (k Kind) OverlayPattern(tag string) Pattern {
	p := Pattern{}
	for _, ext := range k.Extensions {
		p.Include = append(p.Include, "*."+tag+"."+ext)
	}
	return p
}

func sortedTags() []string {
	return []string{OverlayTags[EnvDevelopment], OverlayTags[EnvProduction]}
}

// JSONKind is the data kind reading *.json files.
func JSONKind(fsys FileSystem) Kind {
	return Kind{
		Name:       "json",
		Extensions: []string{"json"},
		Load:       dataLoader(fsys, decodeJSON),
	}
}

// YAMLKind is the data kind reading *.yaml and *.yml files.
func YAMLKind(fsys FileSystem) Kind {
	return Kind{
		Name:       "yaml",
		Extensions: []string{"yaml", "yml"},
		Load:       dataLoader(fsys, decodeYAML),
	}
}

// ScriptedKind is the kind evaluating *.hcl configuration modules through
// loader. Every load invalidates the cached module first, so resolving
// again always sees the current file.
func ScriptedKind(loader ModuleLoader) Kind {
	return Kind{
		Name:       "hcl",
		Extensions: []string{"hcl"},
		Load: func(path string) (models.Tree, error) {
			loader.Invalidate(path)
			tree, err := loader.Evaluate(path)
			if err != nil {
				var evalErr *models.ModuleEvaluationError
				if errors.As(err, &evalErr) {
					return nil, err
				}
				return nil, &models.ModuleEvaluationError{File: path, Err: err}
			}
			return tree, nil
		},
	}
}

func dataLoader(fsys FileSystem, decode func([]byte) (any, error)) LoadFunc {
	return func(path string) (models.Tree, error) {
		data, err := fsys.ReadFile(path)
		if err != nil {
			return nil, &models.FileParseError{File: path, Err: fmt.Errorf("read: %w", err)}
		}

		doc, err := decode(data)
		if err != nil {
			return nil, &models.FileParseError{File: path, Err: err}
		}

		tree, err := models.NormalizeTree(doc)
		if err != nil {
			return nil, &models.FileParseError{File: path, Err: err}
		}
		return tree, nil
	}
}

// DefaultKinds returns the built-in source kinds in merge priority order,
// lowest first: HCL modules, then YAML, then JSON. When kinds define the
// same key, data files win over modules and JSON wins over YAML.
func DefaultKinds(fsys FileSystem, loader ModuleLoader) []Kind {
	return []Kind{
		ScriptedKind(loader),
		YAMLKind(fsys),
		JSONKind(fsys),
	}
}
