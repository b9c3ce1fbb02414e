package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-config-resolver/internal/source"
)

// DefaultAppsDir is the application base directory relative to the root.
const DefaultAppsDir = "apps"

// NewResolutionContext assembles the context of one resolution. Layers are
// consulted in priority order, each only filling what earlier layers left
// empty:
//  1. explicit values supplied by the caller;
//  2. the --app and --appPath process arguments in args;
//  3. environment variables;
//  4. built-in defaults (project root, <root>/apps).
func NewResolutionContext(explicit ResolutionContext, args []string, fsys source.FileSystem) (ResolutionContext, error) {
	ctx, err := newContextBuilder().
		withExplicit(explicit).
		withFlags(args).
		withEnv().
		withDefaults(fsys).
		build()
	if err != nil {
		return ResolutionContext{}, err
	}
	return *ctx, nil
}

type contextBuilder struct {
	layers []*ResolutionContext
	fsys   source.FileSystem
	err    error
}

func newContextBuilder() *contextBuilder {
	return &contextBuilder{
		layers: make([]*ResolutionContext, 0, 3),
	}
}

func (b *contextBuilder) build() (*ResolutionContext, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building resolution context: %w", b.err)
	}

	ctx := new(ResolutionContext)
	for _, layer := range b.layers {
		if err := mergo.Merge(ctx, layer); err != nil {
			return nil, fmt.Errorf("error merging resolution context: %w", err)
		}
	}

	if b.fsys != nil {
		if err := ctx.applyDefaults(b.fsys); err != nil {
			return nil, err
		}
	}

	return ctx, ctx.validate()
}

func (b *contextBuilder) withExplicit(explicit ResolutionContext) *contextBuilder {
	b.layers = append(b.layers, &explicit)
	return b
}

func (b *contextBuilder) withFlags(args []string) *contextBuilder {
	flagCtx, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, flagCtx)
	return b
}

func (b *contextBuilder) withEnv() *contextBuilder {
	envCtx := &ResolutionContext{}
	if err := parseEnv(envCtx); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, envCtx)
	return b
}

func (b *contextBuilder) withDefaults(fsys source.FileSystem) *contextBuilder {
	b.fsys = fsys
	return b
}

// applyDefaults fills the root and application base directory and makes
// both absolute.
func (c *ResolutionContext) applyDefaults(fsys source.FileSystem) error {
	if c.RootDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		c.RootDir = source.FindRoot(fsys, wd)
	}

	root, err := filepath.Abs(c.RootDir)
	if err != nil {
		return fmt.Errorf("resolve root dir %q: %w", c.RootDir, err)
	}
	c.RootDir = root

	if c.AppBaseDir == "" {
		c.AppBaseDir = DefaultAppsDir
	}
	if !filepath.IsAbs(c.AppBaseDir) {
		c.AppBaseDir = filepath.Join(c.RootDir, c.AppBaseDir)
	}
	c.AppBaseDir = filepath.Clean(c.AppBaseDir)

	return nil
}

func joinClean(elem ...string) string {
	return filepath.Clean(filepath.Join(elem...))
}
