// Package script evaluates HCL configuration modules.
//
// A module is an HCL file whose attributes and blocks form one configuration
// tree. Modules run in a restricted evaluation context: they see the
// variables `app` (name, base_dir), `environment` and `path` (module, root),
// a fixed set of pure functions, env() for process environment lookups and
// hook() for attaching host-registered configure hooks to a section:
//
//	logging {
//	  level     = environment == "production" ? "info" : "debug"
//	  configure = hook("logging")
//	}
//
// Blocks nest by type and labels, so `server "api" { port = 80 }` yields
// {"server": {"api": {"port": 80}}}. Repeated blocks are merged.
package script

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/merge"
	"github.com/MKhiriev/go-config-resolver/models"
)

// FileReader reads module sources.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
}

// Env is the resolution state exposed to modules.
type Env struct {
	App         string
	AppBaseDir  string
	Environment string
	Root        string
}

// Loader evaluates modules. It keeps no state between evaluations, so every
// Evaluate sees the current file, and it is safe for concurrent use.
type Loader struct {
	files FileReader
	env   Env
	hooks *Hooks
	log   *logger.Logger
}

// NewLoader returns a Loader reading modules through files. hooks may be nil
// when no configure hooks are registered.
func NewLoader(files FileReader, env Env, hooks *Hooks, log *logger.Logger) *Loader {
	if hooks == nil {
		hooks = NewHooks()
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Loader{
		files: files,
		env:   env,
		hooks: hooks,
		log:   log,
	}
}

// Invalidate implements source.ModuleLoader. Loader caches nothing, so there
// is nothing to drop.
func (l *Loader) Invalidate(string) {}

// Evaluate reads and evaluates the module at path and returns the tree it
// exports. Failures are *models.ModuleEvaluationError.
func (l *Loader) Evaluate(path string) (models.Tree, error) {
	tree, err := l.evaluate(path)
	if err != nil {
		return nil, &models.ModuleEvaluationError{File: path, Err: err}
	}
	l.log.Trace().Str("file", path).Int("keys", len(tree)).Msg("config module evaluated")

	return tree, nil
}

func (l *Loader) evaluate(path string) (models.Tree, error) {
	src, err := l.files.ReadFile(path)
	if err != nil {
		return nil, err
	}

	file, diags := hclsyntax.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported module body",
			Detail:   "configuration modules must use native HCL syntax",
		}}
	}

	return evalBody(body, l.evalContext(path))
}

func (l *Loader) evalContext(path string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"app": cty.ObjectVal(map[string]cty.Value{
				"name":     cty.StringVal(l.env.App),
				"base_dir": cty.StringVal(l.env.AppBaseDir),
			}),
			"environment": cty.StringVal(l.env.Environment),
			"path": cty.ObjectVal(map[string]cty.Value{
				"module": cty.StringVal(filepath.Dir(path)),
				"root":   cty.StringVal(l.env.Root),
			}),
		},
		Functions: functions(l.hooks),
	}
}

func evalBody(body *hclsyntax.Body, ctx *hcl.EvalContext) (models.Tree, error) {
	tree := make(models.Tree, len(body.Attributes))

	for name, attr := range body.Attributes {
		value, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, diags
		}
		native, err := toNative(value)
		if err != nil {
			return nil, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unsupported attribute value",
				Detail:   err.Error(),
				Subject:  attr.SrcRange.Ptr(),
			}
		}
		tree[name] = native
	}

	for _, block := range body.Blocks {
		nested, err := evalBody(block.Body, ctx)
		if err != nil {
			return nil, err
		}
		for i := len(block.Labels) - 1; i >= 0; i-- {
			nested = models.Tree{block.Labels[i]: nested}
		}
		merge.Merge(tree, models.Tree{block.Type: nested})
	}

	return tree, nil
}
