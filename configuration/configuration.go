// Package configuration assembles the single configuration tree of an
// application from configuration files spread over several directories.
//
// A [Configuration] is created with [New] and filled once by
// [Configuration.Resolve]:
//
//  1. the resolution context (application, base dir, environment, extra
//     dirs) is taken from options, then --app/--appPath arguments, then
//     environment variables, then defaults;
//  2. the search directory list is built: built-in dirs, package dirs, the
//     application config dir, custom dirs (lowest to highest priority);
//  3. every source kind (HCL modules, YAML, JSON) is loaded concurrently,
//     each as a base layer plus an optional environment overlay;
//  4. the kinds are merged in priority order;
//  5. application directories are appended under system.dirs;
//  6. configure hooks of top-level sections run.
//
// Values are read with [Configuration.Get], [Configuration.Lookup] or
// [Value] using dot paths ("db.host", "servers.0") or []string paths.
package configuration

import (
	"context"
	"os"
	"sync"

	"github.com/MKhiriev/go-config-resolver/internal/config"
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/merge"
	"github.com/MKhiriev/go-config-resolver/internal/script"
	"github.com/MKhiriev/go-config-resolver/internal/source"
	"github.com/MKhiriev/go-config-resolver/internal/utils"
	"github.com/MKhiriev/go-config-resolver/internal/workers"
	"github.com/MKhiriev/go-config-resolver/models"
)

// LogTag tags every log line written by the resolver.
const LogTag = "Configuration"

// Configuration is the merged configuration of one application.
//
// It starts unresolved: every read returns the supplied default. After a
// successful [Configuration.Resolve] the tree is read-only. Values returned
// by Get and Lookup share storage with the tree and must not be modified.
type Configuration struct {
	explicit     config.ResolutionContext
	args         []string
	defaultDirs  []string
	packageDirs  []string
	kinds        []source.Kind
	kindsSet     bool
	fs           source.FileSystem
	moduleLoader source.ModuleLoader
	hooks        *script.Hooks
	log          *logger.Logger
	ids          *utils.UUIDGenerator
	concurrency  int

	// resolveMu serializes Resolve and Reset; mu guards the state below.
	resolveMu sync.Mutex

	mu       sync.RWMutex
	resolved bool
	tree     models.Tree
	current  config.ResolutionContext
	dirs     []string
}

// New returns an unresolved Configuration.
func New(opts ...Option) *Configuration {
	c := &Configuration{
		fs:    source.NewOSFileSystem(),
		hooks: script.NewHooks(),
		log:   logger.Nop(),
		ids:   utils.NewUUIDGenerator(),
		tree:  models.Tree{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.args == nil {
		c.args = os.Args[1:]
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	c.log = c.log.Tagged(LogTag)
	if osfs, ok := c.fs.(source.OSFileSystem); ok {
		c.fs = osfs.WithLogger(c.log)
	}
	return c
}

// Resolve loads and merges every configuration source. It fails with
// [ErrAlreadyResolved] when called on a resolved Configuration; use
// [Configuration.Reset] first to resolve again.
//
// models.ErrNoSources, *models.ModuleEvaluationError and
// *models.ConfigureHookError abort the resolution and leave the
// Configuration unresolved. Malformed data files are logged and skipped.
//
// Configure hooks run before the tree is published: reads from a hook see
// the Configuration as unresolved, and a hook must not call Resolve or
// Reset. Hooks receive their section instead.
func (c *Configuration) Resolve(ctx context.Context) error {
	c.resolveMu.Lock()
	defer c.resolveMu.Unlock()

	if c.Resolved() {
		return ErrAlreadyResolved
	}
	if c.kindsSet && len(c.kinds) == 0 {
		return models.ErrNoSources
	}

	ctx = utils.WithResolutionID(ctx, c.ids.Generate())
	ctx = c.log.WithContext(ctx)
	log := resolutionLogger(ctx)

	rc, err := config.NewResolutionContext(c.explicit, c.args, c.fs)
	if err != nil {
		return err
	}

	dirs, err := rc.SearchDirs(c.defaultDirs, c.packageDirs).List()
	if err != nil {
		return err
	}

	log.Debug().
		Str("app", rc.App).
		Str("app_base_dir", rc.AppBaseDir).
		Str("environment", rc.Environment).
		Strs("dirs", dirs).
		Strs("hooks", c.hooks.Names()).
		Msg("resolving configuration")

	contributions, err := c.loadKinds(ctx, rc, dirs, log)
	if err != nil {
		return err
	}

	tree := merge.All(contributions...)

	applyAppDirs(tree, rc.App, rc.AppBaseDir, log)

	if err := configure(tree, log); err != nil {
		return err
	}

	c.mu.Lock()
	c.tree = tree
	c.current = rc
	c.dirs = dirs
	c.resolved = true
	c.mu.Unlock()

	logVersion(tree, log)
	log.Debug().Str("fingerprint", utils.Fingerprint(tree)).Msg("configuration resolved")

	return nil
}

// loadKinds resolves every kind concurrently and returns their
// contributions in kind order.
func (c *Configuration) loadKinds(ctx context.Context, rc config.ResolutionContext, dirs []string, log *logger.Logger) ([]models.Tree, error) {
	ws := workers.New[models.Tree]().WithLimit(c.concurrency)
	for _, kind := range c.sourceKinds(rc, log) {
		ws.Add(kindWorker{
			fs:          c.fs,
			kind:        kind,
			dirs:        dirs,
			environment: rc.Environment,
		})
	}
	if ws.Len() == 0 {
		return nil, models.ErrNoSources
	}

	return ws.Run(ctx)
}

func (c *Configuration) sourceKinds(rc config.ResolutionContext, log *logger.Logger) []source.Kind {
	if c.kindsSet {
		return c.kinds
	}

	loader := c.moduleLoader
	if loader == nil {
		loader = script.NewLoader(c.fs, script.Env{
			App:         rc.App,
			AppBaseDir:  rc.AppBaseDir,
			Environment: rc.Environment,
			Root:        rc.RootDir,
		}, c.hooks, log)
	}
	return source.DefaultKinds(c.fs, loader)
}

type kindWorker struct {
	fs          source.FileSystem
	kind        source.Kind
	dirs        []string
	environment string
}

func (w kindWorker) Run(ctx context.Context) (models.Tree, error) {
	return source.ResolveKind(w.fs, w.kind, w.dirs, w.environment, resolutionLogger(ctx))
}

// resolutionLogger returns the logger carried by ctx, labelled with the
// resolution id when one is present.
func resolutionLogger(ctx context.Context) *logger.Logger {
	log := logger.FromContext(ctx)
	if id, ok := utils.GetResolutionIDFromContext(ctx); ok {
		log = log.WithField("resolution_id", id)
	}
	return log
}

// Reset returns the Configuration to the unresolved state with an empty
// tree. Options given to New are kept.
func (c *Configuration) Reset() {
	c.resolveMu.Lock()
	defer c.resolveMu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.resolved = false
	c.tree = models.Tree{}
	c.current = config.ResolutionContext{}
	c.dirs = nil
}

// Resolved reports whether Resolve completed.
func (c *Configuration) Resolved() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.resolved
}

// Get returns the value at path, or def (nil when omitted) when the path
// does not exist or the Configuration is unresolved. path is a dot
// separated string, a []string or a models.Path.
func (c *Configuration) Get(path any, def ...any) any {
	if v, ok := c.Lookup(path); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// Lookup returns the value at path and whether it exists. An empty path
// addresses nothing; use [Configuration.Tree] for the whole tree.
func (c *Configuration) Lookup(path any) (any, bool) {
	p, err := models.ParsePath(path)
	if err != nil || len(p) == 0 {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.resolved {
		return nil, false
	}
	return c.tree.Get(p)
}

// Value returns the value at path converted to T, or def when it is
// missing or has another type.
func Value[T any](c *Configuration, path any, def T) T {
	v, ok := c.Lookup(path)
	if !ok {
		return def
	}
	typed, ok := v.(T)
	if !ok {
		return def
	}
	return typed
}

// Tree returns a deep copy of the merged tree.
func (c *Configuration) Tree() models.Tree {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tree.Clone()
}

// Dirs returns the search directories of the last resolution.
func (c *Configuration) Dirs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.dirs...)
}

// RunApp returns the application name of the last resolution, "" outside
// named-app mode.
func (c *Configuration) RunApp() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.App
}

// AppBaseDir returns the application base directory of the last resolution.
func (c *Configuration) AppBaseDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.AppBaseDir
}

// Environment returns the environment of the last resolution.
func (c *Configuration) Environment() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current.Environment
}

func logVersion(tree models.Tree, log *logger.Logger) {
	version, ok := models.AppVersionFrom(tree)
	if !ok {
		log.Info().Msg("app version unknown")
		return
	}
	log.Info().Str("version", version.String()).Msg("app version")
}
