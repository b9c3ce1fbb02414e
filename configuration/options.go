package configuration

import (
	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/internal/source"
	"github.com/MKhiriev/go-config-resolver/models"
)

// Option customizes a [Configuration].
type Option func(*Configuration)

// WithApp runs the resolution in named-app mode for app.
func WithApp(app string) Option {
	return func(c *Configuration) {
		c.explicit.App = app
	}
}

// WithAppBaseDir sets the directory holding the applications.
func WithAppBaseDir(dir string) Option {
	return func(c *Configuration) {
		c.explicit.AppBaseDir = dir
	}
}

// WithCustomDirs adds search directories with the highest priority.
func WithCustomDirs(dirs ...string) Option {
	return func(c *Configuration) {
		c.explicit.CustomDirs = append(c.explicit.CustomDirs, dirs...)
	}
}

// WithEnvironment selects the overlay environment instead of APP_ENV.
func WithEnvironment(env string) Option {
	return func(c *Configuration) {
		c.explicit.Environment = env
	}
}

// WithRootDir sets the directory relative search directories are resolved
// against.
func WithRootDir(dir string) Option {
	return func(c *Configuration) {
		c.explicit.RootDir = dir
	}
}

// WithDefaultDirs replaces the built-in search directories.
func WithDefaultDirs(dirs ...string) Option {
	return func(c *Configuration) {
		c.defaultDirs = append([]string{}, dirs...)
	}
}

// WithPackageDirs adds package contributed search directories. Entries may
// be glob patterns.
func WithPackageDirs(dirs ...string) Option {
	return func(c *Configuration) {
		c.packageDirs = append(c.packageDirs, dirs...)
	}
}

// WithArgs sets the process arguments consulted for --app and --appPath.
// Defaults to os.Args[1:].
func WithArgs(args []string) Option {
	return func(c *Configuration) {
		c.args = args
	}
}

// WithLogger sets the logger. Defaults to a no-op logger; nil keeps the
// default.
func WithLogger(log *logger.Logger) Option {
	return func(c *Configuration) {
		c.log = log
	}
}

// WithHook registers a configure hook that configuration modules can attach
// to a section with `configure = hook("name")`. The hook runs during Resolve
// before the tree is published, so Get called from the hook returns its
// default.
func WithHook(name string, hook models.Configurable) Option {
	return func(c *Configuration) {
		c.hooks.Register(name, hook)
	}
}

// WithKinds replaces the built-in source kinds. Kinds are merged in the
// given order, later kinds winning conflicts. Passing no kinds leaves the
// configuration without sources and makes Resolve fail with
// models.ErrNoSources.
func WithKinds(kinds ...source.Kind) Option {
	return func(c *Configuration) {
		c.kinds = kinds
		c.kindsSet = true
	}
}

// WithFileSystem replaces the host filesystem.
func WithFileSystem(fsys source.FileSystem) Option {
	return func(c *Configuration) {
		c.fs = fsys
	}
}

// WithModuleLoader replaces the HCL module loader used by the built-in
// scripted kind.
func WithModuleLoader(loader source.ModuleLoader) Option {
	return func(c *Configuration) {
		c.moduleLoader = loader
	}
}

// WithConcurrency caps how many source kinds load at once. n <= 0, the
// default, loads every kind concurrently.
func WithConcurrency(n int) Option {
	return func(c *Configuration) {
		c.concurrency = n
	}
}
