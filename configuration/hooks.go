package configuration

import (
	"path/filepath"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/models"
)

// applyAppDirs appends <appBaseDir>/<app>/<category> to every directory
// category under system.dirs. It does nothing outside named-app mode.
func applyAppDirs(tree models.Tree, app, appBaseDir string, log *logger.Logger) {
	if app == "" {
		return
	}

	dirs, ok := tree.Get(models.Path{"system", "dirs"})
	if !ok {
		return
	}
	categories, ok := dirs.(models.Tree)
	if !ok {
		log.Warn().Msgf("system.dirs is %T, not a section; app dirs not added", dirs)
		return
	}

	base, err := filepath.Abs(appBaseDir)
	if err != nil {
		base = appBaseDir
	}

	for _, category := range categories.Keys() {
		appDir := filepath.Clean(filepath.Join(base, app, category))

		switch entries := categories[category].(type) {
		case []any:
			categories[category] = append(entries, appDir)
		case string:
			categories[category] = []any{entries, appDir}
		case nil:
			categories[category] = []any{appDir}
		default:
			log.Warn().Str("category", category).Msgf("system.dirs.%s is %T; app dir not added", category, entries)
			continue
		}
		log.Trace().Str("category", category).Str("dir", appDir).Msg("app dir added")
	}
}

// configure runs the configure hook of every top-level section holding
// one, in key order.
func configure(tree models.Tree, log *logger.Logger) error {
	for _, key := range tree.Keys() {
		section, ok := tree[key].(models.Tree)
		if !ok {
			continue
		}
		hook, ok := section[models.ConfigureKey].(models.Configurable)
		if !ok {
			continue
		}

		log.Debug().Str("section", key).Msg("configuring section")
		if err := hook.Configure(section); err != nil {
			return &models.ConfigureHookError{Section: key, Err: err}
		}
	}
	return nil
}
