// Package watch reports changes below a set of configuration directories.
//
// It backs `confctl watch`: the resolver itself never watches files, a
// caller reacts to a change by resolving a fresh configuration.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
)

// DefaultDebounce is the quiet period awaited after the last event before a
// change is reported.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches directory trees and reports bursts of file events as one
// change.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration
	log      *logger.Logger
}

// New starts watching dirs and all their subdirectories. Directories that
// do not exist are skipped. debounce <= 0 selects [DefaultDebounce].
func New(dirs []string, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logger.Nop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{fsw: fsw, debounce: debounce, log: log}
	for _, dir := range dirs {
		if err := w.addTree(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	return w, nil
}

// Dirs returns the directories currently watched.
func (w *Watcher) Dirs() []string {
	return w.fsw.WatchList()
}

// Run calls onChange after every burst of file events until ctx is done or
// the watcher is closed. It closes the watcher on return.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context)) error {
	defer func() { _ = w.fsw.Close() }()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.log.Error().Err(err).Str("dir", event.Name).Msg("failed to watch new dir")
					}
				}
			}
			w.log.Trace().Str("file", event.Name).Str("op", event.Op.String()).Msg("config change detected")

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Error().Err(err).Msg("watcher error")

		case <-fire:
			fire = nil
			onChange(ctx)
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) addTree(root string) error {
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				w.log.Trace().Str("dir", path).Msg("config dir not found, not watched")
				return nil
			}
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("failed to watch dir %s: %w", path, err)
		}
		return nil
	})
	return err
}
