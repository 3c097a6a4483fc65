package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DefaultWatchDebounce is how long a Watcher waits for further changes before
// reporting one. Editors tend to write a file in several steps.
const DefaultWatchDebounce = 200 * time.Millisecond

// Watcher reports changes to a config file.
//
// It watches the file's directory rather than the file itself, since many
// editors save by replacing the file, which would end a watch on the file.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
}

// NewWatcher creates a watcher for the config file at the given path.
// The file does not need to exist yet, but its directory does.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("could not create fs watcher (%w)", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("could not resolve config path '%s' (%w)", path, err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("could not watch config dir '%s' (%w)", filepath.Dir(abs), err)
	}
	return &Watcher{
		fsw:      fsw,
		path:     abs,
		debounce: debounce,
	}, nil
}

// Run calls onChange after each (debounced) change to the config file, until
// the context is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, onChange func()) {
	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Trace().Str("path", w.path).Str("op", event.Op.String()).Msg("config file event")
			pending = time.After(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Str("path", w.path).Msg("error watching config file")

		case <-pending:
			pending = nil
			log.Debug().Str("path", w.path).Msg("config file changed")
			onChange()
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
