package server

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/sitegen/internal/logfields"
)

const debounceWindow = 300 * time.Millisecond

// sourceWatcher watches the content tree recursively and emits a single
// debounced rebuild request per burst of filesystem events.
type sourceWatcher struct {
	watcher *fsnotify.Watcher
	root    string
}

func newSourceWatcher(sourceDir string) (*sourceWatcher, error) {
	abs, err := filepath.Abs(sourceDir)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	sw := &sourceWatcher{watcher: w, root: abs}
	if err := sw.addRecursive(abs); err != nil {
		_ = w.Close()
		return nil, err
	}
	return sw, nil
}

func (sw *sourceWatcher) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if name := d.Name(); path != dir && (strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
			return filepath.SkipDir
		}
		return sw.watcher.Add(path)
	})
}

func (sw *sourceWatcher) Close() { _ = sw.watcher.Close() }

// run pumps fsnotify events into debounced rebuild requests until ctx
// is canceled. Newly created directories are added to the watch set.
func (sw *sourceWatcher) run(ctx context.Context, rebuilds chan<- struct{}) {
	var timer *time.Timer
	fire := func() {
		select {
		case rebuilds <- struct{}{}:
		default: // a rebuild is already pending
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := sw.addRecursive(event.Name); err != nil {
						slog.Warn("watch new directory failed", logfields.Path(event.Name), logfields.Error(err))
					}
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, fire)
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("file watcher error", logfields.Error(err))
		}
	}
}
