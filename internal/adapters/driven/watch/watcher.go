// Package watch signals when a catalog source file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/leafdex/internal/adapters/driven/table"
	"github.com/custodia-labs/leafdex/internal/adapters/driven/table/sqlite"
	"github.com/custodia-labs/leafdex/internal/core/domain"
	"github.com/custodia-labs/leafdex/internal/core/ports/driven"
	"github.com/custodia-labs/leafdex/internal/logger"
)

// Ensure FileWatcher implements the interface.
var _ driven.ChangeWatcher = (*FileWatcher)(nil)

// Defaults for NewFileWatcher.
const (
	DefaultDebounce    = 300 * time.Millisecond
	DefaultMinInterval = time.Second
)

// FileWatcher watches CSV files and SQLite databases with fsnotify.
//
// The parent directory is watched rather than the file itself, so editors
// that save by writing a temporary file and renaming it are still seen.
// A change is signalled once events for the file have been quiet for the
// debounce period, and signals are spaced at least minInterval apart.
type FileWatcher struct {
	debounce    time.Duration
	minInterval time.Duration
}

// NewFileWatcher creates a watcher. Zero durations select the defaults.
func NewFileWatcher(debounce, minInterval time.Duration) *FileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if minInterval <= 0 {
		minInterval = DefaultMinInterval
	}
	return &FileWatcher{
		debounce:    debounce,
		minInterval: minInterval,
	}
}

// Watch starts watching location. The returned channel is closed when
// ctx is done or the underlying watcher fails.
func (w *FileWatcher) Watch(ctx context.Context, location string) (<-chan struct{}, error) {
	path, err := filePath(location)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	logger.Debug("Watching %q (debounce %s)", abs, w.debounce)

	changes := make(chan struct{}, 1)
	limiter := rate.NewLimiter(rate.Every(w.minInterval), 1)
	go w.loop(ctx, fsw, abs, limiter, changes)

	return changes, nil
}

func (w *FileWatcher) loop(
	ctx context.Context,
	fsw *fsnotify.Watcher,
	target string,
	limiter *rate.Limiter,
	changes chan<- struct{},
) {
	defer close(changes)
	defer fsw.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			logger.Debug("Watch event: %s", event)

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("Watcher error: %v", err)

		case <-fire:
			fire = nil
			if err := limiter.Wait(ctx); err != nil {
				return
			}
			// A pending signal already covers this change.
			select {
			case changes <- struct{}{}:
			default:
			}
		}
	}
}

// filePath returns the file behind a watchable location.
func filePath(location string) (string, error) {
	switch {
	case strings.HasPrefix(location, sqlite.Scheme):
		path, _, err := table.SplitLocation(strings.TrimPrefix(location, sqlite.Scheme))
		return path, err
	case strings.Contains(location, "://"):
		return "", fmt.Errorf("%w: cannot watch %q", domain.ErrUnsupportedSource, location)
	case location == "":
		return "", fmt.Errorf("%w: empty location", domain.ErrInvalidInput)
	default:
		return location, nil
	}
}
