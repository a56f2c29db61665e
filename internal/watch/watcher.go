// Package watch re-runs a handler whenever a preset file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"

	"themesmith/internal/domain"
	"themesmith/internal/logging"
)

const DefaultDebounce = 200 * time.Millisecond

// Handler receives every successfully reloaded preset.
type Handler func(ctx context.Context, p *domain.Preset) error

type Watcher struct {
	fs       afero.Fs
	path     string
	debounce time.Duration
	handle   Handler
	ready    chan struct{}
}

func New(fs afero.Fs, path string, handle Handler) *Watcher {
	return &Watcher{
		fs:       fs,
		path:     path,
		debounce: DefaultDebounce,
		handle:   handle,
		ready:    make(chan struct{}),
	}
}

// SetDebounce changes the quiet period between the last event and a reload.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Ready is closed once the watch is registered.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches the directory holding the preset file, so editors that replace
// the file on save are still seen. It returns nil when ctx is cancelled.
// Load and handler failures are logged and the watch continues.
func (w *Watcher) Run(ctx context.Context) error {
	target, err := filepath.Abs(w.path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", w.path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fsw.Close()

	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}

	ctx = logging.WithComponent(ctx, "watch")
	logger := logging.FromContext(ctx)
	logger.Info().Str("path", target).Msg("watching preset")
	close(w.ready)

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

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug().Str("op", ev.Op.String()).Msg("preset changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("watch error")

		case <-fire:
			fire = nil
			if err := w.reload(ctx, target); err != nil {
				logger.Warn().Err(err).Msg("failed to apply preset")
			}
		}
	}
}

func (w *Watcher) reload(ctx context.Context, path string) error {
	p, err := domain.LoadPreset(w.fs, path)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid preset %s: %w", path, err)
	}
	return w.handle(ctx, p)
}
