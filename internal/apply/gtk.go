package apply

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"themesmith/internal/domain"
	"themesmith/internal/logging"
	"themesmith/internal/render"
)

const (
	DefaultGTK3Path = "~/.config/gtk-3.0/gtk.css"
	DefaultGTK4Path = "~/.config/gtk-4.0/gtk.css"
)

type GTKOptions struct {
	Mode     domain.Mode
	Accent   domain.Accent
	GTK3Path string
	GTK4Path string
}

// GTKApplier writes the GTK 3 and GTK 4 colour sheets of a preset.
type GTKApplier struct {
	fs afero.Fs
}

func NewGTKApplier(fs afero.Fs) *GTKApplier {
	return &GTKApplier{fs: fs}
}

// Apply writes both sheets and returns their paths, GTK 3 first.
func (a *GTKApplier) Apply(ctx context.Context, p *domain.Preset, opts GTKOptions) ([]string, error) {
	targets := []struct {
		version domain.GTKVersion
		path    string
		def     string
	}{
		{domain.GTK3, opts.GTK3Path, DefaultGTK3Path},
		{domain.GTK4, opts.GTK4Path, DefaultGTK4Path},
	}

	logger := logging.FromContext(ctx)
	written := make([]string, 0, len(targets))
	for _, target := range targets {
		path := target.path
		if path == "" {
			path = target.def
		}
		expanded, err := homedir.Expand(path)
		if err != nil {
			return written, fmt.Errorf("failed to expand %s: %w", path, err)
		}
		path = expanded

		css, err := render.CSS(p, opts.Mode, opts.Accent, target.version)
		if err != nil {
			return written, fmt.Errorf("failed to render %s sheet for %s: %w", target.version, p.Name, err)
		}

		if err := a.fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		if err := afero.WriteFile(a.fs, path, []byte(css), 0o644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", path, err)
		}

		logger.Debug().Str("path", path).Str("gtk", target.version.String()).Msg("wrote gtk sheet")
		written = append(written, path)
	}

	return written, nil
}
