package apply

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"

	"themesmith/internal/domain"
	"themesmith/internal/logging"
	"themesmith/internal/render"
)

const (
	templateExt = ".template"
	entryFile   = "gnome-shell.scss"
)

type ShellOptions struct {
	Mode      domain.Mode
	Accent    domain.Accent
	WorkDir   string
	ThemesDir string
	// ThemeName replaces the default "<preset>-<Mode>-<Accent>" directory name.
	ThemeName string
	Activate  bool
}

type ShellResult struct {
	ThemeName  string
	StagingDir string
	ThemeDir   string
	CSSPath    string
	GTKPaths   []string
	Activated  bool
}

// ShellApplier builds a GNOME Shell theme from a versioned template tree.
type ShellApplier struct {
	fs        afero.Fs
	source    fs.FS
	versions  VersionSource
	compiler  Compiler
	activator ThemeActivator
	gtk       *GTKApplier
}

// NewShellApplier wires a pipeline. source must hold one directory per
// supported shell version. activator may be nil.
func NewShellApplier(fsys afero.Fs, source fs.FS, versions VersionSource, compiler Compiler, activator ThemeActivator) *ShellApplier {
	return &ShellApplier{
		fs:        fsys,
		source:    source,
		versions:  versions,
		compiler:  compiler,
		activator: activator,
		gtk:       NewGTKApplier(fsys),
	}
}

// DefaultThemeName is "<preset>-<Mode>-<Accent>", e.g. "Nord-Dark-Teal".
func DefaultThemeName(p *domain.Preset, mode domain.Mode, accent domain.Accent) string {
	return fmt.Sprintf("%s-%s-%s", p.Name, mode.Title(), accent.Title())
}

func (a *ShellApplier) Apply(ctx context.Context, p *domain.Preset, opts ShellOptions) (*ShellResult, error) {
	ctx = logging.WithComponent(ctx, "apply")
	ctx = logging.WithPreset(ctx, p.Name, opts.Mode.String(), opts.Accent.String())
	logger := logging.FromContext(ctx)
	target := fmt.Sprintf("%s %s/%s", p.Label(), opts.Mode, opts.Accent)

	// a version that cannot be determined counts as unsupported
	version, err := a.versions.ShellVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to detect shell version: %w", ErrUnsupportedVersion, err)
	}
	if version != SupportedShellVersion {
		return nil, fmt.Errorf("%w: %d (supported: %d)", ErrUnsupportedVersion, version, SupportedShellVersion)
	}

	name := opts.ThemeName
	if name == "" {
		name = DefaultThemeName(p, opts.Mode, opts.Accent)
	}

	result := &ShellResult{
		ThemeName:  name,
		StagingDir: filepath.Join(opts.WorkDir, name),
		ThemeDir:   filepath.Join(opts.ThemesDir, name),
	}
	result.CSSPath = filepath.Join(result.ThemeDir, "gnome-shell", "gnome-shell.css")

	for _, dir := range []string{result.StagingDir, result.ThemeDir, filepath.Dir(result.CSSPath)} {
		if err := a.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	if err := a.stage(strconv.Itoa(version), result.StagingDir); err != nil {
		return nil, err
	}
	logger.Debug().Str("path", result.StagingDir).Msg("staged template tree")

	if err := a.renderTemplates(p, opts, result.StagingDir); err != nil {
		return nil, fmt.Errorf("%s: %w", target, err)
	}

	entry := filepath.Join(result.StagingDir, entryFile)
	css, err := a.compiler.Compile(ctx, a.fs, entry)
	if err != nil {
		return nil, fmt.Errorf("%w %s for %s: %w", ErrCompile, entry, target, err)
	}
	if err := afero.WriteFile(a.fs, result.CSSPath, []byte(css), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", result.CSSPath, err)
	}
	logger.Debug().Str("path", result.CSSPath).Msg("wrote shell stylesheet")

	result.GTKPaths, err = a.gtk.Apply(ctx, p, GTKOptions{
		Mode:     opts.Mode,
		Accent:   opts.Accent,
		GTK3Path: filepath.Join(result.ThemeDir, "gtk-3.0", "gtk.css"),
		GTK4Path: filepath.Join(result.ThemeDir, "gtk-4.0", "gtk.css"),
	})
	if err != nil {
		return nil, err
	}

	if opts.Activate && a.activator != nil {
		if err := a.activator.ActivateShellTheme(ctx, name); err != nil {
			return result, fmt.Errorf("failed to activate shell theme %s: %w", name, err)
		}
		result.Activated = true
		logger.Debug().Str("theme", name).Msg("activated shell theme")
	}

	return result, nil
}

// stage copies the <version>/ subtree of the source into dst.
func (a *ShellApplier) stage(version, dst string) error {
	if _, err := fs.Stat(a.source, version); err != nil {
		return fmt.Errorf("failed to find template tree for shell %s: %w", version, err)
	}

	return fs.WalkDir(a.source, version, func(srcPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", srcPath, err)
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(srcPath, version), "/")
		target := filepath.Join(dst, filepath.FromSlash(rel))

		if d.IsDir() {
			if err := a.fs.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create %s: %w", target, err)
			}
			return nil
		}

		data, err := fs.ReadFile(a.source, srcPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", srcPath, err)
		}
		if err := afero.WriteFile(a.fs, target, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		return nil
	})
}

// renderTemplates replaces every *.template under dir with a rendered *.scss.
func (a *ShellApplier) renderTemplates(p *domain.Preset, opts ShellOptions, dir string) error {
	var templates []string
	err := afero.Walk(a.fs, dir, func(walkPath string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && path.Ext(info.Name()) == templateExt {
			templates = append(templates, walkPath)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	for _, tmplPath := range templates {
		text, err := afero.ReadFile(a.fs, tmplPath)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", tmplPath, err)
		}

		out, err := render.Template(p, string(text), opts.Mode, opts.Accent)
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", tmplPath, err)
		}

		scssPath := strings.TrimSuffix(tmplPath, templateExt) + ".scss"
		if err := afero.WriteFile(a.fs, scssPath, []byte(out), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", scssPath, err)
		}
		if err := a.fs.Remove(tmplPath); err != nil {
			return fmt.Errorf("failed to remove %s: %w", tmplPath, err)
		}
	}
	return nil
}
