package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"themesmith/assets"
	"themesmith/internal/apply"
	"themesmith/internal/config"
	"themesmith/internal/domain"
	"themesmith/internal/fuzzy"
	"themesmith/internal/logging"
	"themesmith/internal/repository"
	"themesmith/internal/repository/filestore"
	"themesmith/internal/repository/sqlite"
	"themesmith/internal/session"
	"themesmith/internal/theme"
)

// target returns the mode and accent from the flags, falling back to the
// configured defaults.
func target() (domain.Mode, domain.Accent, error) {
	modeName := cfg.Defaults.Mode
	if flagMode != "" {
		modeName = flagMode
	}
	mode, err := domain.ParseMode(modeName)
	if err != nil {
		return mode, 0, err
	}

	accentName := cfg.Defaults.Accent
	if flagAccent != "" {
		accentName = flagAccent
	}
	accent, err := domain.ParseAccent(accentName)
	if err != nil {
		return mode, accent, err
	}

	return mode, accent, nil
}

func openStore() (repository.PresetRepository, error) {
	path := cfg.Store.Path
	if flagStore != "" {
		path = flagStore
	}
	path, err := config.ExpandPath(path)
	if err != nil {
		return nil, err
	}

	if cfg.Store.Backend == config.BackendFiles {
		return filestore.New(afero.NewOsFs(), path)
	}

	db, err := sqlite.NewDB(sqlite.Config{Path: path})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return sqlite.NewPresetRepository(db), nil
}

// isPresetFile reports whether ref names an existing .json/.yaml file rather
// than a stored preset.
func isPresetFile(ref string) bool {
	if _, err := domain.FormatFromPath(ref); err != nil {
		return false
	}
	info, err := os.Stat(ref)
	return err == nil && !info.IsDir()
}

// loadPreset resolves --preset as a file path or a stored preset name.
func loadPreset(ctx context.Context) (*domain.Preset, error) {
	if flagPreset == "" {
		return nil, errors.New("no preset given (use --preset <name|file>)")
	}

	var (
		p   *domain.Preset
		err error
	)
	if isPresetFile(flagPreset) {
		p, err = domain.ReadPresetFile(flagPreset)
	} else {
		var repo repository.PresetRepository
		repo, err = openStore()
		if err != nil {
			return nil, err
		}
		defer repo.Close()
		p, err = presetByName(ctx, repo, flagPreset)
	}
	if err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preset %s: %w", flagPreset, err)
	}
	return p, nil
}

// presetByName fetches a stored preset, suggesting close names when it is
// missing.
func presetByName(ctx context.Context, repo repository.PresetRepository, name string) (*domain.Preset, error) {
	rec, err := repo.Get(ctx, name)
	if err == nil {
		return rec.Preset, nil
	}
	if !errors.Is(err, repository.ErrPresetNotFound) {
		return nil, fmt.Errorf("failed to get preset %s: %w", name, err)
	}

	records, listErr := repo.List(ctx, repository.PresetFilter{})
	if listErr == nil {
		if suggestions := fuzzy.Suggest(name, repository.Names(records)); len(suggestions) > 0 {
			return nil, fmt.Errorf("%w: %q (did you mean %s?)", repository.ErrPresetNotFound, name, strings.Join(suggestions, ", "))
		}
	}
	return nil, fmt.Errorf("%w: %q", repository.ErrPresetNotFound, name)
}

// presetTarget loads the preset and the mode/accent pair a command applies.
func presetTarget(ctx context.Context) (*domain.Preset, domain.Mode, domain.Accent, error) {
	mode, accent, err := target()
	if err != nil {
		return nil, mode, accent, err
	}

	p, err := loadPreset(ctx)
	if err != nil {
		return nil, mode, accent, err
	}

	if !p.Supports(mode, accent) {
		logging.FromContext(ctx).Warn().
			Str("preset", p.Name).
			Str("mode", mode.String()).
			Str("accent", accent.String()).
			Msg("preset does not declare support for this mode and accent")
	}
	return p, mode, accent, nil
}

func shellSource() (fs.FS, error) {
	dir := cfg.Shell.Source
	if flagShellSource != "" {
		dir = flagShellSource
	}
	if dir == "" {
		return assets.ShellSource(), nil
	}

	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return nil, err
	}
	if info, err := os.Stat(expanded); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("shell source %s is not a directory", expanded)
	}
	return os.DirFS(expanded), nil
}

// newCompiler builds the configured SCSS compiler and its cleanup func.
func newCompiler(runner session.CommandRunner) (apply.Compiler, func() error) {
	if cfg.Compiler.Kind == config.CompilerCommand {
		return session.NewCommandCompiler(runner, cfg.Compiler.Binary), func() error { return nil }
	}
	c := session.NewDartSassCompiler(cfg.Compiler.Binary)
	return c, c.Close
}

func gtkOptions(mode domain.Mode, accent domain.Accent) apply.GTKOptions {
	return apply.GTKOptions{
		Mode:     mode,
		Accent:   accent,
		GTK3Path: cfg.GTK.GTK3Path,
		GTK4Path: cfg.GTK.GTK4Path,
	}
}

// uiTheme returns the configured terminal theme, or the built-in theme of the
// target mode when none is set.
func uiTheme() *theme.Theme {
	if cfg != nil && cfg.UI.Theme != "" {
		if t, err := theme.GetTheme(cfg.UI.Theme); err == nil {
			return t
		}
	}
	mode, _, err := target()
	if err != nil {
		mode = domain.ModeDark
	}
	return theme.ForMode(mode)
}

func styles() *theme.Styles {
	return theme.NewStyles(uiTheme())
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.DefaultTheme().Error)).
		Bold(true)
}
