package apply

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"themesmith/internal/domain"
	"themesmith/internal/render"
)

type mockVersions struct {
	mock.Mock
}

func (m *mockVersions) ShellVersion(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockCompiler struct {
	mock.Mock
}

func (m *mockCompiler) Compile(ctx context.Context, fsys afero.Fs, entry string) (string, error) {
	args := m.Called(ctx, fsys, entry)
	return args.String(0), args.Error(1)
}

type mockActivator struct {
	mock.Mock
}

func (m *mockActivator) ActivateShellTheme(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func shellSource() fstest.MapFS {
	return fstest.MapFS{
		"46/gnome-shell.template":     {Data: []byte("@import 'widgets';\n.panel { color: @mode; background: {{panel_bg_color}}; }\n")},
		"46/widgets/_button.template": {Data: []byte(".button { color: {{accent_color}}; }\n")},
		"46/widgets/_static.scss":     {Data: []byte(".static {}\n")},
		"46/assets/checkbox.svg":      {Data: []byte("<svg/>")},
		"45/gnome-shell.template":     {Data: []byte("old")},
	}
}

func TestGTKApplierWritesBothSheets(t *testing.T) {
	fs := afero.NewMemMapFs()
	p := domain.NewPreset("Sheets")
	p.Variables.Set(domain.AccentColor, domain.ByMode{Light: "#111111", Dark: "#222222"})

	paths, err := NewGTKApplier(fs).Apply(context.Background(), p, GTKOptions{
		Mode:     domain.ModeLight,
		Accent:   domain.AccentBlue,
		GTK3Path: "/out/gtk-3.0/gtk.css",
		GTK4Path: "/out/gtk-4.0/gtk.css",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/out/gtk-3.0/gtk.css", "/out/gtk-4.0/gtk.css"}, paths)

	for i, version := range []domain.GTKVersion{domain.GTK3, domain.GTK4} {
		data, err := afero.ReadFile(fs, paths[i])
		require.NoError(t, err)
		want, err := render.CSS(p, domain.ModeLight, domain.AccentBlue, version)
		require.NoError(t, err)
		assert.Equal(t, want, string(data))
		assert.Contains(t, string(data), "@define-color accent_color #111111;")
	}
}

func TestGTKApplierDefaultPaths(t *testing.T) {
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	t.Setenv("HOME", "/home/tester")

	fs := afero.NewMemMapFs()
	paths, err := NewGTKApplier(fs).Apply(context.Background(), domain.NewPreset("Home"), GTKOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/tester/.config/gtk-3.0/gtk.css", "/home/tester/.config/gtk-4.0/gtk.css"}, paths)

	exists, err := afero.Exists(fs, "/home/tester/.config/gtk-4.0/gtk.css")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestShellApplierRendersTemplates(t *testing.T) {
	fs := afero.NewMemMapFs()
	versions := new(mockVersions)
	versions.On("ShellVersion", mock.Anything).Return(46, nil)
	compiler := new(mockCompiler)
	compiler.On("Compile", mock.Anything, fs, "/work/Test-Dark-Blue/gnome-shell.scss").Return("compiled { }", nil)

	applier := NewShellApplier(fs, shellSource(), versions, compiler, nil)
	result, err := applier.Apply(context.Background(), domain.NewPreset("Test"), ShellOptions{
		Mode:      domain.ModeDark,
		Accent:    domain.AccentBlue,
		WorkDir:   "/work",
		ThemesDir: "/themes",
	})
	require.NoError(t, err)

	assert.Equal(t, "Test-Dark-Blue", result.ThemeName)
	assert.Equal(t, "/work/Test-Dark-Blue", result.StagingDir)
	assert.Equal(t, "/themes/Test-Dark-Blue", result.ThemeDir)
	assert.False(t, result.Activated)

	scss, err := afero.ReadFile(fs, "/work/Test-Dark-Blue/gnome-shell.scss")
	require.NoError(t, err)
	assert.Contains(t, string(scss), "color: dark;")
	assert.Contains(t, string(scss), "background: #2a2a2a;")

	nested, err := afero.ReadFile(fs, "/work/Test-Dark-Blue/widgets/_button.scss")
	require.NoError(t, err)
	assert.Equal(t, ".button { color: #78aeed; }\n", string(nested))

	for _, gone := range []string{"/work/Test-Dark-Blue/gnome-shell.template", "/work/Test-Dark-Blue/widgets/_button.template"} {
		exists, err := afero.Exists(fs, gone)
		require.NoError(t, err)
		assert.False(t, exists, gone)
	}

	for _, kept := range []string{"/work/Test-Dark-Blue/widgets/_static.scss", "/work/Test-Dark-Blue/assets/checkbox.svg"} {
		exists, err := afero.Exists(fs, kept)
		require.NoError(t, err)
		assert.True(t, exists, kept)
	}

	css, err := afero.ReadFile(fs, "/themes/Test-Dark-Blue/gnome-shell/gnome-shell.css")
	require.NoError(t, err)
	assert.Equal(t, "compiled { }", string(css))

	assert.Equal(t, []string{"/themes/Test-Dark-Blue/gtk-3.0/gtk.css", "/themes/Test-Dark-Blue/gtk-4.0/gtk.css"}, result.GTKPaths)
	compiler.AssertExpectations(t)
}

func TestShellApplierMinimalTemplate(t *testing.T) {
	fs := afero.NewMemMapFs()
	versions := new(mockVersions)
	versions.On("ShellVersion", mock.Anything).Return(46, nil)
	compiler := new(mockCompiler)
	compiler.On("Compile", mock.Anything, mock.Anything, mock.Anything).Return("", nil)

	source := fstest.MapFS{"46/gnome-shell.template": {Data: []byte("color: @mode;")}}
	_, err := NewShellApplier(fs, source, versions, compiler, nil).Apply(context.Background(), domain.NewPreset("P"), ShellOptions{
		Mode:      domain.ModeDark,
		WorkDir:   "/w",
		ThemesDir: "/t",
	})
	require.NoError(t, err)

	scss, err := afero.ReadFile(fs, "/w/P-Dark-Blue/gnome-shell.scss")
	require.NoError(t, err)
	assert.Equal(t, "color: dark;", string(scss))

	exists, err := afero.Exists(fs, "/w/P-Dark-Blue/gnome-shell.template")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestShellApplierUnsupportedVersion(t *testing.T) {
	fs := afero.NewMemMapFs()
	versions := new(mockVersions)
	versions.On("ShellVersion", mock.Anything).Return(45, nil)
	compiler := new(mockCompiler)

	_, err := NewShellApplier(fs, shellSource(), versions, compiler, nil).Apply(context.Background(), domain.NewPreset("Old"), ShellOptions{
		WorkDir:   "/work",
		ThemesDir: "/themes",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)

	for _, dir := range []string{"/work", "/themes"} {
		exists, err := afero.DirExists(fs, dir)
		require.NoError(t, err)
		assert.False(t, exists, dir)
	}
	compiler.AssertNotCalled(t, "Compile", mock.Anything, mock.Anything, mock.Anything)
}

func TestShellApplierUnknownVersion(t *testing.T) {
	fs := afero.NewMemMapFs()
	versions := new(mockVersions)
	versions.On("ShellVersion", mock.Anything).Return(0, errors.New("gnome-shell: command not found"))
	compiler := new(mockCompiler)

	_, err := NewShellApplier(fs, shellSource(), versions, compiler, nil).Apply(context.Background(), domain.NewPreset("Headless"), ShellOptions{
		WorkDir:   "/work",
		ThemesDir: "/themes",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
	assert.Contains(t, err.Error(), "command not found")

	exists, err := afero.DirExists(fs, "/work")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestShellApplierCompileError(t *testing.T) {
	fs := afero.NewMemMapFs()
	versions := new(mockVersions)
	versions.On("ShellVersion", mock.Anything).Return(46, nil)
	compiler := new(mockCompiler)
	compiler.On("Compile", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("undefined variable"))

	_, err := NewShellApplier(fs, shellSource(), versions, compiler, nil).Apply(context.Background(), domain.NewPreset("Broken"), ShellOptions{
		WorkDir:   "/work",
		ThemesDir: "/themes",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCompile)
	assert.Contains(t, err.Error(), "undefined variable")
	assert.Contains(t, err.Error(), "Broken@0.0.1 light/blue")

	exists, err := afero.Exists(fs, "/themes/Broken-Light-Blue/gnome-shell/gnome-shell.css")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestShellApplierTemplateError(t *testing.T) {
	fs := afero.NewMemMapFs()
	versions := new(mockVersions)
	versions.On("ShellVersion", mock.Anything).Return(46, nil)
	compiler := new(mockCompiler)

	source := fstest.MapFS{"46/gnome-shell.template": {Data: []byte("{{not_a_key}}")}}
	_, err := NewShellApplier(fs, source, versions, compiler, nil).Apply(context.Background(), domain.NewPreset("Bad"), ShellOptions{
		WorkDir:   "/work",
		ThemesDir: "/themes",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, render.ErrTemplate)
	assert.Contains(t, err.Error(), "gnome-shell.template")
	assert.Contains(t, err.Error(), "Bad@0.0.1 light/blue")
	compiler.AssertNotCalled(t, "Compile", mock.Anything, mock.Anything, mock.Anything)
}

func TestShellApplierCustomNameAndActivation(t *testing.T) {
	fs := afero.NewMemMapFs()
	versions := new(mockVersions)
	versions.On("ShellVersion", mock.Anything).Return(46, nil)
	compiler := new(mockCompiler)
	compiler.On("Compile", mock.Anything, mock.Anything, "/work/Mine/gnome-shell.scss").Return("x", nil)
	activator := new(mockActivator)
	activator.On("ActivateShellTheme", mock.Anything, "Mine").Return(nil)

	result, err := NewShellApplier(fs, shellSource(), versions, compiler, activator).Apply(context.Background(), domain.NewPreset("Ignored"), ShellOptions{
		WorkDir:   "/work",
		ThemesDir: "/themes",
		ThemeName: "Mine",
		Activate:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "/themes/Mine", result.ThemeDir)
	assert.True(t, result.Activated)
	activator.AssertExpectations(t)
}

func TestDefaultThemeName(t *testing.T) {
	assert.Equal(t, "Nord-Light-Slate", DefaultThemeName(domain.NewPreset("Nord"), domain.ModeLight, domain.AccentSlate))
}
