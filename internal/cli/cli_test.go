package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themesmith/internal/domain"
	"themesmith/internal/render"
	"themesmith/internal/repository"
	"themesmith/internal/theme"
)

const testPreset = `{
  "name": "Test",
  "description": "A test preset",
  "variables": {"accent_color": {"light": "#112233", "dark": "#445566"}}
}`

// resetFlags restores every flag to its default between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

type testEnv struct {
	dir string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("THEMESMITH_STORE_BACKEND", "files")
	t.Setenv("THEMESMITH_STORE_PATH", filepath.Join(dir, "store"))
	t.Setenv("THEMESMITH_GTK_GTK3_PATH", filepath.Join(dir, "gtk-3.0", "gtk.css"))
	t.Setenv("THEMESMITH_GTK_GTK4_PATH", filepath.Join(dir, "gtk-4.0", "gtk.css"))
	t.Setenv("THEMESMITH_LOG_LEVEL", "disabled")
	return &testEnv{dir: dir}
}

func (e *testEnv) path(parts ...string) string {
	return filepath.Join(append([]string{e.dir}, parts...)...)
}

func (e *testEnv) write(t *testing.T, name, content string) string {
	t.Helper()
	path := e.path(name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", e.path("config.yaml")}, args...))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCSSCommand(t *testing.T) {
	env := setupTestEnv(t)
	preset := env.write(t, "test.json", testPreset)

	out, err := env.run(t, "css", "-p", preset, "-m", "dark", "-a", "teal")
	require.NoError(t, err)
	assert.Contains(t, out, "/* Preset: Test@0.0.1 dark/teal */")
	assert.Contains(t, out, "@define-color accent_color #445566;")

	_, err = env.run(t, "css", "-p", preset, "--gtk", "5")
	assert.ErrorContains(t, err, "invalid GTK version")

	_, err = env.run(t, "css", "-p", preset, "-m", "dusk")
	assert.ErrorIs(t, err, domain.ErrInvalidMode)

	_, err = env.run(t, "css")
	assert.ErrorContains(t, err, "no preset given")
}

func TestGTKCommand(t *testing.T) {
	env := setupTestEnv(t)
	preset := env.write(t, "test.yaml", "name: Test\nvariables:\n  accent_color: \"#abcdef\"\n")

	out, err := env.run(t, "gtk", "-p", preset)
	require.NoError(t, err)
	assert.Contains(t, out, "Applied Test@0.0.1 (light/blue)")

	for _, dir := range []string{"gtk-3.0", "gtk-4.0"} {
		data, err := os.ReadFile(env.path(dir, "gtk.css"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "@define-color accent_color #abcdef;")
	}
}

func TestRenderCommand(t *testing.T) {
	env := setupTestEnv(t)
	preset := env.write(t, "test.json", testPreset)

	tmpl := env.write(t, "colors.template", "{{name}} {{accent_color}} @mode/@accent\n")
	out, err := env.run(t, "render", tmpl, "-p", preset, "-m", "dark", "-a", "red")
	require.NoError(t, err)
	assert.Equal(t, "Test #445566 dark/red\n", out)

	bad := env.write(t, "bad.template", "{{nope}}")
	_, err = env.run(t, "render", bad, "-p", preset)
	assert.ErrorIs(t, err, render.ErrTemplate)
}

func TestStoreCommands(t *testing.T) {
	env := setupTestEnv(t)
	preset := env.write(t, "test.json", testPreset)

	out, err := env.run(t, "store", "add", preset)
	require.NoError(t, err)
	assert.Contains(t, out, "Test")
	assert.Contains(t, out, "created")

	out, err = env.run(t, "store", "add", preset, "--on-conflict", "skip")
	require.NoError(t, err)
	assert.Contains(t, out, "skipped")

	out, err = env.run(t, "store", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Test")
	assert.Contains(t, out, "1 preset(s)")

	out, err = env.run(t, "store", "show", "Test", "-m", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "A test preset")
	assert.Contains(t, out, "#445566")

	out, err = env.run(t, "store", "search", "tst")
	require.NoError(t, err)
	assert.Contains(t, out, "Test")

	out, err = env.run(t, "store", "export", "Test", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Test")

	out, err = env.run(t, "css", "-p", "Test")
	require.NoError(t, err)
	assert.Contains(t, out, "@define-color accent_color #112233;")

	_, err = env.run(t, "css", "-p", "Tst")
	require.ErrorIs(t, err, repository.ErrPresetNotFound)
	assert.ErrorContains(t, err, "did you mean Test?")

	_, err = env.run(t, "store", "remove", "Test")
	require.NoError(t, err)

	out, err = env.run(t, "store", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No presets found.")

	_, err = env.run(t, "store", "remove", "Test")
	assert.ErrorIs(t, err, repository.ErrPresetNotFound)
}

func TestStoreBackupRestore(t *testing.T) {
	env := setupTestEnv(t)
	preset := env.write(t, "test.json", testPreset)
	backup := env.path("backup.json")

	_, err := env.run(t, "store", "add", preset)
	require.NoError(t, err)

	out, err := env.run(t, "store", "backup", "-o", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "Backed up 1 preset(s)")

	_, err = env.run(t, "store", "remove", "Test")
	require.NoError(t, err)

	out, err = env.run(t, "store", "restore", backup)
	require.NoError(t, err)
	assert.Contains(t, out, "created")
}

func TestSchemaCommand(t *testing.T) {
	env := setupTestEnv(t)

	out, err := env.run(t, "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	assert.Contains(t, schema, "properties")
}

func TestInitConfigCommand(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.run(t, "init-config")
	require.NoError(t, err)
	_, err = os.Stat(env.path("config.yaml"))
	require.NoError(t, err)

	_, err = env.run(t, "init-config")
	assert.ErrorContains(t, err, "already exists")

	_, err = env.run(t, "init-config", "--force")
	assert.NoError(t, err)
}

func TestUIThemeCommands(t *testing.T) {
	env := setupTestEnv(t)

	out, err := env.run(t, "ui-theme", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "adwaita-dark")
	assert.Contains(t, out, "adwaita-light (current)")

	_, err = env.run(t, "ui-theme", "set", "dracula")
	assert.ErrorIs(t, err, theme.ErrThemeNotFound)

	_, err = env.run(t, "ui-theme", "set", "adwaita-dark")
	require.NoError(t, err)
	data, err := os.ReadFile(env.path("config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "adwaita-dark")

	out, err = env.run(t, "ui-theme", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Current Theme: adwaita-dark")
	assert.Contains(t, out, "#78aeed")

	out, err = env.run(t, "ui-theme", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "adwaita-dark (current)")
}

func TestAccentFlagListsAccents(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("accent")
	require.NotNil(t, flag)
	for _, name := range domain.AccentNames() {
		assert.Contains(t, flag.Usage, name)
	}
}

func TestDocsCommand(t *testing.T) {
	env := setupTestEnv(t)
	dir := env.path("docs")

	_, err := env.run(t, "docs", "--dir", dir)
	require.NoError(t, err)

	for _, name := range []string{"themesmith.md", "themesmith_store_add.md", "themesmith_gtk.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	_, err = env.run(t, "docs", "--dir", dir, "--format", "pdf")
	assert.ErrorContains(t, err, "invalid docs format")
}
