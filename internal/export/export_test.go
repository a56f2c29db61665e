package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themesmith/internal/domain"
	"themesmith/internal/repository"
	"themesmith/internal/repository/filestore"
)

func newRepo(t *testing.T) repository.PresetRepository {
	t.Helper()
	repo, err := filestore.New(afero.NewMemMapFs(), "/presets")
	require.NoError(t, err)
	return repo
}

func TestExporterDocuments(t *testing.T) {
	p := domain.NewPreset("Export")
	p.Variables.Set(domain.AccentColor, domain.Single("#123456"))
	e := NewExporter(domain.ModeLight, domain.AccentBlue)

	for _, tt := range []struct {
		format ExportFormat
		parse  domain.Format
	}{
		{FormatJSON, domain.FormatJSON},
		{FormatYAML, domain.FormatYAML},
	} {
		t.Run(string(tt.format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, e.Write(&buf, p, tt.format))

			decoded, err := domain.ParsePreset(buf.Bytes(), tt.parse)
			require.NoError(t, err)
			assert.Equal(t, "Export", decoded.Name)
			assert.Equal(t, domain.Single("#123456"), decoded.Variables.Get(domain.AccentColor))
		})
	}
}

func TestExporterMarkdown(t *testing.T) {
	p := domain.NewPreset("Docs")
	p.Description = "A documented preset"
	p.Author.Email = "me@example.com"
	p.Custom.Gtk4 = "window { }\n"

	var buf bytes.Buffer
	require.NoError(t, NewExporter(domain.ModeDark, domain.AccentRed).Write(&buf, p, FormatMarkdown))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Docs\n\nA documented preset\n"))
	assert.Contains(t, out, "**Author**: Anonymous <me@example.com>")
	assert.Contains(t, out, "## Variables (dark/red)")
	assert.Contains(t, out, "| `accent_color` | `#78aeed` |")
	assert.Contains(t, out, "| blue | 1 `#99c1f1`")
	assert.Contains(t, out, "## Custom CSS (GTK 4)\n\n```css\nwindow { }\n```")
	assert.NotContains(t, out, "Custom CSS (Shell)")
}

func TestImporterStrategies(t *testing.T) {
	repo := newRepo(t)
	importer := NewImporter(repo)
	ctx := context.Background()

	result, err := importer.Import(ctx, strings.NewReader(`{"name":"Imported","version":"1.0.0"}`), domain.FormatJSON, ConflictStrategySkip)
	require.NoError(t, err)
	assert.Equal(t, ImportCreated, result.Action)

	result, err = importer.Import(ctx, strings.NewReader(`{"name":"Imported","version":"2.0.0"}`), domain.FormatJSON, ConflictStrategySkip)
	require.NoError(t, err)
	assert.Equal(t, ImportSkipped, result.Action)

	stored, err := repo.Get(ctx, "Imported")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", stored.Preset.Version)

	result, err = importer.Import(ctx, strings.NewReader("name: Imported\nversion: 3.0.0\n"), domain.FormatYAML, ConflictStrategyOverwrite)
	require.NoError(t, err)
	assert.Equal(t, ImportOverwritten, result.Action)

	stored, err = repo.Get(ctx, "Imported")
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", stored.Preset.Version)
}

func TestImporterRejectsInvalid(t *testing.T) {
	importer := NewImporter(newRepo(t))

	_, err := importer.Import(context.Background(), strings.NewReader(`{"name":""}`), domain.FormatJSON, ConflictStrategySkip)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestBackupAndRestore(t *testing.T) {
	source := newRepo(t)
	ctx := context.Background()
	for _, name := range []string{"One", "Two"} {
		_, err := source.Save(ctx, domain.NewPreset(name))
		require.NoError(t, err)
	}

	var buf bytes.Buffer
	n, err := Backup(ctx, &buf, source)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	target := newRepo(t)
	results, err := NewImporter(target).RestoreBackup(ctx, &buf, ConflictStrategySkip)
	require.NoError(t, err)
	require.Len(t, results, 2)

	count, err := target.Count(ctx, repository.PresetFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestParseFormatAndStrategy(t *testing.T) {
	f, err := ParseFormat("md")
	require.NoError(t, err)
	assert.Equal(t, FormatMarkdown, f)

	_, err = ParseFormat("csv")
	assert.Error(t, err)

	s, err := ParseConflictStrategy("Overwrite")
	require.NoError(t, err)
	assert.Equal(t, ConflictStrategyOverwrite, s)

	_, err = ParseConflictStrategy("merge")
	assert.Error(t, err)
}
