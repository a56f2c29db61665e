package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"themesmith/internal/domain"
	"themesmith/internal/repository"
)

// Exporter writes presets as documents. Mode and Accent select the values
// shown in Markdown tables.
type Exporter struct {
	Mode   domain.Mode
	Accent domain.Accent
}

func NewExporter(mode domain.Mode, accent domain.Accent) *Exporter {
	return &Exporter{Mode: mode, Accent: accent}
}

func (e *Exporter) Write(w io.Writer, p *domain.Preset, format ExportFormat) error {
	switch format {
	case FormatJSON:
		return writeDocument(w, p, domain.FormatJSON)
	case FormatYAML:
		return writeDocument(w, p, domain.FormatYAML)
	case FormatMarkdown:
		return e.writeMarkdown(w, p)
	default:
		return fmt.Errorf("invalid export format %q", format)
	}
}

func writeDocument(w io.Writer, p *domain.Preset, format domain.Format) error {
	data, err := domain.EncodePreset(p, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write preset: %w", err)
	}
	return nil
}

// Backup writes every preset in repo as one JSON document.
func Backup(ctx context.Context, w io.Writer, repo repository.PresetRepository) (int, error) {
	records, err := repo.List(ctx, repository.PresetFilter{SortBy: "name"})
	if err != nil {
		return 0, fmt.Errorf("failed to list presets: %w", err)
	}

	backup := BackupData{
		Version:   BackupVersion,
		Timestamp: time.Now().UTC(),
		Presets:   make([]*domain.Preset, 0, len(records)),
	}
	for _, r := range records {
		backup.Presets = append(backup.Presets, r.Preset)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(backup); err != nil {
		return 0, fmt.Errorf("failed to encode backup: %w", err)
	}
	return len(backup.Presets), nil
}
