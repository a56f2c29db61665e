package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"themesmith/internal/domain"
	"themesmith/internal/repository"
)

type ImportAction string

const (
	ImportCreated     ImportAction = "created"
	ImportOverwritten ImportAction = "overwritten"
	ImportSkipped     ImportAction = "skipped"
)

type ImportResult struct {
	Name   string
	Action ImportAction
}

type Importer struct {
	repo repository.PresetRepository
}

func NewImporter(repo repository.PresetRepository) *Importer {
	return &Importer{repo: repo}
}

// Import decodes one preset document, validates it and stores it.
func (i *Importer) Import(ctx context.Context, r io.Reader, format domain.Format, strategy ConflictStrategy) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read preset: %w", err)
	}

	p, err := domain.ParsePreset(data, format)
	if err != nil {
		return nil, err
	}

	return i.store(ctx, p, strategy)
}

// RestoreBackup imports every preset of a backup document.
func (i *Importer) RestoreBackup(ctx context.Context, r io.Reader, strategy ConflictStrategy) ([]*ImportResult, error) {
	var backup BackupData
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return nil, fmt.Errorf("failed to decode backup: %w", err)
	}

	results := make([]*ImportResult, 0, len(backup.Presets))
	for _, p := range backup.Presets {
		if p == nil {
			continue
		}
		result, err := i.store(ctx, p, strategy)
		if err != nil {
			return results, fmt.Errorf("failed to import preset %s: %w", p.Name, err)
		}
		results = append(results, result)
	}
	return results, nil
}

func (i *Importer) store(ctx context.Context, p *domain.Preset, strategy ConflictStrategy) (*ImportResult, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	action := ImportCreated
	_, err := i.repo.Get(ctx, p.Name)
	switch {
	case err == nil:
		if strategy != ConflictStrategyOverwrite {
			return &ImportResult{Name: p.Name, Action: ImportSkipped}, nil
		}
		action = ImportOverwritten
	case !errors.Is(err, repository.ErrPresetNotFound):
		return nil, fmt.Errorf("failed to check existing preset: %w", err)
	}

	if _, err := i.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return &ImportResult{Name: p.Name, Action: action}, nil
}
