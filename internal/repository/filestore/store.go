// Package filestore keeps presets as one JSON document per file.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"themesmith/internal/domain"
	"themesmith/internal/repository"
)

const ext = ".json"

type Store struct {
	fs  afero.Fs
	dir string
}

func New(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

func (s *Store) path(name string) (string, error) {
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid preset name %q for file store", name)
	}
	return filepath.Join(s.dir, name+ext), nil
}

func (s *Store) Save(ctx context.Context, p *domain.Preset) (*repository.PresetRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	path, err := s.path(p.Name)
	if err != nil {
		return nil, err
	}

	data, err := domain.EncodePreset(p, domain.FormatJSON)
	if err != nil {
		return nil, err
	}

	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return s.Get(ctx, p.Name)
}

func (s *Store) Get(ctx context.Context, name string) (*repository.PresetRecord, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	return s.load(path)
}

func (s *Store) load(path string) (*repository.PresetRecord, error) {
	info, err := s.fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			name := strings.TrimSuffix(filepath.Base(path), ext)
			return nil, fmt.Errorf("%w: %q", repository.ErrPresetNotFound, name)
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	p, err := domain.LoadPreset(s.fs, path)
	if err != nil {
		return nil, err
	}

	return &repository.PresetRecord{
		Preset:    p,
		CreatedAt: info.ModTime(),
		UpdatedAt: info.ModTime(),
	}, nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %q", repository.ErrPresetNotFound, name)
		}
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}

func (s *Store) all() ([]*repository.PresetRecord, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read store %s: %w", s.dir, err)
	}

	records := make([]*repository.PresetRecord, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		record, err := s.load(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func matches(p *domain.Preset, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, field := range []string{p.Name, p.Author.Name, p.Description} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

func (s *Store) filtered(filter repository.PresetFilter) ([]*repository.PresetRecord, error) {
	records, err := s.all()
	if err != nil {
		return nil, err
	}
	if filter.SearchQuery == "" {
		return records, nil
	}

	out := records[:0]
	for _, r := range records {
		if matches(r.Preset, filter.SearchQuery) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *Store) List(ctx context.Context, filter repository.PresetFilter) ([]*repository.PresetRecord, error) {
	records, err := s.filtered(filter)
	if err != nil {
		return nil, err
	}

	less := func(a, b *repository.PresetRecord) bool { return a.Preset.Name < b.Preset.Name }
	switch filter.SortBy {
	case "created_at":
		less = func(a, b *repository.PresetRecord) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case "updated_at":
		less = func(a, b *repository.PresetRecord) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	}
	desc := strings.EqualFold(filter.SortOrder, "desc")
	sort.SliceStable(records, func(i, j int) bool {
		if desc {
			return less(records[j], records[i])
		}
		return less(records[i], records[j])
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(records) {
			return []*repository.PresetRecord{}, nil
		}
		records = records[filter.Offset:]
	}
	if filter.Limit > 0 && len(records) > filter.Limit {
		records = records[:filter.Limit]
	}
	return records, nil
}

func (s *Store) Count(ctx context.Context, filter repository.PresetFilter) (int64, error) {
	records, err := s.filtered(filter)
	if err != nil {
		return 0, err
	}
	return int64(len(records)), nil
}

func (s *Store) Search(ctx context.Context, query string, limit int) ([]*repository.PresetRecord, error) {
	records, err := s.List(ctx, repository.PresetFilter{})
	if err != nil {
		return nil, err
	}
	return repository.RankByName(query, records, limit), nil
}

func (s *Store) Close() error {
	return nil
}

var _ repository.PresetRepository = (*Store)(nil)

