package repository

import (
	"context"
	"errors"
	"time"

	"themesmith/internal/domain"
	"themesmith/internal/fuzzy"
)

var ErrPresetNotFound = errors.New("preset not found")

// PresetRecord is a stored preset with its bookkeeping timestamps.
type PresetRecord struct {
	Preset    *domain.Preset
	CreatedAt time.Time
	UpdatedAt time.Time
}

type PresetRepository interface {
	// Save inserts p or replaces the preset stored under the same name.
	Save(ctx context.Context, p *domain.Preset) (*PresetRecord, error)
	Get(ctx context.Context, name string) (*PresetRecord, error)
	Delete(ctx context.Context, name string) error

	List(ctx context.Context, filter PresetFilter) ([]*PresetRecord, error)
	Count(ctx context.Context, filter PresetFilter) (int64, error)
	Search(ctx context.Context, query string, limit int) ([]*PresetRecord, error)
	Close() error
}

type PresetFilter struct {
	SearchQuery string
	SortBy      string // name, created_at or updated_at
	SortOrder   string // asc or desc
	Limit       int
	Offset      int
}

// RankByName orders records by how well their names fuzzy-match query.
func RankByName(query string, records []*PresetRecord, limit int) []*PresetRecord {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Preset.Name
	}

	matches := fuzzy.MatchMany(query, names, limit)
	ranked := make([]*PresetRecord, len(matches))
	for i, m := range matches {
		ranked[i] = records[m.Index]
	}
	return ranked
}

// Names lists the preset names of records in order.
func Names(records []*PresetRecord) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Preset.Name
	}
	return names
}
