package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"themesmith/internal/domain"
	"themesmith/internal/repository"
)

type PresetRepository struct {
	db *DB
}

func NewPresetRepository(db *DB) *PresetRepository {
	return &PresetRepository{db: db}
}

type dbPreset struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Version     string         `db:"version"`
	Author      string         `db:"author"`
	Description sql.NullString `db:"description"`
	Document    string         `db:"document"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (dp *dbPreset) toRecord() (*repository.PresetRecord, error) {
	var p domain.Preset
	if err := json.Unmarshal([]byte(dp.Document), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preset %q: %w", dp.Name, err)
	}

	return &repository.PresetRecord{
		Preset:    &p,
		CreatedAt: dp.CreatedAt,
		UpdatedAt: dp.UpdatedAt,
	}, nil
}

const presetColumns = `id, name, version, author, description, document, created_at, updated_at`

func (r *PresetRepository) Save(ctx context.Context, p *domain.Preset) (*repository.PresetRecord, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	document, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preset: %w", err)
	}

	query := `
		INSERT INTO presets (name, version, author, description, document)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			version = excluded.version,
			author = excluded.author,
			description = excluded.description,
			document = excluded.document,
			updated_at = CURRENT_TIMESTAMP
	`

	_, err = r.db.ExecContext(ctx, query,
		p.Name,
		p.Version,
		p.Author.Name,
		nullString(p.Description),
		string(document),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save preset %q: %w", p.Name, err)
	}

	saved, err := r.Get(ctx, p.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch saved preset: %w", err)
	}

	return saved, nil
}

func (r *PresetRepository) Get(ctx context.Context, name string) (*repository.PresetRecord, error) {
	query := `SELECT ` + presetColumns + ` FROM presets WHERE name = ?`

	var dp dbPreset
	err := r.db.GetContext(ctx, &dp, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", repository.ErrPresetNotFound, name)
		}
		return nil, fmt.Errorf("failed to get preset: %w", err)
	}

	return dp.toRecord()
}

func (r *PresetRepository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM presets WHERE name = ?`

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %q", repository.ErrPresetNotFound, name)
	}

	return nil
}

func (r *PresetRepository) List(ctx context.Context, filter repository.PresetFilter) ([]*repository.PresetRecord, error) {
	query := `SELECT ` + presetColumns + ` FROM presets`

	var args []interface{}
	if filter.SearchQuery != "" {
		cond, condArgs := searchCondition(filter.SearchQuery)
		query += " WHERE " + cond
		args = append(args, condArgs...)
	}

	sortBy := "name"
	switch filter.SortBy {
	case "name", "created_at", "updated_at":
		sortBy = filter.SortBy
	}

	sortOrder := "ASC"
	if strings.EqualFold(filter.SortOrder, "desc") {
		sortOrder = "DESC"
	}

	query += fmt.Sprintf(" ORDER BY %s %s, id ASC", sortBy, sortOrder)

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	if filter.Offset > 0 {
		if filter.Limit <= 0 {
			query += " LIMIT -1"
		}
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	var rows []dbPreset
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}

	records := make([]*repository.PresetRecord, 0, len(rows))
	for _, dp := range rows {
		record, err := dp.toRecord()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *PresetRepository) Count(ctx context.Context, filter repository.PresetFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM presets`

	var args []interface{}
	if filter.SearchQuery != "" {
		cond, condArgs := searchCondition(filter.SearchQuery)
		query += " WHERE " + cond
		args = append(args, condArgs...)
	}

	var count int64
	if err := r.db.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count presets: %w", err)
	}

	return count, nil
}

// Search ranks every stored preset by fuzzy name match.
func (r *PresetRepository) Search(ctx context.Context, query string, limit int) ([]*repository.PresetRecord, error) {
	all, err := r.List(ctx, repository.PresetFilter{})
	if err != nil {
		return nil, err
	}

	return repository.RankByName(query, all, limit), nil
}

func (r *PresetRepository) Close() error {
	return r.db.Close()
}

var _ repository.PresetRepository = (*PresetRepository)(nil)
