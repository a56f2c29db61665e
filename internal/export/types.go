package export

import (
	"fmt"
	"strings"
	"time"

	"themesmith/internal/domain"
)

const BackupVersion = "1.0"

// BackupData bundles every stored preset into one document.
type BackupData struct {
	Version   string           `json:"version"`
	Timestamp time.Time        `json:"timestamp"`
	Presets   []*domain.Preset `json:"presets"`
}

type ConflictStrategy string

const (
	ConflictStrategySkip      ConflictStrategy = "skip"
	ConflictStrategyOverwrite ConflictStrategy = "overwrite"
)

func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	switch ConflictStrategy(strings.ToLower(s)) {
	case ConflictStrategySkip:
		return ConflictStrategySkip, nil
	case ConflictStrategyOverwrite:
		return ConflictStrategyOverwrite, nil
	default:
		return "", fmt.Errorf("invalid conflict strategy %q (must be skip or overwrite)", s)
	}
}

type ExportFormat string

const (
	FormatJSON     ExportFormat = "json"
	FormatYAML     ExportFormat = "yaml"
	FormatMarkdown ExportFormat = "markdown"
)

func ParseFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(s) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid export format %q (must be json, yaml or markdown)", s)
	}
}
