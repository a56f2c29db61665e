package display

import (
	"fmt"
	"strings"
	"time"

	"themesmith/internal/domain"
	"themesmith/internal/export"
)

func GetModeIcon(mode domain.Mode) string {
	switch mode {
	case domain.ModeLight:
		return "☀"
	case domain.ModeDark:
		return "☾"
	default:
		return "?"
	}
}

func GetImportIcon(action export.ImportAction) string {
	switch action {
	case export.ImportCreated:
		return "✓"
	case export.ImportOverwritten:
		return "↻"
	case export.ImportSkipped:
		return "○"
	default:
		return "?"
	}
}

// FormatUpdated renders a store timestamp relative to now.
func FormatUpdated(updated, now time.Time) string {
	if updated.IsZero() {
		return "-"
	}

	diff := now.Sub(updated)
	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}

	return updated.Format("2006-01-02")
}

// FormatSupport summarises the mode and accent lists of a preset, where an
// empty list means all.
func FormatSupport(s domain.Supported) string {
	modes := "all modes"
	if len(s.Modes) > 0 {
		modes = strings.Join(s.Modes, "/")
	}
	accents := "all accents"
	if len(s.Accents) > 0 {
		accents = strings.Join(s.Accents, "/")
	}
	return modes + ", " + accents
}

// Truncate shortens s to max runes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 || len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
