package display

import (
	"testing"
	"time"

	"themesmith/internal/domain"
	"themesmith/internal/export"
)

func TestGetModeIcon(t *testing.T) {
	if got := GetModeIcon(domain.ModeLight); got != "☀" {
		t.Errorf("light icon = %q", got)
	}
	if got := GetModeIcon(domain.ModeDark); got != "☾" {
		t.Errorf("dark icon = %q", got)
	}
}

func TestGetImportIcon(t *testing.T) {
	tests := map[export.ImportAction]string{
		export.ImportCreated:     "✓",
		export.ImportOverwritten: "↻",
		export.ImportSkipped:     "○",
		"unknown":                "?",
	}
	for action, want := range tests {
		if got := GetImportIcon(action); got != want {
			t.Errorf("GetImportIcon(%q) = %q, want %q", action, got, want)
		}
	}
}

func TestFormatUpdated(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		updated time.Time
		want    string
	}{
		{"zero", time.Time{}, "-"},
		{"seconds", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-49 * time.Hour), "2d ago"},
		{"old", now.Add(-30 * 24 * time.Hour), "2025-02-08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatUpdated(tt.updated, now); got != tt.want {
				t.Errorf("FormatUpdated() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatSupport(t *testing.T) {
	if got := FormatSupport(domain.Supported{}); got != "all modes, all accents" {
		t.Errorf("empty support = %q", got)
	}
	s := domain.Supported{Modes: []string{"dark"}, Accents: []string{"blue", "red"}}
	if got := FormatSupport(s); got != "dark, blue/red" {
		t.Errorf("listed support = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Adwaita", 10); got != "Adwaita" {
		t.Errorf("short = %q", got)
	}
	if got := Truncate("Catppuccin Mocha", 8); got != "Catppuc…" {
		t.Errorf("long = %q", got)
	}
}
