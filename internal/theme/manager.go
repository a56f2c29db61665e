package theme

import (
	"errors"
	"fmt"
	"sort"

	"themesmith/internal/domain"
)

var (
	ErrThemeNotFound = errors.New("theme not found")
)

// Manager serves the built-in themes and caches themes derived from presets.
type Manager struct {
	themes  map[string]*Theme
	derived map[string]*Theme
}

func NewManager() *Manager {
	return &Manager{
		themes:  GetPredefinedThemes(),
		derived: make(map[string]*Theme),
	}
}

func (m *Manager) GetTheme(name string) (*Theme, error) {
	theme, exists := m.themes[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	return theme, nil
}

// returns all built-in theme names, sorted
func (m *Manager) ListThemes() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *Manager) ThemeExists(name string) bool {
	_, exists := m.themes[name]
	return exists
}

// ForMode returns the built-in theme matching mode.
func (m *Manager) ForMode(mode domain.Mode) *Theme {
	if theme, ok := m.themes[predefinedName(mode)]; ok {
		return theme
	}
	return DefaultTheme()
}

// ForPreset derives the theme of p for mode and accent, reusing an earlier
// derivation of the same preset version.
func (m *Manager) ForPreset(p *domain.Preset, mode domain.Mode, accent domain.Accent) (*Theme, error) {
	key := fmt.Sprintf("%s/%s/%s", p.Label(), mode, accent)
	if theme, ok := m.derived[key]; ok {
		return theme, nil
	}

	theme, err := FromPreset(p, mode, accent)
	if err != nil {
		return nil, err
	}
	m.derived[key] = theme
	return theme, nil
}

var globalManager = NewManager()

func GetTheme(name string) (*Theme, error) {
	return globalManager.GetTheme(name)
}

func ListThemes() []string {
	return globalManager.ListThemes()
}

func ThemeExists(name string) bool {
	return globalManager.ThemeExists(name)
}

func ForPreset(p *domain.Preset, mode domain.Mode, accent domain.Accent) (*Theme, error) {
	return globalManager.ForPreset(p, mode, accent)
}

func ForMode(mode domain.Mode) *Theme {
	return globalManager.ForMode(mode)
}
