package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"themesmith/internal/domain"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m PickerModel, msgs ...tea.Msg) PickerModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(PickerModel)
	}
	return m
}

func testPresets() []*domain.Preset {
	return []*domain.Preset{
		domain.NewPreset("Adwaita"),
		domain.NewPreset("Catppuccin Mocha"),
		domain.NewPreset("Nord"),
	}
}

func TestPickerNavigation(t *testing.T) {
	m := NewPickerModel(testPresets(), domain.ModeLight, domain.AccentBlue)

	if got := m.Selected().Name; got != "Adwaita" {
		t.Fatalf("initial selection = %q, want Adwaita", got)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"), runes("j"))
	if got := m.Selected().Name; got != "Nord" {
		t.Errorf("after moving down = %q, want Nord (cursor stops at the end)", got)
	}

	m = press(t, m, runes("k"))
	if got := m.Selected().Name; got != "Catppuccin Mocha" {
		t.Errorf("after moving up = %q, want Catppuccin Mocha", got)
	}
}

func TestPickerModeAndAccent(t *testing.T) {
	m := NewPickerModel(testPresets(), domain.ModeLight, domain.AccentBlue)

	m = press(t, m, runes("m"))
	if m.mode != domain.ModeDark {
		t.Errorf("m should toggle to dark, got %s", m.mode)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != domain.ModeLight {
		t.Errorf("tab should toggle back to light, got %s", m.mode)
	}

	m = press(t, m, runes("a"), tea.KeyMsg{Type: tea.KeyRight})
	if m.accent != domain.AccentGreen {
		t.Errorf("two steps forward = %s, want green", m.accent)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if m.accent != domain.AccentSlate {
		t.Errorf("cycling back past blue = %s, want slate", m.accent)
	}
}

func TestPickerConfirmAndCancel(t *testing.T) {
	m := NewPickerModel(testPresets(), domain.ModeLight, domain.AccentBlue)
	m = press(t, m, runes("j"), runes("m"), runes("a"))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(PickerModel)
	if cmd == nil {
		t.Fatal("enter should quit the program")
	}

	sel, ok := m.Result()
	if !ok {
		t.Fatal("expected a confirmed selection")
	}
	if sel.Preset.Name != "Catppuccin Mocha" || sel.Mode != domain.ModeDark || sel.Accent != domain.AccentTeal {
		t.Errorf("selection = %s %s %s", sel.Preset.Name, sel.Mode, sel.Accent)
	}

	cancelled := press(t, NewPickerModel(testPresets(), domain.ModeLight, domain.AccentBlue), runes("q"))
	if _, ok := cancelled.Result(); ok {
		t.Error("quitting should not confirm a selection")
	}
	if got := cancelled.View(); got != "Selection cancelled.\n" {
		t.Errorf("cancelled view = %q", got)
	}
}

func TestPickerFilter(t *testing.T) {
	m := NewPickerModel(testPresets(), domain.ModeLight, domain.AccentBlue)

	m = press(t, m, runes("/"), runes("n"), runes("o"), runes("r"))
	if !m.filtering {
		t.Fatal("/ should start filtering")
	}
	if len(m.visible) != 1 || m.Selected().Name != "Nord" {
		t.Fatalf("filter \"nor\" matched %d presets", len(m.visible))
	}

	// keys typed while filtering do not toggle the mode
	m = press(t, m, runes("m"))
	if m.mode != domain.ModeLight {
		t.Error("typing m in the filter should not toggle mode")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.filtering || len(m.visible) != 3 {
		t.Errorf("esc should clear the filter, visible = %d", len(m.visible))
	}
}

func TestPickerEmptyFilterResult(t *testing.T) {
	m := NewPickerModel(testPresets(), domain.ModeLight, domain.AccentBlue)
	m = press(t, m, runes("/"), runes("zzz"), tea.KeyMsg{Type: tea.KeyEnter})

	if m.Selected() != nil {
		t.Fatal("no preset should be selected")
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("enter with nothing selected should not quit")
	}
	if _, ok := next.(PickerModel).Result(); ok {
		t.Error("no result expected")
	}
}

func TestPickerView(t *testing.T) {
	m := NewPickerModel(testPresets(), domain.ModeDark, domain.AccentRed)
	m = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	for _, want := range []string{"Presets", "Adwaita@0.0.1", "accent_color", "#78aeed", "accent red"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	small := press(t, m, tea.WindowSizeMsg{Width: 40, Height: 8})
	if !strings.Contains(small.View(), "Terminal too small") {
		t.Error("expected the too-small message")
	}
}
