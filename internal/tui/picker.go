package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"themesmith/internal/display"
	"themesmith/internal/domain"
	"themesmith/internal/fuzzy"
	"themesmith/internal/theme"
)

// previewSlots are the variables shown as swatches next to the list.
var previewSlots = []domain.VariableSlot{
	domain.AccentColor,
	domain.AccentBgColor,
	domain.WindowBgColor,
	domain.WindowFgColor,
	domain.ViewBgColor,
	domain.HeaderbarBgColor,
	domain.CardBgColor,
	domain.SidebarBgColor,
	domain.SuccessColor,
	domain.WarningColor,
	domain.ErrorColor,
	domain.DestructiveColor,
}

// Selection is the preset, mode and accent confirmed in the picker.
type Selection struct {
	Preset *domain.Preset
	Mode   domain.Mode
	Accent domain.Accent
}

// PickerModel lists presets with a live preview of the chosen mode and accent.
type PickerModel struct {
	presets   []*domain.Preset
	visible   []int
	cursor    int
	mode      domain.Mode
	accent    domain.Accent
	filter    textinput.Model
	filtering bool
	keys      keyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
	confirmed bool
}

func NewPickerModel(presets []*domain.Preset, mode domain.Mode, accent domain.Accent) PickerModel {
	filter := textinput.New()
	filter.Placeholder = "filter presets"
	filter.Prompt = "/ "
	filter.CharLimit = 100

	m := PickerModel{
		presets: presets,
		mode:    mode,
		accent:  accent,
		filter:  filter,
		keys:    defaultKeyMap(),
		help:    help.New(),
		width:   100,
		height:  30,
	}
	m.applyFilter()
	return m
}

func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted preset, or nil when none is visible.
func (m PickerModel) Selected() *domain.Preset {
	if len(m.visible) == 0 {
		return nil
	}
	return m.presets[m.visible[m.cursor]]
}

// Result reports the confirmed selection.
func (m PickerModel) Result() (*Selection, bool) {
	p := m.Selected()
	if !m.confirmed || p == nil {
		return nil, false
	}
	return &Selection{Preset: p, Mode: m.mode, Accent: m.accent}, true
}

func (m *PickerModel) applyFilter() {
	visible := make([]int, 0, len(m.presets))
	query := m.filter.Value()
	if strings.TrimSpace(query) == "" {
		for i := range m.presets {
			visible = append(visible, i)
		}
	} else {
		names := make([]string, len(m.presets))
		for i, p := range m.presets {
			names[i] = p.Name
		}
		for _, match := range fuzzy.MatchMany(query, names, 0) {
			visible = append(visible, match.Index)
		}
	}
	m.visible = visible
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.ToggleMode):
			if m.mode == domain.ModeLight {
				m.mode = domain.ModeDark
			} else {
				m.mode = domain.ModeLight
			}
			return m, nil

		case key.Matches(msg, m.keys.NextAccent):
			m.accent = cycleAccent(m.accent, 1)
			return m, nil

		case key.Matches(msg, m.keys.PrevAccent):
			m.accent = cycleAccent(m.accent, -1)
			return m, nil

		case key.Matches(msg, m.keys.Filter):
			m.filtering = true
			return m, m.filter.Focus()

		case key.Matches(msg, m.keys.ClearFilter):
			m.filter.SetValue("")
			m.applyFilter()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Confirm):
			if m.Selected() == nil {
				return m, nil
			}
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m PickerModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()
		return m, nil
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func cycleAccent(a domain.Accent, step int) domain.Accent {
	n := len(domain.Accents())
	return domain.Accent(((int(a)+step)%n + n) % n)
}

// currentTheme styles the picker itself in the colours of the highlighted
// preset, falling back to the built-in theme when it does not resolve.
func (m PickerModel) currentTheme() *theme.Theme {
	if p := m.Selected(); p != nil {
		if t, err := theme.ForPreset(p, m.mode, m.accent); err == nil {
			return t
		}
	}
	return theme.DefaultTheme()
}

func (m PickerModel) View() string {
	if m.quitting {
		if m.confirmed {
			return ""
		}
		return "Selection cancelled.\n"
	}

	if m.width < 60 || m.height < 10 {
		return "Terminal too small. Please resize and try again.\n"
	}

	t := m.currentTheme()
	styles := theme.NewStyles(t)

	leftWidth := max(m.width/3, 30)
	rightWidth := max(m.width-leftWidth-4, 30)

	panel := lipgloss.NewStyle().
		Height(m.height - 6).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.BorderColor)).
		Padding(1)

	left := panel.Width(leftWidth).Render(m.renderList(styles, t, leftWidth))
	right := panel.Width(rightWidth).Render(m.renderPreview(styles, t))
	main := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	header := styles.TUITitle.Render("themesmith")
	subtitle := styles.TUISubtitle.Render(fmt.Sprintf("%s %s • accent %s",
		display.GetModeIcon(m.mode), m.mode, m.accent))

	footer := m.help.View(m.keys)
	if m.filtering || m.filter.Value() != "" {
		footer = m.filter.View() + "\n" + footer
	}

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s", header, subtitle, main, footer)
}

func (m PickerModel) renderList(styles *theme.Styles, t *theme.Theme, width int) string {
	var b strings.Builder

	b.WriteString(styles.DetailLabel.Render("Presets"))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(styles.Muted.Render("no presets match"))
		return b.String()
	}

	for i, idx := range m.visible {
		p := m.presets[idx]
		line := "  " + display.Truncate(p.Name, width-8)
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.TextSecondary)).
			Width(width - 4)
		if i == m.cursor {
			line = "▶ " + display.Truncate(p.Name, width-8)
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color(t.SelectedFg)).
				Background(lipgloss.Color(t.SelectedBg)).
				Bold(true).
				Width(width - 4)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func (m PickerModel) renderPreview(styles *theme.Styles, t *theme.Theme) string {
	p := m.Selected()
	if p == nil {
		return styles.Muted.Render("nothing selected")
	}

	var b strings.Builder
	b.WriteString(styles.DetailLabel.Render(p.Label()))
	b.WriteString("\n")
	if p.Description != "" {
		b.WriteString(styles.Subtitle.Render(p.Description))
		b.WriteString("\n")
	}
	b.WriteString(styles.Muted.Render("by " + p.Author.Name + " • " + display.FormatSupport(p.Supported)))
	b.WriteString("\n\n")

	if !p.Supports(m.mode, m.accent) {
		b.WriteString(styles.Warning.Render(fmt.Sprintf("does not declare support for %s/%s", m.mode, m.accent)))
		b.WriteString("\n\n")
	}

	swatches, err := theme.Swatches(p, m.mode, m.accent)
	if err != nil {
		b.WriteString(styles.Error.Render(err.Error()))
		return b.String()
	}

	bySlug := make(map[string]theme.Swatch, len(swatches))
	for _, s := range swatches {
		bySlug[s.Slug] = s
	}
	for _, slot := range previewSlots {
		s := bySlug[slot.Slug()]
		fmt.Fprintf(&b, "%s %s %s\n",
			theme.SwatchBlock(s.Hex),
			styles.DetailValue.Render(fmt.Sprintf("%-20s", s.Slug)),
			styles.Muted.Render(s.Value))
	}

	return b.String()
}

// Run shows the picker and returns the confirmed selection, or nil when the
// user cancels.
func Run(presets []*domain.Preset, mode domain.Mode, accent domain.Accent) (*Selection, error) {
	final, err := tea.NewProgram(NewPickerModel(presets, mode, accent), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run picker: %w", err)
	}

	sel, ok := final.(PickerModel).Result()
	if !ok {
		return nil, nil
	}
	return sel, nil
}
