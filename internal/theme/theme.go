package theme

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"themesmith/internal/domain"
)

// Theme holds the terminal colours used by the CLI and TUI, all as #rrggbb.
type Theme struct {
	Name string

	// semantic
	Primary   string
	Secondary string
	Success   string
	Error     string
	Warning   string

	// text
	TextPrimary   string
	TextSecondary string
	TextMuted     string

	// background
	BgPrimary   string
	BgSecondary string

	// UI element
	BorderColor string
	SelectedBg  string
	SelectedFg  string
	HeaderBg    string
	HeaderFg    string
	Separator   string
	HelpText    string
}

// FromPreset derives a terminal theme from the resolved variables of p.
func FromPreset(p *domain.Preset, mode domain.Mode, accent domain.Accent) (*Theme, error) {
	resolved, err := resolveVariables(p, mode, accent)
	if err != nil {
		return nil, err
	}

	lookup := lookupIn(resolved)
	bg := windowBackground(resolved, mode)
	fg, ok := parseColor(resolved[domain.WindowFgColor.Slug()], bg, lookup)
	if !ok {
		fg = colorful.Color{R: 1 - bg.R, G: 1 - bg.G, B: 1 - bg.B}
	}

	hex := func(slot domain.VariableSlot) string {
		c, ok := parseColor(resolved[slot.Slug()], bg, lookup)
		if !ok {
			return fg.Hex()
		}
		return c.Clamped().Hex()
	}
	mix := func(t float64) string {
		return bg.BlendRgb(fg, t).Clamped().Hex()
	}

	return &Theme{
		Name: fmt.Sprintf("%s %s/%s", p.Label(), mode, accent),

		Primary:   hex(domain.AccentColor),
		Secondary: hex(domain.AccentBgColor),
		Success:   hex(domain.SuccessColor),
		Error:     hex(domain.ErrorColor),
		Warning:   hex(domain.WarningColor),

		TextPrimary:   fg.Clamped().Hex(),
		TextSecondary: mix(0.7),
		TextMuted:     mix(0.5),

		BgPrimary:   bg.Clamped().Hex(),
		BgSecondary: hex(domain.ViewBgColor),

		BorderColor: hex(domain.AccentColor),
		SelectedBg:  hex(domain.AccentBgColor),
		SelectedFg:  hex(domain.AccentFgColor),
		HeaderBg:    hex(domain.HeaderbarBgColor),
		HeaderFg:    hex(domain.HeaderbarFgColor),
		Separator:   mix(0.15),
		HelpText:    mix(0.5),
	}, nil
}

func resolveVariables(p *domain.Preset, mode domain.Mode, accent domain.Accent) (map[string]string, error) {
	resolved := make(map[string]string)
	var resolveErr error
	p.Variables.Each(func(slot domain.VariableSlot, v domain.Variable) {
		if resolveErr != nil {
			return
		}
		value, err := domain.Resolve(v, mode, accent)
		if err != nil {
			resolveErr = fmt.Errorf("failed to resolve %s: %w", slot.Slug(), err)
			return
		}
		resolved[slot.Slug()] = value
	})
	for _, e := range p.Palette.Entries() {
		resolved[e.Name] = e.Value
	}
	return resolved, resolveErr
}

func lookupIn(resolved map[string]string) func(string) (string, bool) {
	return func(slug string) (string, bool) {
		v, ok := resolved[slug]
		return v, ok
	}
}

// windowBackground is the opaque backdrop translucent colours are composited
// over: the window background, or white/black for the mode.
func windowBackground(resolved map[string]string, mode domain.Mode) colorful.Color {
	base := colorful.Color{R: 1, G: 1, B: 1}
	if mode == domain.ModeDark {
		base = colorful.Color{}
	}
	if bg, ok := parseColor(resolved[domain.WindowBgColor.Slug()], base, lookupIn(resolved)); ok {
		return bg
	}
	return base
}

// Swatch is one resolved variable with its terminal approximation.
type Swatch struct {
	Slug  string
	Value string
	Hex   string
}

// Swatches resolves every variable of p. Hex is empty when the value is not
// a colour the terminal can show.
func Swatches(p *domain.Preset, mode domain.Mode, accent domain.Accent) ([]Swatch, error) {
	resolved, err := resolveVariables(p, mode, accent)
	if err != nil {
		return nil, err
	}
	lookup := lookupIn(resolved)
	bg := windowBackground(resolved, mode)

	swatches := make([]Swatch, 0, len(domain.VariableSlots()))
	for _, slot := range domain.VariableSlots() {
		s := Swatch{Slug: slot.Slug(), Value: resolved[slot.Slug()]}
		if c, ok := parseColor(s.Value, bg, lookup); ok {
			s.Hex = c.Clamped().Hex()
		}
		swatches = append(swatches, s)
	}
	return swatches, nil
}
