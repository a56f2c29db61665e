package theme

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themesmith/internal/domain"
)

func TestFromPreset(t *testing.T) {
	p := domain.NewPreset("Adwaita")

	t.Run("dark", func(t *testing.T) {
		th, err := FromPreset(p, domain.ModeDark, domain.AccentBlue)
		require.NoError(t, err)
		assert.Equal(t, "#78aeed", th.Primary)
		assert.Equal(t, "#242424", th.BgPrimary)
		assert.Equal(t, "#1e1e1e", th.BgSecondary)
		assert.Equal(t, "#ffffff", th.TextPrimary)
		assert.Equal(t, "#3584e4", th.SelectedBg)
		assert.Equal(t, "#303030", th.HeaderBg)
	})

	t.Run("light composites translucent text", func(t *testing.T) {
		th, err := FromPreset(p, domain.ModeLight, domain.AccentBlue)
		require.NoError(t, err)
		assert.Equal(t, "#3584e4", th.Primary)
		assert.Equal(t, "#fafafa", th.BgPrimary)
		assert.Equal(t, "#323232", th.TextPrimary)
	})

	t.Run("accent variable", func(t *testing.T) {
		custom := domain.NewPreset("Accented")
		custom.Variables.Set(domain.AccentColor, domain.ByAccent{Red: "#ff0000", Default: "#00ff00"})

		red, err := FromPreset(custom, domain.ModeDark, domain.AccentRed)
		require.NoError(t, err)
		assert.Equal(t, "#ff0000", red.Primary)

		teal, err := FromPreset(custom, domain.ModeDark, domain.AccentTeal)
		require.NoError(t, err)
		assert.Equal(t, "#00ff00", teal.Primary)
	})

	t.Run("resolution error", func(t *testing.T) {
		broken := domain.NewPreset("Broken")
		broken.Variables.Set(domain.AccentColor, domain.ByModeAccent{
			Light: map[string]string{},
			Dark:  map[string]string{},
		})
		_, err := FromPreset(broken, domain.ModeDark, domain.AccentBlue)
		assert.ErrorIs(t, err, domain.ErrMissingDefaultKey)
	})
}

func TestParseColor(t *testing.T) {
	white := colorful.Color{R: 1, G: 1, B: 1}
	lookup := func(name string) (string, bool) {
		refs := map[string]string{
			"window_bg_color": "#123456",
			"loop":            "@loop",
		}
		v, ok := refs[name]
		return v, ok
	}

	tests := []struct {
		value string
		want  string
		ok    bool
	}{
		{"#ff0000", "#ff0000", true},
		{"#fff", "#ffffff", true},
		{"rgb(0, 128, 255)", "#0080ff", true},
		{"rgba(255, 0, 0, 0.5)", "#ff8080", true},
		{"@window_bg_color", "#123456", true},
		{"@missing", "", false},
		{"@loop", "", false},
		{"transparent", "", false},
		{"rgba(1, 2)", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			c, ok := parseColor(tt.value, white, lookup)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, c.Clamped().Hex())
			}
		})
	}
}

func TestSwatches(t *testing.T) {
	swatches, err := Swatches(domain.NewPreset("Adwaita"), domain.ModeDark, domain.AccentBlue)
	require.NoError(t, err)
	require.Len(t, swatches, len(domain.VariableSlots()))

	assert.Equal(t, Swatch{Slug: "accent_color", Value: "#78aeed", Hex: "#78aeed"}, swatches[0])

	for _, s := range swatches {
		if s.Slug == "headerbar_backdrop_color" {
			assert.Equal(t, "@window_bg_color", s.Value)
			assert.Equal(t, "#242424", s.Hex)
		}
	}
}

func TestManager(t *testing.T) {
	m := NewManager()

	assert.Equal(t, []string{"adwaita-dark", "adwaita-light"}, m.ListThemes())
	assert.True(t, m.ThemeExists("adwaita-light"))

	_, err := m.GetTheme("dracula")
	assert.ErrorIs(t, err, ErrThemeNotFound)

	assert.Equal(t, "#fafafa", m.ForMode(domain.ModeLight).BgPrimary)
	assert.Equal(t, "adwaita-dark", DefaultTheme().Name)

	p := domain.NewPreset("Cached")
	first, err := m.ForPreset(p, domain.ModeDark, domain.AccentBlue)
	require.NoError(t, err)
	second, err := m.ForPreset(p, domain.ModeDark, domain.AccentBlue)
	require.NoError(t, err)
	assert.Same(t, first, second)

	light, err := m.ForPreset(p, domain.ModeLight, domain.AccentBlue)
	require.NoError(t, err)
	assert.NotSame(t, first, light)
}

func TestNewStyles(t *testing.T) {
	s := NewStyles(DefaultTheme())
	assert.NotEmpty(t, s.Title.Render("title"))
	assert.Equal(t, "  ", SwatchBlock(""))
}
