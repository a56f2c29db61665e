package theme

import (
	"themesmith/internal/domain"
)

const builtinPreset = "adwaita"

func predefinedName(mode domain.Mode) string {
	return builtinPreset + "-" + mode.String()
}

// GetPredefinedThemes derives one theme per mode from the built-in variable
// values with the blue accent.
func GetPredefinedThemes() map[string]*Theme {
	themes := make(map[string]*Theme)
	for _, mode := range domain.Modes() {
		t := builtinTheme(mode)
		themes[t.Name] = t
	}
	return themes
}

func DefaultTheme() *Theme {
	return builtinTheme(domain.ModeDark)
}

func builtinTheme(mode domain.Mode) *Theme {
	t, err := FromPreset(domain.NewPreset(builtinPreset), mode, domain.AccentBlue)
	if err != nil {
		// built-in values always resolve
		panic(err)
	}
	t.Name = predefinedName(mode)
	return t
}
