package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPreset(t *testing.T) {
	p := NewPreset("Test")

	assert.Equal(t, "Test", p.Name)
	assert.Equal(t, "0.0.1", p.Version)
	assert.Equal(t, "Anonymous", p.Author.Name)
	assert.Equal(t, ">46", p.Supported.Gnome)
	assert.Equal(t, ">1.5", p.Supported.Adw)
	assert.Equal(t, ">3.24", p.Supported.GTK)
	assert.Equal(t, LicenseGPL3, p.License)
	assert.Equal(t, "Test@0.0.1", p.Label())
	assert.NoError(t, p.Validate())
}

func TestPresetValidate(t *testing.T) {
	missingDefault := ByModeAccent{
		Light: map[string]string{"default": "#fff"},
		Dark:  map[string]string{"red": "#f00"},
	}

	tests := []struct {
		name    string
		modify  func(p *Preset)
		errMsg  string
		errKind error
	}{
		{name: "valid", modify: func(p *Preset) {}},
		{name: "empty name", modify: func(p *Preset) { p.Name = "  " }, errMsg: "preset name cannot be empty"},
		{name: "name too long", modify: func(p *Preset) { p.Name = strings.Repeat("a", 101) }, errMsg: "preset name cannot exceed 100 characters"},
		{name: "unknown license", modify: func(p *Preset) { p.License = "WTFPL" }, errMsg: "invalid license"},
		{name: "unknown supported accent", modify: func(p *Preset) { p.Supported.Accents = []string{"magenta"} }, errKind: ErrInvalidAccent},
		{
			name:    "variable missing default",
			modify:  func(p *Preset) { p.Variables.Set(ViewBgColor, missingDefault) },
			errMsg:  "variables.view_bg_color",
			errKind: ErrMissingDefaultKey,
		},
		{
			name:    "shell missing default",
			modify:  func(p *Preset) { p.Shell.Set(ShellOsdBgColor, missingDefault) },
			errMsg:  "shell.osd_bg_color",
			errKind: ErrMissingDefaultKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPreset("Test")
			tt.modify(p)

			err := p.Validate()
			if tt.errMsg == "" && tt.errKind == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
			if tt.errKind != nil {
				assert.ErrorIs(t, err, tt.errKind)
			}
		})
	}
}

func TestPresetUnmarshalDefaults(t *testing.T) {
	var p Preset
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Minimal","author":{"email":"a@b.c"}}`), &p))

	assert.Equal(t, "Minimal", p.Name)
	assert.Equal(t, "0.0.1", p.Version)
	assert.Equal(t, "Anonymous", p.Author.Name)
	assert.Equal(t, "a@b.c", p.Author.Email)
	assert.Equal(t, LicenseGPL3, p.License)
	assert.Equal(t, ByMode{Light: "#3584e4", Dark: "#78aeed"}, p.Variables.Get(AccentColor))
	assert.Len(t, p.Palette.Shades(FamilyBlue), 5)
}

func TestPresetCustomAlias(t *testing.T) {
	var p Preset
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Old","custom_css":{"gtk4":"a","gtk3":"b","shell":"c"}}`), &p))
	assert.Equal(t, Custom{Gtk4: "a", Gtk3: "b", Shell: "c"}, p.Custom)
	assert.Equal(t, "b", p.Custom.ForGTK(GTK3))
	assert.Equal(t, "a", p.Custom.ForGTK(GTK4))

	require.NoError(t, json.Unmarshal([]byte(`{"name":"New","custom":{"gtk4":"x"},"custom_css":{"gtk4":"y"}}`), &p))
	assert.Equal(t, "x", p.Custom.Gtk4)
}

func TestPresetSupports(t *testing.T) {
	p := NewPreset("Test")
	assert.True(t, p.Supports(ModeDark, AccentSlate))

	p.Supported.Modes = []string{"dark"}
	p.Supported.Accents = []string{"blue", "red"}
	assert.True(t, p.Supports(ModeDark, AccentRed))
	assert.False(t, p.Supports(ModeLight, AccentRed))
	assert.False(t, p.Supports(ModeDark, AccentTeal))
}
