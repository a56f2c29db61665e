package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultPresetVersion = "0.0.1"
	DefaultAuthorName    = "Anonymous"
)

type License string

const (
	LicenseGPL3     License = "GPL3"
	LicenseMIT      License = "MIT"
	LicenseApache2  License = "Apache2"
	LicenseBSD      License = "BSD"
	LicenseLGPL3    License = "LGPL3"
	LicenseAGPL3    License = "AGPL3"
	LicenseMPL2     License = "MPL2"
	LicenseCC0      License = "CC0"
	LicenseCCBY     License = "CCBY"
	LicenseCCBYSA   License = "CCBYSA"
	LicenseCCBYNC   License = "CCBYNC"
	LicenseCCBYNCSA License = "CCBYNCSA"
	LicenseCCBYND   License = "CCBYND"
	LicenseCCBYNCND License = "CCBYNCND"
)

func Licenses() []License {
	return []License{
		LicenseGPL3, LicenseMIT, LicenseApache2, LicenseBSD, LicenseLGPL3, LicenseAGPL3, LicenseMPL2,
		LicenseCC0, LicenseCCBY, LicenseCCBYSA, LicenseCCBYNC, LicenseCCBYNCSA, LicenseCCBYND, LicenseCCBYNCND,
	}
}

func (l License) IsValid() bool {
	for _, known := range Licenses() {
		if l == known {
			return true
		}
	}
	return false
}

type Author struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	URL   string `json:"url,omitempty"`
}

// Supported records the platform versions a preset was written against.
// Empty Modes or Accents means every value is supported.
type Supported struct {
	Gnome   string   `json:"gnome"`
	Adw     string   `json:"adw"`
	GTK     string   `json:"gtk"`
	Modes   []string `json:"modes,omitempty"`
	Accents []string `json:"accents,omitempty"`
}

func DefaultSupported() Supported {
	return Supported{Gnome: ">46", Adw: ">1.5", GTK: ">3.24"}
}

// Custom holds raw stylesheet fragments prepended to generated output.
type Custom struct {
	Gtk4  string `json:"gtk4"`
	Gtk3  string `json:"gtk3"`
	Shell string `json:"shell"`
}

func (c Custom) ForGTK(version GTKVersion) string {
	if version == GTK3 {
		return c.Gtk3
	}
	return c.Gtk4
}

type Preset struct {
	Name        string        `json:"name"`
	Version     string        `json:"version"`
	Author      Author        `json:"author"`
	Description string        `json:"description,omitempty"`
	Supported   Supported     `json:"supported"`
	License     License       `json:"license"`
	Variables   Variables     `json:"variables"`
	Palette     Palette       `json:"palette"`
	Custom      Custom        `json:"custom"`
	Shell       ShellDefaults `json:"shell"`
}

func NewPreset(name string) *Preset {
	return &Preset{
		Name:      name,
		Version:   DefaultPresetVersion,
		Author:    Author{Name: DefaultAuthorName},
		Supported: DefaultSupported(),
		License:   LicenseGPL3,
		Variables: DefaultVariables(),
		Palette:   DefaultPalette(),
		Shell:     DefaultShell(),
	}
}

// Label is the "name@version" form used in headers and listings.
func (p *Preset) Label() string {
	return p.Name + "@" + p.Version
}

// Supports reports whether the preset declares support for mode and accent.
func (p *Preset) Supports(mode Mode, accent Accent) bool {
	return listed(p.Supported.Modes, mode.String()) && listed(p.Supported.Accents, accent.String())
}

func listed(values []string, want string) bool {
	if len(values) == 0 {
		return true
	}
	for _, v := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

func (p *Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("preset name cannot be empty")
	}

	if len(p.Name) > 100 {
		return errors.New("preset name cannot exceed 100 characters")
	}

	if !p.License.IsValid() {
		return fmt.Errorf("invalid license %q", p.License)
	}

	for _, m := range p.Supported.Modes {
		if _, err := ParseMode(m); err != nil {
			return fmt.Errorf("supported modes: %w", err)
		}
	}

	for _, a := range p.Supported.Accents {
		if _, err := ParseAccent(a); err != nil {
			return fmt.Errorf("supported accents: %w", err)
		}
	}

	if err := p.Variables.Validate(); err != nil {
		return fmt.Errorf("variables.%w", err)
	}

	if err := p.Shell.Validate(); err != nil {
		return fmt.Errorf("shell.%w", err)
	}

	return nil
}

func (p *Preset) UnmarshalJSON(data []byte) error {
	type document Preset
	doc := document(*NewPreset(""))
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	// older documents name the fragment block custom_css
	var legacy struct {
		Custom    json.RawMessage `json:"custom"`
		CustomCSS *Custom         `json:"custom_css"`
	}
	if err := json.Unmarshal(data, &legacy); err != nil {
		return err
	}
	if legacy.Custom == nil && legacy.CustomCSS != nil {
		doc.Custom = *legacy.CustomCSS
	}

	*p = Preset(doc)
	return nil
}
