package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateFamily is returned when a palette names a family twice.
var ErrDuplicateFamily = errors.New("duplicate palette family")

// Family is a named palette colour family.
type Family int

const (
	FamilyBlue Family = iota
	FamilyGreen
	FamilyYellow
	FamilyOrange
	FamilyRed
	FamilyPurple
	FamilyBrown
	FamilyLight
	FamilyDark

	familyCount
)

var familyNames = [familyCount]string{
	FamilyBlue:   "blue",
	FamilyGreen:  "green",
	FamilyYellow: "yellow",
	FamilyOrange: "orange",
	FamilyRed:    "red",
	FamilyPurple: "purple",
	FamilyBrown:  "brown",
	FamilyLight:  "light",
	FamilyDark:   "dark",
}

var defaultPalette = [familyCount][]string{
	FamilyBlue:   {"#99c1f1", "#62a0ea", "#3584e4", "#1c71d8", "#1a5fb4"},
	FamilyGreen:  {"#8ff0a4", "#57e389", "#33d17a", "#2ec27e", "#26a269"},
	FamilyYellow: {"#f9f06b", "#f8e45c", "#f6d32d", "#f5c211", "#e5a50a"},
	FamilyOrange: {"#ffbe6f", "#ffa348", "#ff7800", "#e66100", "#c64600"},
	FamilyRed:    {"#f66151", "#ed333b", "#e01b24", "#c01c28", "#a51d2d"},
	FamilyPurple: {"#dc8add", "#c061cb", "#9141ac", "#813d9c", "#613583"},
	FamilyBrown:  {"#cdab8f", "#b5835a", "#986a44", "#865e3c", "#63452c"},
	FamilyLight:  {"#ffffff", "#f6f5f4", "#deddda", "#c0bfbc", "#9a9996"},
	FamilyDark:   {"#77767b", "#5e5c64", "#3d3846", "#241f31", "#000000"},
}

func (f Family) String() string {
	if f < 0 || f >= familyCount {
		return ""
	}
	return familyNames[f]
}

// Families returns every family in emission order.
func Families() []Family {
	families := make([]Family, familyCount)
	for i := range families {
		families[i] = Family(i)
	}
	return families
}

// familyByKey accepts both "blue" and the legacy "blue_" spelling.
func familyByKey(key string) (Family, bool) {
	key = strings.TrimSuffix(key, "_")
	for i, name := range familyNames {
		if name == key {
			return Family(i), true
		}
	}
	return 0, false
}

// Shade is a single palette entry.
type Shade struct {
	Name  string
	Value string
}

// PaletteEntry is a flattened palette colour named "<family>_<shade>".
type PaletteEntry struct {
	Name  string
	Value string
}

// Palette maps each family to its shades.
type Palette struct {
	families [familyCount]map[string]string
}

func DefaultPalette() Palette {
	var p Palette
	for f := Family(0); f < familyCount; f++ {
		p.families[f] = defaultFamily(f)
	}
	return p
}

func defaultFamily(f Family) map[string]string {
	shades := make(map[string]string, len(defaultPalette[f]))
	for i, value := range defaultPalette[f] {
		shades[fmt.Sprint(i+1)] = value
	}
	return shades
}

// Family returns a copy of the shades of f.
func (p *Palette) Family(f Family) map[string]string {
	if f < 0 || f >= familyCount {
		return nil
	}
	src := p.families[f]
	if src == nil {
		src = defaultFamily(f)
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

func (p *Palette) SetFamily(f Family, shades map[string]string) {
	if f < 0 || f >= familyCount {
		return
	}
	p.families[f] = shades
}

// Shades returns the shades of f sorted by shade name.
func (p *Palette) Shades(f Family) []Shade {
	shades := p.Family(f)
	names := make([]string, 0, len(shades))
	for name := range shades {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Shade, len(names))
	for i, name := range names {
		out[i] = Shade{Name: name, Value: shades[name]}
	}
	return out
}

// Entries flattens the palette in family order, then sorted shade order.
func (p *Palette) Entries() []PaletteEntry {
	var entries []PaletteEntry
	for f := Family(0); f < familyCount; f++ {
		for _, shade := range p.Shades(f) {
			entries = append(entries, PaletteEntry{
				Name:  f.String() + "_" + shade.Name,
				Value: shade.Value,
			})
		}
	}
	return entries
}

func (p Palette) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for f := Family(0); f < familyCount; f++ {
		if f > 0 {
			buf.WriteByte(',')
		}
		data, err := json.Marshal(p.Family(f))
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%q:", f.String())
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON ignores unknown keys. A family given under both its name and
// its legacy alias is rejected.
func (p *Palette) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*p = DefaultPalette()
	seen := make(map[Family]string, len(fields))
	for key, raw := range fields {
		f, ok := familyByKey(key)
		if !ok {
			continue
		}
		if other, dup := seen[f]; dup {
			first, second := other, key
			if second < first {
				first, second = second, first
			}
			return fmt.Errorf("%w: %q and %q", ErrDuplicateFamily, first, second)
		}
		seen[f] = key

		var shades map[string]string
		if err := json.Unmarshal(raw, &shades); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if shades == nil {
			shades = map[string]string{}
		}
		p.families[f] = shades
	}
	return nil
}
