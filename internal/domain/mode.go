package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidMode   = errors.New("invalid mode")
	ErrInvalidAccent = errors.New("invalid accent")
)

// Mode is the display mode a preset is resolved for.
type Mode int

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	if m == ModeDark {
		return "dark"
	}
	return "light"
}

// Title returns the capitalised name used in generated theme directory names.
func (m Mode) Title() string {
	return titleCase(m.String())
}

func Modes() []Mode {
	return []Mode{ModeLight, ModeDark}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	default:
		return ModeLight, fmt.Errorf("%w: %q (must be light or dark)", ErrInvalidMode, s)
	}
}

// Accent is one of the nine accent colours a preset can be resolved for.
type Accent int

const (
	AccentBlue Accent = iota
	AccentTeal
	AccentGreen
	AccentYellow
	AccentOrange
	AccentRed
	AccentPink
	AccentPurple
	AccentSlate
)

var accentNames = [...]string{
	AccentBlue:   "blue",
	AccentTeal:   "teal",
	AccentGreen:  "green",
	AccentYellow: "yellow",
	AccentOrange: "orange",
	AccentRed:    "red",
	AccentPink:   "pink",
	AccentPurple: "purple",
	AccentSlate:  "slate",
}

func (a Accent) String() string {
	if a < 0 || int(a) >= len(accentNames) {
		return "blue"
	}
	return accentNames[a]
}

func (a Accent) Title() string {
	return titleCase(a.String())
}

// Accents returns every accent in canonical order.
func Accents() []Accent {
	accents := make([]Accent, len(accentNames))
	for i := range accentNames {
		accents[i] = Accent(i)
	}
	return accents
}

func AccentNames() []string {
	return append([]string(nil), accentNames[:]...)
}

func ParseAccent(s string) (Accent, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range accentNames {
		if n == name {
			return Accent(i), nil
		}
	}
	return AccentBlue, fmt.Errorf("%w: %q (must be one of %s)", ErrInvalidAccent, s, strings.Join(accentNames[:], ", "))
}

// GTKVersion selects which custom fragment heads a generated stylesheet.
type GTKVersion int

const (
	GTK3 GTKVersion = iota + 3
	GTK4
)

func (v GTKVersion) String() string {
	if v == GTK3 {
		return "gtk3"
	}
	return "gtk4"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
