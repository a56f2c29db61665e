package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrMissingDefaultKey = errors.New("missing \"default\" key")
	ErrUnknownVariable   = errors.New("unknown variable shape")
)

// DefaultKey is the fallback entry every ByModeAccent map must carry.
const DefaultKey = "default"

// Variable is a colour value that resolves to a concrete string for a
// (mode, accent) pair. The set of implementations is closed: Single,
// ByMode, ByAccent and ByModeAccent.
type Variable interface {
	isVariable()
}

// Single is a constant that ignores mode and accent.
type Single string

// ByMode selects by display mode only.
type ByMode struct {
	Light string `json:"light"`
	Dark  string `json:"dark"`
}

// ByAccent selects by accent. Empty accent fields fall back to Default.
type ByAccent struct {
	Blue    string `json:"blue,omitempty"`
	Green   string `json:"green,omitempty"`
	Red     string `json:"red,omitempty"`
	Yellow  string `json:"yellow,omitempty"`
	Purple  string `json:"purple,omitempty"`
	Pink    string `json:"pink,omitempty"`
	Orange  string `json:"orange,omitempty"`
	Slate   string `json:"slate,omitempty"`
	Teal    string `json:"teal,omitempty"`
	Default string `json:"default"`
}

// ByModeAccent selects a per-mode map, then the accent entry inside it.
// Both maps must contain DefaultKey.
type ByModeAccent struct {
	Light map[string]string `json:"light"`
	Dark  map[string]string `json:"dark"`
}

func (Single) isVariable()       {}
func (ByMode) isVariable()       {}
func (ByAccent) isVariable()     {}
func (ByModeAccent) isVariable() {}

// Resolve returns the concrete colour of v for mode and accent.
func Resolve(v Variable, mode Mode, accent Accent) (string, error) {
	switch v := v.(type) {
	case Single:
		return string(v), nil
	case ByMode:
		if mode == ModeDark {
			return v.Dark, nil
		}
		return v.Light, nil
	case ByAccent:
		if value := v.field(accent); value != "" {
			return value, nil
		}
		return v.Default, nil
	case ByModeAccent:
		values := v.Light
		if mode == ModeDark {
			values = v.Dark
		}
		if value, ok := values[accent.String()]; ok {
			return value, nil
		}
		if value, ok := values[DefaultKey]; ok {
			return value, nil
		}
		return "", fmt.Errorf("%w in %s map", ErrMissingDefaultKey, mode)
	default:
		return "", fmt.Errorf("%w: %T", ErrUnknownVariable, v)
	}
}

func (v ByAccent) field(accent Accent) string {
	switch accent {
	case AccentBlue:
		return v.Blue
	case AccentTeal:
		return v.Teal
	case AccentGreen:
		return v.Green
	case AccentYellow:
		return v.Yellow
	case AccentOrange:
		return v.Orange
	case AccentRed:
		return v.Red
	case AccentPink:
		return v.Pink
	case AccentPurple:
		return v.Purple
	case AccentSlate:
		return v.Slate
	default:
		return ""
	}
}

// checkDefaults reports ErrMissingDefaultKey for a ByModeAccent lacking a
// fallback in either map. Other shapes always pass.
func checkDefaults(v Variable) error {
	ma, ok := v.(ByModeAccent)
	if !ok {
		return nil
	}
	if _, ok := ma.Light[DefaultKey]; !ok {
		return fmt.Errorf("%w in light map", ErrMissingDefaultKey)
	}
	if _, ok := ma.Dark[DefaultKey]; !ok {
		return fmt.Errorf("%w in dark map", ErrMissingDefaultKey)
	}
	return nil
}

func marshalVariable(v Variable) ([]byte, error) {
	switch v := v.(type) {
	case Single:
		return json.Marshal(string(v))
	case ByMode, ByAccent, ByModeAccent:
		return json.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownVariable, v)
	}
}

// decodeVariable probes the raw JSON in the same order the preset format
// defines: string, {light,dark} strings, {default,...} accents, then
// {light,dark} maps.
func decodeVariable(raw json.RawMessage) (Variable, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty value", ErrUnknownVariable)
	}

	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return Single(s), nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, string(raw))
	}

	light, hasLight := fields["light"]
	dark, hasDark := fields["dark"]
	if hasLight && hasDark {
		var m ByMode
		if json.Unmarshal(light, &m.Light) == nil && json.Unmarshal(dark, &m.Dark) == nil {
			return m, nil
		}
	}

	if _, ok := fields[DefaultKey]; ok {
		var a ByAccent
		if err := json.Unmarshal(raw, &a); err == nil {
			return a, nil
		}
	}

	if hasLight && hasDark {
		var ma ByModeAccent
		if json.Unmarshal(light, &ma.Light) == nil && json.Unmarshal(dark, &ma.Dark) == nil {
			return ma, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, string(raw))
}
