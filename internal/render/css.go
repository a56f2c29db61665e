// Package render turns presets into stylesheet text.
package render

import (
	"fmt"
	"strings"

	"themesmith/internal/domain"
)

// CSS emits the @define-color sheet of p for one GTK version. The custom
// fragment for that version comes first, then a provenance header, every
// variable slot in registry order and finally the palette.
func CSS(p *domain.Preset, mode domain.Mode, accent domain.Accent, gtk domain.GTKVersion) (string, error) {
	var b strings.Builder

	if custom := p.Custom.ForGTK(gtk); custom != "" {
		b.WriteString(custom)
		if !strings.HasSuffix(custom, "\n") {
			b.WriteByte('\n')
		}
	}

	fmt.Fprintf(&b, "/* Preset: %s %s/%s */\n", p.Label(), mode, accent)

	var resolveErr error
	p.Variables.Each(func(slot domain.VariableSlot, v domain.Variable) {
		if resolveErr != nil {
			return
		}
		value, err := domain.Resolve(v, mode, accent)
		if err != nil {
			resolveErr = fmt.Errorf("failed to resolve %s for %s/%s: %w", slot.Slug(), mode, accent, err)
			return
		}
		defineColor(&b, slot.Slug(), value)
	})
	if resolveErr != nil {
		return "", resolveErr
	}

	for _, entry := range p.Palette.Entries() {
		defineColor(&b, entry.Name, entry.Value)
	}

	return substituteTokens(b.String(), mode, accent), nil
}

func defineColor(b *strings.Builder, name, value string) {
	b.WriteString("@define-color ")
	b.WriteString(name)
	b.WriteByte(' ')
	b.WriteString(value)
	b.WriteString(";\n")
}
