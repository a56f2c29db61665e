package export

import (
	"fmt"
	"io"
	"strings"

	"themesmith/internal/domain"
)

func (e *Exporter) writeMarkdown(w io.Writer, p *domain.Preset) error {
	fmt.Fprintf(w, "# %s\n\n", p.Name)

	if p.Description != "" {
		fmt.Fprintf(w, "%s\n\n", p.Description)
	}

	fmt.Fprintf(w, "**Version**: %s | **License**: %s\n\n", p.Version, p.License)

	author := p.Author.Name
	if p.Author.Email != "" {
		author += fmt.Sprintf(" <%s>", p.Author.Email)
	}
	if p.Author.URL != "" {
		author += fmt.Sprintf(" (%s)", p.Author.URL)
	}
	fmt.Fprintf(w, "**Author**: %s\n\n", author)

	fmt.Fprintf(w, "**Supports**: GNOME %s, libadwaita %s, GTK %s\n\n", p.Supported.Gnome, p.Supported.Adw, p.Supported.GTK)

	fmt.Fprintf(w, "## Variables (%s/%s)\n\n", e.Mode, e.Accent)
	fmt.Fprintln(w, "| Variable | Value |")
	fmt.Fprintln(w, "|---|---|")

	var resolveErr error
	p.Variables.Each(func(slot domain.VariableSlot, v domain.Variable) {
		if resolveErr != nil {
			return
		}
		value, err := domain.Resolve(v, e.Mode, e.Accent)
		if err != nil {
			resolveErr = fmt.Errorf("failed to resolve %s: %w", slot.Slug(), err)
			return
		}
		fmt.Fprintf(w, "| `%s` | `%s` |\n", slot.Slug(), escapeCell(value))
	})
	if resolveErr != nil {
		return resolveErr
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "## Palette")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Family | Shades |")
	fmt.Fprintln(w, "|---|---|")
	for _, f := range domain.Families() {
		shades := p.Palette.Shades(f)
		cells := make([]string, len(shades))
		for i, s := range shades {
			cells[i] = fmt.Sprintf("%s `%s`", s.Name, escapeCell(s.Value))
		}
		fmt.Fprintf(w, "| %s | %s |\n", f, strings.Join(cells, ", "))
	}
	fmt.Fprintln(w)

	for _, custom := range []struct {
		title string
		css   string
	}{
		{"GTK 4", p.Custom.Gtk4},
		{"GTK 3", p.Custom.Gtk3},
		{"Shell", p.Custom.Shell},
	} {
		if strings.TrimSpace(custom.css) == "" {
			continue
		}
		fmt.Fprintf(w, "## Custom CSS (%s)\n\n```css\n%s\n```\n\n", custom.title, strings.TrimRight(custom.css, "\n"))
	}

	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
