package render

import (
	"errors"
	"fmt"

	"github.com/cbroglie/mustache"

	"themesmith/internal/domain"
)

var ErrTemplate = errors.New("template error")

// TemplateError reports a template that failed to parse or that references
// a key missing from the render context.
type TemplateError struct {
	Key  string
	Line int
	Err  error
}

func (e *TemplateError) Error() string {
	msg := "template"
	if e.Line > 0 {
		msg = fmt.Sprintf("%s line %d", msg, e.Line)
	}
	if e.Key != "" {
		msg = fmt.Sprintf("%s key %q", msg, e.Key)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

func (e *TemplateError) Is(target error) bool {
	return target == ErrTemplate
}

var (
	errUnknownKey = errors.New("unknown key")
	errPartial    = errors.New("partials are not supported")
)

// Context builds the key/value map templates are rendered against.
func Context(p *domain.Preset, mode domain.Mode, accent domain.Accent) (map[string]string, error) {
	ctx := make(map[string]string)

	var resolveErr error
	p.Shell.Each(func(slot domain.ShellSlot, v domain.Variable) {
		if resolveErr != nil {
			return
		}
		value, err := domain.Resolve(v, mode, accent)
		if err != nil {
			resolveErr = fmt.Errorf("failed to resolve shell %s for %s/%s: %w", slot.Slug(), mode, accent, err)
			return
		}
		ctx[slot.Slug()] = value
	})
	if resolveErr != nil {
		return nil, resolveErr
	}

	p.Variables.Each(func(slot domain.VariableSlot, v domain.Variable) {
		if resolveErr != nil {
			return
		}
		value, err := domain.Resolve(v, mode, accent)
		if err != nil {
			resolveErr = fmt.Errorf("failed to resolve %s for %s/%s: %w", slot.Slug(), mode, accent, err)
			return
		}
		ctx[slot.Slug()] = value
	})
	if resolveErr != nil {
		return nil, resolveErr
	}

	for _, entry := range p.Palette.Entries() {
		ctx[entry.Name] = entry.Value
	}

	ctx["name"] = p.Name
	ctx["version"] = p.Version
	ctx["custom_css"] = p.Custom.Shell
	ctx["mode"] = mode.String()
	ctx["accent"] = accent.String()

	return ctx, nil
}

// Template renders text against the context of p. Output is not HTML
// escaped. Every tag must name a context key.
func Template(p *domain.Preset, text string, mode domain.Mode, accent domain.Accent) (string, error) {
	ctx, err := Context(p, mode, accent)
	if err != nil {
		return "", err
	}

	tmpl, err := mustache.ParseStringPartialsRaw(text, &mustache.StaticProvider{}, true)
	if err != nil {
		te := &TemplateError{Err: err}
		var parseErr mustache.ParseError
		if errors.As(err, &parseErr) {
			te.Line = parseErr.Line
			te.Key = parseErr.Reason
		}
		return "", te
	}

	if err := checkTags(tmpl.Tags(), ctx); err != nil {
		return "", err
	}

	out, err := tmpl.Render(ctx)
	if err != nil {
		return "", &TemplateError{Err: err}
	}

	return substituteTokens(out, mode, accent), nil
}

func checkTags(tags []mustache.Tag, ctx map[string]string) error {
	for _, tag := range tags {
		switch tag.Type() {
		case mustache.Partial:
			return &TemplateError{Key: tag.Name(), Err: errPartial}
		case mustache.Section, mustache.InvertedSection:
			if _, ok := ctx[tag.Name()]; !ok {
				return &TemplateError{Key: tag.Name(), Err: errUnknownKey}
			}
			if err := checkTags(tag.Tags(), ctx); err != nil {
				return err
			}
		default:
			if tag.Name() == "." {
				continue
			}
			if _, ok := ctx[tag.Name()]; !ok {
				return &TemplateError{Key: tag.Name(), Err: errUnknownKey}
			}
		}
	}
	return nil
}
