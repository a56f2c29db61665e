package render

import (
	"strings"

	"themesmith/internal/domain"
)

const (
	modeToken   = "@mode"
	accentToken = "@accent"
)

// substituteTokens replaces the literal @mode and @accent shorthands across
// the whole text. Values that happen to contain those substrings are
// rewritten as well.
func substituteTokens(text string, mode domain.Mode, accent domain.Accent) string {
	text = strings.ReplaceAll(text, modeToken, mode.String())
	return strings.ReplaceAll(text, accentToken, accent.String())
}
