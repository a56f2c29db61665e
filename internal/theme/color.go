package theme

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const maxRefDepth = 8

// parseColor converts a CSS colour to an opaque colour. Translucent values
// are composited over bg and @name references go through lookup.
func parseColor(value string, bg colorful.Color, lookup func(string) (string, bool)) (colorful.Color, bool) {
	return parseColorDepth(value, bg, lookup, 0)
}

func parseColorDepth(value string, bg colorful.Color, lookup func(string) (string, bool), depth int) (colorful.Color, bool) {
	value = strings.TrimSpace(value)
	switch {
	case value == "":
		return colorful.Color{}, false
	case strings.HasPrefix(value, "@"):
		if depth >= maxRefDepth || lookup == nil {
			return colorful.Color{}, false
		}
		ref, ok := lookup(value[1:])
		if !ok {
			return colorful.Color{}, false
		}
		return parseColorDepth(ref, bg, lookup, depth+1)
	case strings.HasPrefix(value, "#"):
		return parseHex(value, bg)
	case strings.HasPrefix(value, "rgb"):
		return parseRGB(value, bg)
	}
	return colorful.Color{}, false
}

func parseHex(value string, bg colorful.Color) (colorful.Color, bool) {
	alpha := 1.0
	switch len(value) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(value[7:], 16, 8)
		if err != nil {
			return colorful.Color{}, false
		}
		alpha = float64(a) / 255
		value = value[:7]
	default:
		return colorful.Color{}, false
	}

	c, err := colorful.Hex(value)
	if err != nil {
		return colorful.Color{}, false
	}
	return bg.BlendRgb(c, alpha), true
}

// parseRGB handles rgb(r, g, b) and rgba(r, g, b, a) with 0-255 channels.
func parseRGB(value string, bg colorful.Color) (colorful.Color, bool) {
	open := strings.IndexByte(value, '(')
	if open < 0 || !strings.HasSuffix(value, ")") {
		return colorful.Color{}, false
	}

	parts := strings.Split(value[open+1:len(value)-1], ",")
	if len(parts) != 3 && len(parts) != 4 {
		return colorful.Color{}, false
	}

	var channels [4]float64
	channels[3] = 1
	for i, part := range parts {
		n, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return colorful.Color{}, false
		}
		channels[i] = n
	}

	c := colorful.Color{R: channels[0] / 255, G: channels[1] / 255, B: channels[2] / 255}
	return bg.BlendRgb(c, channels[3]), true
}
