package easel

import (
	"image/color"
	"log"
	"strings"

	"golang.org/x/image/colornames"
)

// Colors in the beginner-facing API are plain strings: any SVG 1.1 color name
// ("red", "rebeccapurple") or a hex literal ("#f80", "#ff8800", "#ff880080").

// placeholderColor is returned for strings that don't parse. Magenta is loud
// enough that a typo in taught code is immediately visible on screen.
var placeholderColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// ParseColor converts a color string to a concrete RGBA value. Unknown names
// and malformed hex literals log a warning and yield a magenta placeholder
// instead of failing, so a typo never crashes a student program.
func ParseColor(s string) color.RGBA {
	c, ok := parseColor(s)
	if !ok {
		log.Printf("easel: unknown color %q, using magenta placeholder", s)
		return placeholderColor
	}
	return c
}

func parseColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, false
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, true
	}
	return color.RGBA{}, false
}

// parseHexColor accepts 3 (rgb), 6 (rrggbb), and 8 (rrggbbaa) digit forms.
func parseHexColor(s string) (color.RGBA, bool) {
	switch len(s) {
	case 3:
		r, ok1 := hexNibble(s[0])
		g, ok2 := hexNibble(s[1])
		b, ok3 := hexNibble(s[2])
		if !ok1 || !ok2 || !ok3 {
			return color.RGBA{}, false
		}
		return color.RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}, true
	case 6, 8:
		var v [4]uint8
		v[3] = 255
		for i := 0; i*2 < len(s); i++ {
			hi, ok1 := hexNibble(s[i*2])
			lo, ok2 := hexNibble(s[i*2+1])
			if !ok1 || !ok2 {
				return color.RGBA{}, false
			}
			v[i] = hi<<4 | lo
		}
		return color.RGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, true
	default:
		return color.RGBA{}, false
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
