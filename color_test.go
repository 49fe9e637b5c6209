package easel

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want color.RGBA
	}{
		{"named", "red", color.RGBA{R: 255, A: 255}},
		{"named mixed case", "SteelBlue", color.RGBA{R: 70, G: 130, B: 180, A: 255}},
		{"named with spaces", "  black  ", color.RGBA{A: 255}},
		{"rebeccapurple", "rebeccapurple", color.RGBA{R: 102, G: 51, B: 153, A: 255}},
		{"hex short", "#f80", color.RGBA{R: 255, G: 136, B: 0, A: 255}},
		{"hex long", "#ff8800", color.RGBA{R: 255, G: 136, B: 0, A: 255}},
		{"hex with alpha", "#ff880080", color.RGBA{R: 255, G: 136, B: 0, A: 128}},
		{"hex uppercase", "#FF8800", color.RGBA{R: 255, G: 136, B: 0, A: 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseColor(tt.in); got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorPlaceholder(t *testing.T) {
	tests := []string{
		"",
		"notacolor",
		"#12",
		"#12345",
		"#gggggg",
		"#1234567",
	}
	for _, in := range tests {
		t.Run("bad "+in, func(t *testing.T) {
			if got := ParseColor(in); got != placeholderColor {
				t.Errorf("ParseColor(%q) = %v, want magenta placeholder", in, got)
			}
		})
	}
}

func TestHexNibble(t *testing.T) {
	if v, ok := hexNibble('0'); !ok || v != 0 {
		t.Errorf("hexNibble('0') = %d, %v", v, ok)
	}
	if v, ok := hexNibble('f'); !ok || v != 15 {
		t.Errorf("hexNibble('f') = %d, %v", v, ok)
	}
	if v, ok := hexNibble('A'); !ok || v != 10 {
		t.Errorf("hexNibble('A') = %d, %v", v, ok)
	}
	if _, ok := hexNibble('g'); ok {
		t.Error("hexNibble('g') should fail")
	}
}
