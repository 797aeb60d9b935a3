package palette

import (
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#6c5ce7", color.NRGBA{R: 108, G: 92, B: 231, A: 255}},
		{"#6C5CE780", color.NRGBA{R: 108, G: 92, B: 231, A: 128}},
		{"#fff", color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"rgb(108, 92, 231)", color.NRGBA{R: 108, G: 92, B: 231, A: 255}},
		{" Crimson ", color.NRGBA{R: 220, G: 20, B: 60, A: 255}},
		{"hsv(120, 1, 1)", color.NRGBA{G: 255, A: 255}},
		{"HSV(-120, 1, 0.5)", color.NRGBA{B: 128, A: 255}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseRejects(t *testing.T) {
	for _, in := range []string{"", "#12", "#zzzzzz", "rgb(1,2)", "rgb(1,2,300)", "hsv(10, 1)", "hsv(a, 1, 1)", "hsv(10, 2, 1)", "not-a-colour"} {
		if _, err := Parse(in); err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestHSV(t *testing.T) {
	tests := []struct {
		h, s, v float64
		want    color.NRGBA
	}{
		{0, 1, 1, color.NRGBA{R: 255, A: 255}},
		{120, 1, 1, color.NRGBA{G: 255, A: 255}},
		{240, 1, 1, color.NRGBA{B: 255, A: 255}},
		{360, 1, 1, color.NRGBA{R: 255, A: 255}},
		{-120, 1, 1, color.NRGBA{B: 255, A: 255}},
		{42, 0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{42, 1, 0, color.NRGBA{A: 255}},
	}
	for _, tt := range tests {
		if got := HSV(tt.h, tt.s, tt.v); got != tt.want {
			t.Fatalf("HSV(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}

func TestThemeToggle(t *testing.T) {
	if Dark.Toggle() != Light || Light.Toggle() != Dark {
		t.Fatalf("Toggle does not alternate")
	}
	if ThemeByName("LIGHT") != Light || ThemeByName("whatever") != Dark {
		t.Fatalf("ThemeByName mismatch")
	}
}

func TestThemeTextContrastsWithBackground(t *testing.T) {
	luma := func(c color.NRGBA) int { return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000 }
	for _, th := range []Theme{Dark, Light} {
		d := luma(th.Text) - luma(th.Background)
		if d < 0 {
			d = -d
		}
		if d < 128 {
			t.Fatalf("%s: text/background luma gap = %d, want >= 128", th.Name, d)
		}
		if th.Text.A != 255 {
			t.Fatalf("%s: text alpha = %d, want opaque", th.Name, th.Text.A)
		}
	}
}
