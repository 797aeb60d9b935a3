// Package palette parses accent colours and holds the background themes.
package palette

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Theme is a background fill plus the text colour drawn over it.
type Theme struct {
	Name       string
	Background color.NRGBA
	Text       color.NRGBA
}

var (
	Dark  = Theme{Name: "dark", Background: color.NRGBA{R: 10, G: 10, B: 18, A: 255}, Text: color.NRGBA{R: 220, G: 220, B: 235, A: 255}}
	Light = Theme{Name: "light", Background: color.NRGBA{R: 245, G: 245, B: 250, A: 255}, Text: color.NRGBA{R: 30, G: 30, B: 45, A: 255}}
)

// ThemeByName returns Dark for anything other than "light".
func ThemeByName(name string) Theme {
	if strings.EqualFold(name, Light.Name) {
		return Light
	}
	return Dark
}

// Toggle flips between Dark and Light.
func (t Theme) Toggle() Theme {
	if t.Name == Light.Name {
		return Dark
	}
	return Light
}

// Parse accepts #rgb, #rrggbb, #rrggbbaa, rgb(r, g, b), hsv(h, s, v) with
// hue in degrees and s, v in [0,1], or an SVG colour name.
func Parse(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "":
		return color.NRGBA{}, fmt.Errorf("palette: empty colour")
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGB(s[4 : len(s)-1])
	case strings.HasPrefix(s, "hsv(") && strings.HasSuffix(s, ")"):
		return parseHSV(s[4 : len(s)-1])
	}
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("palette: unknown colour %q", s)
}

func parseHex(h string) (color.NRGBA, error) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("palette: bad hex colour #%s", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("palette: bad hex colour #%s: %w", h, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func parseRGB(body string) (color.NRGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, fmt.Errorf("palette: rgb() needs 3 components, got %d", len(parts))
	}
	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return color.NRGBA{}, fmt.Errorf("palette: bad rgb component %q", p)
		}
		ch[i] = uint8(n)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, nil
}

func parseHSV(body string) (color.NRGBA, error) {
	parts := strings.Split(body, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, fmt.Errorf("palette: hsv() needs 3 components, got %d", len(parts))
	}
	var v [3]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("palette: bad hsv component %q", p)
		}
		v[i] = f
	}
	if v[1] < 0 || v[1] > 1 || v[2] < 0 || v[2] > 1 {
		return color.NRGBA{}, fmt.Errorf("palette: hsv saturation and value must be in [0,1]")
	}
	return HSV(v[0], v[1], v[2]), nil
}

// HSV converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func HSV(h, s, v float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s, v = Clamp01(s), Clamp01(v)
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return color.NRGBA{R: uint8((r+m)*255 + 0.5), G: uint8((g+m)*255 + 0.5), B: uint8((b+m)*255 + 0.5), A: 255}
}

func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
