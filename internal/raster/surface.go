// Package raster is a software field.Surface over an *image.RGBA, used to
// render the field without a window.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/iburimskiy/particle-field/internal/field"
	"golang.org/x/image/vector"
)

const (
	circleSegments = 32
	lineWidth      = 1.0
)

// Surface rasterises circles and lines with anti-aliasing.
type Surface struct {
	img        *image.RGBA
	background color.NRGBA
	z          vector.Rasterizer
}

func New(w, h int, background color.NRGBA) *Surface {
	s := &Surface{background: background}
	s.SetSize(float64(w), float64(h))
	return s
}

func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Size() (float64, float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// SetSize reallocates the backing image; contents are cleared.
func (s *Surface) SetSize(w, h float64) {
	iw, ih := int(math.Max(0, w)), int(math.Max(0, h))
	s.img = image.NewRGBA(image.Rect(0, 0, iw, ih))
	s.Clear()
}

func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

func (s *Surface) FillCircle(c field.Vec2, r float64, col field.Color) {
	if !s.visible(c.X-r, c.Y-r, c.X+r, c.Y+r) {
		return
	}
	s.begin()
	for i := 0; i <= circleSegments; i++ {
		theta := 2 * math.Pi * float64(i) / circleSegments
		x := float32(c.X + r*math.Cos(theta))
		y := float32(c.Y + r*math.Sin(theta))
		if i == 0 {
			s.z.MoveTo(x, y)
			continue
		}
		s.z.LineTo(x, y)
	}
	s.z.ClosePath()
	s.fill(col)
}

func (s *Surface) StrokeLine(a, b field.Vec2, col field.Color) {
	if !s.visible(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Max(a.X, b.X), math.Max(a.Y, b.Y)) {
		return
	}
	d := a.Dist(b)
	if d == 0 {
		return
	}
	// Offset both ends by half the width along the segment normal.
	nx := -(b.Y - a.Y) / d * lineWidth / 2
	ny := (b.X - a.X) / d * lineWidth / 2

	s.begin()
	s.z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
	s.z.LineTo(float32(b.X+nx), float32(b.Y+ny))
	s.z.LineTo(float32(b.X-nx), float32(b.Y-ny))
	s.z.LineTo(float32(a.X-nx), float32(a.Y-ny))
	s.z.ClosePath()
	s.fill(col)
}

func (s *Surface) begin() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
}

func (s *Surface) fill(col field.Color) {
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{})
}

func (s *Surface) visible(x0, y0, x1, y1 float64) bool {
	w, h := s.Size()
	return w > 0 && h > 0 && x1 >= 0 && y1 >= 0 && x0 <= w && y0 <= h
}
