package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/particle-field/internal/field"
)

const strokeWidth = 1

// screenSurface draws the field onto whatever image Draw was handed this
// frame. Its size tracks the window layout, not the image.
type screenSurface struct {
	target     *ebiten.Image
	w, h       float64
	background color.NRGBA
}

func (s *screenSurface) Size() (float64, float64) { return s.w, s.h }

func (s *screenSurface) SetSize(w, h float64) { s.w, s.h = w, h }

func (s *screenSurface) Clear() {
	if s.target == nil {
		return
	}
	s.target.Fill(s.background)
}

func (s *screenSurface) FillCircle(c field.Vec2, r float64, col field.Color) {
	if s.target == nil {
		return
	}
	vector.DrawFilledCircle(s.target, float32(c.X), float32(c.Y), float32(r), col.NRGBA(), true)
}

func (s *screenSurface) StrokeLine(a, b field.Vec2, col field.Color) {
	if s.target == nil {
		return
	}
	vector.StrokeLine(s.target, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), strokeWidth, col.NRGBA(), true)
}
