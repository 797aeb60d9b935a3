package raster

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/iburimskiy/particle-field/internal/field"
)

var black = color.NRGBA{A: 255}

func TestClearFillsBackground(t *testing.T) {
	bg := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	s := New(8, 6, bg)
	if w, h := s.Size(); w != 8 || h != 6 {
		t.Fatalf("size = %vx%v, want 8x6", w, h)
	}
	if got := s.Image().RGBAAt(7, 5); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Fatalf("pixel = %+v, want background", got)
	}
}

func TestFillCircleCoversCentre(t *testing.T) {
	s := New(20, 20, black)
	s.FillCircle(field.Vec2{X: 10, Y: 10}, 4, field.Color{R: 255, A: 1})

	if got := s.Image().RGBAAt(10, 10); got.R < 250 || got.G != 0 {
		t.Fatalf("centre pixel = %+v, want red", got)
	}
	if got := s.Image().RGBAAt(1, 1); got != (color.RGBA{A: 255}) {
		t.Fatalf("corner pixel = %+v, want untouched", got)
	}
}

func TestFillCircleBlendsAlpha(t *testing.T) {
	s := New(20, 20, black)
	s.FillCircle(field.Vec2{X: 10, Y: 10}, 5, field.Color{R: 255, G: 255, B: 255, A: 0.5})

	got := s.Image().RGBAAt(10, 10)
	if got.R < 120 || got.R > 135 {
		t.Fatalf("centre pixel = %+v, want ~50%% grey", got)
	}
}

func TestStrokeLineMarksPixelsAlongSegment(t *testing.T) {
	s := New(40, 10, black)
	s.StrokeLine(field.Vec2{X: 2, Y: 5}, field.Vec2{X: 38, Y: 5}, field.Color{G: 255, A: 1})

	for _, x := range []int{5, 20, 35} {
		if s.Image().RGBAAt(x, 4).G == 0 && s.Image().RGBAAt(x, 5).G == 0 {
			t.Fatalf("no green near x=%d", x)
		}
	}
	if got := s.Image().RGBAAt(20, 0); got.G != 0 {
		t.Fatalf("line bled to row 0: %+v", got)
	}
}

func TestOffSurfaceShapesAreIgnored(t *testing.T) {
	s := New(10, 10, black)
	s.FillCircle(field.Vec2{X: -50, Y: -50}, 2, field.Color{R: 255, A: 1})
	s.StrokeLine(field.Vec2{X: 100, Y: 100}, field.Vec2{X: 200, Y: 100}, field.Color{R: 255, A: 1})
	s.StrokeLine(field.Vec2{X: 3, Y: 3}, field.Vec2{X: 3, Y: 3}, field.Color{R: 255, A: 1})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if got := s.Image().RGBAAt(x, y); got.R != 0 {
				t.Fatalf("pixel (%d,%d) = %+v, want untouched", x, y, got)
			}
		}
	}
}

func TestSetSizeReallocates(t *testing.T) {
	s := New(10, 10, black)
	s.SetSize(32, 16)
	if b := s.Image().Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Fatalf("bounds = %v, want 32x16", b)
	}
}

func TestAnimatorRendersOntoRaster(t *testing.T) {
	var q field.FrameQueue
	s := New(200, 150, black)
	a := field.NewAnimator(&q, field.WithRand(rand.New(rand.NewSource(3)).Float64))
	if err := a.Start(s, 30); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for i := 0; i < 10; i++ {
		q.Pump()
	}

	lit := 0
	img := s.Image()
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			if c := img.RGBAAt(x, y); c.R != 0 || c.G != 0 || c.B != 0 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Fatalf("no pixels drawn after 10 ticks")
	}
}
