package field

import (
	"image/color"
	"math"
)

// Vec2 is a point or displacement on the surface.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Particle is one rendered point. Radius and Opacity never change after
// creation; Vel only changes sign on reflection.
type Particle struct {
	Pos     Vec2
	Vel     Vec2
	Radius  float64
	Opacity float64
}

// Rand returns a uniform value in [0,1).
type Rand func() float64

// newParticle draws a particle uniformly inside a w x h surface.
func newParticle(rnd Rand, w, h float64) Particle {
	return Particle{
		Pos: Vec2{X: rnd() * w, Y: rnd() * h},
		Vel: Vec2{
			X: (rnd() - 0.5) * maxSpeed * 2,
			Y: (rnd() - 0.5) * maxSpeed * 2,
		},
		Radius:  rnd()*(maxRadius-minRadius) + minRadius,
		Opacity: rnd()*(maxOpacity-minOpacity) + minOpacity,
	}
}

// Advance moves p by its velocity and reflects each velocity component whose
// post-update coordinate left [0,w] or [0,h]. Position is never clamped, so a
// particle can overshoot a border by one step before it heads back.
func Advance(p Particle, w, h float64) Particle {
	p.Pos = p.Pos.Add(p.Vel)
	if p.Pos.X < 0 || p.Pos.X > w {
		p.Vel.X = -p.Vel.X
	}
	if p.Pos.Y < 0 || p.Pos.Y > h {
		p.Vel.Y = -p.Vel.Y
	}
	return p
}

// LinkAlpha reports the alpha of the line joining two particles d apart, and
// whether the line is drawn at all. Alpha fades linearly to zero at maxDist.
func LinkAlpha(d, maxDist, maxAlpha float64) (float64, bool) {
	if d >= maxDist {
		return 0, false
	}
	return maxAlpha * (1 - d/maxDist), true
}

// Color is an opaque accent plus a fractional alpha in [0,1].
type Color struct {
	R, G, B uint8
	A       float64
}

// NRGBA quantises c for image and ebiten targets.
func (c Color) NRGBA() color.NRGBA {
	a := c.A
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}
