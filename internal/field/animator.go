// Package field animates a decorative set of drifting points joined by
// proximity lines. The animator owns the particles; the host supplies a
// Surface to draw on and a Scheduler that calls back once per refresh.
package field

import (
	"errors"
	"image/color"
	"math/rand"
)

var (
	ErrSurfaceUnavailable = errors.New("field: surface unavailable")
	ErrInvalidCount       = errors.New("field: particle count must be >= 0")
)

// Surface is a 2D raster target.
type Surface interface {
	Size() (w, h float64)
	Clear()
	FillCircle(center Vec2, radius float64, c Color)
	StrokeLine(a, b Vec2, c Color)
}

// Resizer is implemented by surfaces whose dimensions the animator may set.
type Resizer interface {
	SetSize(w, h float64)
}

// Field is the particle set plus the current surface dimensions.
type Field struct {
	Particles     []Particle
	Width, Height float64
}

type Option func(*Animator)

// WithRand sets the source used when particles are created.
func WithRand(r Rand) Option {
	return func(a *Animator) { a.rnd = r }
}

// WithViewport makes Start size the surface to the host viewport.
func WithViewport(fn func() (w, h float64)) Option {
	return func(a *Animator) { a.viewport = fn }
}

func WithColor(c color.NRGBA) Option {
	return func(a *Animator) { a.color = c }
}

func WithLinkDistance(d float64) Option {
	return func(a *Animator) { a.linkDist = d }
}

func WithLinkAlpha(alpha float64) Option {
	return func(a *Animator) { a.linkAlpha = alpha }
}

// Animator runs the update->draw cycle. All methods must be called from the
// same goroutine that drives the Scheduler.
type Animator struct {
	sched    Scheduler
	rnd      Rand
	viewport func() (w, h float64)

	color     color.NRGBA
	linkDist  float64
	linkAlpha float64

	surface Surface
	field   Field
	running bool
	gen     uint64 // bumped on every Start/Stop; stale ticks compare against it
}

func NewAnimator(sched Scheduler, opts ...Option) *Animator {
	a := &Animator{
		sched:     sched,
		rnd:       rand.Float64,
		color:     DefaultColor,
		linkDist:  DefaultLinkDistance,
		linkAlpha: DefaultLinkAlpha,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start populates count particles over surface and begins the cycle. A
// running cycle is stopped first. On error the animator stays stopped.
func (a *Animator) Start(surface Surface, count int) error {
	if count < 0 {
		return ErrInvalidCount
	}
	a.Stop()
	if surface == nil {
		return ErrSurfaceUnavailable
	}
	if a.viewport != nil {
		if r, ok := surface.(Resizer); ok {
			r.SetSize(a.viewport())
		}
	}
	w, h := surface.Size()
	if w <= 0 || h <= 0 {
		return ErrSurfaceUnavailable
	}

	ps := make([]Particle, count)
	for i := range ps {
		ps[i] = newParticle(a.rnd, w, h)
	}
	a.surface = surface
	a.field = Field{Particles: ps, Width: w, Height: h}
	a.running = true
	a.schedule(a.gen)
	return nil
}

// Stop halts the cycle. Any tick already requested becomes a no-op.
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.gen++
}

// Resize updates the field dimensions without touching particle state.
func (a *Animator) Resize(w, h float64) {
	a.field.Width, a.field.Height = w, h
	if r, ok := a.surface.(Resizer); ok {
		r.SetSize(w, h)
	}
}

func (a *Animator) Running() bool { return a.running }

// Field returns a copy of the current field.
func (a *Animator) Field() Field {
	f := a.field
	f.Particles = append([]Particle(nil), a.field.Particles...)
	return f
}

func (a *Animator) schedule(gen uint64) {
	a.sched.RequestFrame(func() {
		if !a.running || a.gen != gen {
			return
		}
		a.Step()
		a.schedule(gen)
	})
}

// Step runs one tick: advance every particle, then Render.
func (a *Animator) Step() {
	ps := a.field.Particles
	for i := range ps {
		ps[i] = Advance(ps[i], a.field.Width, a.field.Height)
	}
	a.Render()
}

// Render clears the surface and draws the field as it stands, without
// advancing it. Hosts use it to repaint a stopped field.
func (a *Animator) Render() {
	s := a.surface
	if s == nil {
		return
	}
	s.Clear()

	ps := a.field.Particles
	for _, p := range ps {
		s.FillCircle(p.Pos, p.Radius, a.tint(p.Opacity))
	}

	// O(n^2); fine for the few dozen particles a background uses.
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			alpha, ok := LinkAlpha(ps[i].Pos.Dist(ps[j].Pos), a.linkDist, a.linkAlpha)
			if !ok {
				continue
			}
			s.StrokeLine(ps[i].Pos, ps[j].Pos, a.tint(alpha))
		}
	}
}

func (a *Animator) tint(alpha float64) Color {
	return Color{R: a.color.R, G: a.color.G, B: a.color.B, A: alpha}
}
