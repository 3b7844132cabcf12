package optics

import (
	"image/color"
	"math"

	"github.com/iburimskiy/photon-bounce/internal/geom"
)

const (
	MinRadius  = 5
	ResizeStep = 5
)

// Outcome is the result of a photon touching a body.
type Outcome int

const (
	Reflect Outcome = iota
	Absorb
)

// Body is anything photons collide with. Circles and emitters are the two kinds.
type Body interface {
	Collide(p geom.Point) bool
	// Interact decides the fate of a photon inside the body and
	// updates its heading when it is reflected.
	Interact(p *Photon, s *Scene) Outcome
	HandleInput(ev Event, s *Scene)
	Draw(c Canvas)
	// Removable reports whether the user may delete the body.
	Removable() bool
}

// Circle is a plain obstacle.
type Circle struct {
	Center   geom.Point
	Radius   float64
	Color    color.Color
	Dragging bool
}

func NewCircle(center geom.Point, radius float64, c color.Color) *Circle {
	return &Circle{Center: center, Radius: math.Max(MinRadius, radius), Color: c}
}

func (c *Circle) Collide(p geom.Point) bool {
	return c.Center.Distance(p) <= c.Radius
}

// Interact absorbs photons deep inside the circle or by chance, and reflects the rest
// across the center-to-photon axis.
func (c *Circle) Interact(p *Photon, s *Scene) Outcome {
	if c.Center.Distance(p.Pos) <= c.Radius-1 || s.rng.Float64() < s.Tunables.AbsorptionProbability {
		return Absorb
	}
	r := geom.Reflect(geom.Polar(1, p.Heading), p.Pos.Sub(c.Center))
	p.Heading = r.Angle() + s.jitter()
	return Reflect
}

// Resize grows the circle by ResizeStep per wheel tick, never below MinRadius.
func (c *Circle) Resize(ticks float64) {
	c.Radius = math.Max(MinRadius, c.Radius+ResizeStep*ticks)
}

func (c *Circle) Removable() bool { return true }

func (c *Circle) HandleInput(ev Event, s *Scene) {
	if ev.Kind == KeyPress && ev.Key == KeyRemove && c.Collide(s.Pointer) {
		s.Registry.Remove(c)
		return
	}
	c.track(ev)
}

// track handles dragging and resizing, shared by every body.
func (c *Circle) track(ev Event) {
	switch ev.Kind {
	case PointerMove:
		if c.Dragging {
			c.Center = ev.Pos
		}
	case PointerDown:
		if ev.Button == ButtonLeft && c.Collide(ev.Pos) {
			c.Dragging = true
		}
	case PointerUp:
		if ev.Button == ButtonLeft {
			c.Dragging = false
		}
	case ScrollTick:
		if c.Collide(ev.Pos) {
			c.Resize(ev.Delta)
		}
	}
}

func (c *Circle) Draw(cv Canvas) {
	cv.FillCircle(c.Center, c.Radius, c.Color)
}
