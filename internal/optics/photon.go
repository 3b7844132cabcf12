package optics

import (
	"github.com/iburimskiy/photon-bounce/internal/geom"
)

// Fate is what happened to a photon during one advance.
type Fate int

const (
	Alive    Fate = iota
	Bounced       // alive, reflected off a body this frame
	Escaped       // left the canvas
	Absorbed      // absorbed by a body
	Faded         // ran out of fade colors
)

// Destroyed reports whether the photon must be dropped.
func (f Fate) Destroyed() bool { return f >= Escaped }

// Photon is a single light particle.
type Photon struct {
	Pos         geom.Point
	Heading     float64 // radians
	Reflections int
}

// Advance moves p one unit along its heading and resolves the first collision.
func (p *Photon) Advance(s *Scene) Fate {
	step := geom.Polar(1, p.Heading)
	p.Pos = geom.Pt(
		p.Pos.X+step.X+s.jitter()/2,
		p.Pos.Y+step.Y+s.jitter()/2,
	)
	if !p.Pos.InRect(s.Width, s.Height) {
		return Escaped
	}

	hit := s.Registry.First(func(b Body) bool { return b.Collide(p.Pos) })
	if hit == nil {
		return Alive
	}
	if hit.Interact(p, s) == Absorb {
		return Absorbed
	}
	p.Reflections++
	if p.Reflections >= len(s.Palette) {
		return Faded
	}
	return Bounced
}
