package optics

import (
	"image/color"
	"math"

	"github.com/iburimskiy/photon-bounce/internal/geom"
)

// Emitter is a circle that periodically spawns a ring of photons and owns them.
type Emitter struct {
	Circle
	Enabled bool

	// Period and Step override the scene tunables when positive.
	Period int
	Step   int

	ticks   int
	photons []*Photon
}

func NewEmitter(center geom.Point, radius float64, c color.Color) *Emitter {
	return &Emitter{Circle: *NewCircle(center, radius, c), Enabled: true}
}

func (e *Emitter) Removable() bool { return false }

func (e *Emitter) HandleInput(ev Event, s *Scene) {
	switch {
	case ev.Kind == PointerDown && ev.Button == ButtonRight && e.Collide(ev.Pos):
		e.Toggle()
	case ev.Kind == KeyPress && ev.Key == KeyClear:
		e.Clear()
	case ev.Kind == KeyPress && ev.Key == KeyRemove:
		return
	}
	e.track(ev)
}

func (e *Emitter) Toggle() { e.Enabled = !e.Enabled }

// Clear drops every live photon. Spawn timing is unaffected.
func (e *Emitter) Clear() { e.photons = e.photons[:0] }

// Photons returns the live photons in spawn order. The slice is owned by the emitter.
func (e *Emitter) Photons() []*Photon { return e.photons }

func (e *Emitter) period(s *Scene) int {
	p := s.Tunables.SpawnPeriodTicks
	if e.Period > 0 {
		p = e.Period
	}
	return max(p, 1)
}

func (e *Emitter) step(s *Scene) int {
	if e.Step > 0 {
		return e.Step
	}
	return s.Tunables.AngularStepDegrees
}

// Tick advances every owned photon, then spawns a new generation when the period elapses.
func (e *Emitter) Tick(s *Scene, st *Stats) {
	live := e.photons[:0]
	for _, p := range e.photons {
		fate := p.Advance(s)
		st.record(fate)
		if !fate.Destroyed() {
			live = append(live, p)
		}
	}
	clear(e.photons[len(live):])
	e.photons = live

	e.ticks++
	if e.ticks >= e.period(s) {
		e.ticks = 0
		if e.Enabled {
			st.Spawned += e.Spawn(s)
		}
	}
	st.Live += len(e.photons)
}

// Spawn emits one photon per angle in {0, step, 2·step, ...} below 360 degrees,
// placed just outside the circumference and heading outward. It returns the count.
func (e *Emitter) Spawn(s *Scene) int {
	step := e.step(s)
	if step <= 0 {
		return 0
	}
	n := 0
	for deg := 0; deg < 360; deg += step {
		a := float64(deg)*math.Pi/180 + s.jitter()
		e.photons = append(e.photons, &Photon{
			Pos:     e.Center.Add(geom.Polar(e.Radius+1, a)),
			Heading: a,
		})
		n++
	}
	return n
}
