package optics

import (
	"image/color"
	"math/rand"

	"github.com/iburimskiy/photon-bounce/internal/config"
	"github.com/iburimskiy/photon-bounce/internal/geom"
)

// Stats summarizes one Step.
type Stats struct {
	Spawned   int
	Reflected int
	Absorbed  int
	Faded     int
	Escaped   int
	Live      int
}

func (st *Stats) record(f Fate) {
	switch f {
	case Bounced:
		st.Reflected++
	case Absorbed:
		st.Absorbed++
	case Faded:
		st.Reflected++
		st.Faded++
	case Escaped:
		st.Escaped++
	}
}

// Scene is the whole simulation state: the bodies, the canvas bounds and
// the tunables in effect for the current frame.
type Scene struct {
	Width, Height float64
	Tunables      config.Tunables
	Registry      *Registry
	Palette       Palette

	// Pointer is the last known pointer position, used by key presses.
	Pointer geom.Point

	EmitterColor  color.Color
	ObstacleColor color.Color

	rng *rand.Rand
}

func NewScene(width, height float64, tun config.Tunables, palette Palette, rng *rand.Rand) *Scene {
	return &Scene{
		Width:         width,
		Height:        height,
		Tunables:      tun,
		Registry:      &Registry{},
		Palette:       palette,
		EmitterColor:  color.RGBA{R: 0xff, G: 0xff, B: 0xe0, A: 0xff},
		ObstacleColor: color.RGBA{R: 0x69, G: 0x69, B: 0x69, A: 0xff},
		rng:           rng,
	}
}

// jitter draws from U(-AxisJitter, AxisJitter).
func (s *Scene) jitter() float64 {
	return (s.rng.Float64()*2 - 1) * s.Tunables.AxisJitter
}

func (s *Scene) AddEmitter(center geom.Point, radius float64) *Emitter {
	e := NewEmitter(center, radius, s.EmitterColor)
	s.Registry.Add(e)
	return e
}

func (s *Scene) AddObstacle(center geom.Point, radius float64) *Circle {
	c := NewCircle(center, radius, s.ObstacleColor)
	s.Registry.Add(c)
	return c
}

// AddRandomObstacle places a circle anywhere on the canvas with a radius in
// [config.ObstacleMinRadius, config.ObstacleMaxRadius].
func (s *Scene) AddRandomObstacle() *Circle {
	center := geom.Pt(
		float64(s.rng.Intn(int(s.Width)+1)),
		float64(s.rng.Intn(int(s.Height)+1)),
	)
	r := config.ObstacleMinRadius + s.rng.Intn(config.ObstacleMaxRadius-config.ObstacleMinRadius+1)
	return s.AddObstacle(center, float64(r))
}

// Populate builds the startup scene: one emitter in the middle and n random obstacles.
func (s *Scene) Populate(n int) {
	s.AddEmitter(geom.Pt(s.Width/2, s.Height/2), config.EmitterRadius)
	for i := 0; i < n; i++ {
		s.AddRandomObstacle()
	}
}

// Dispatch feeds one frame of input to every body. It reports whether the user asked to quit.
func (s *Scene) Dispatch(events []Event) (quit bool) {
	for _, ev := range events {
		if ev.Kind == QuitRequested || (ev.Kind == KeyPress && ev.Key == KeyQuit) {
			quit = true
			continue
		}
		if ev.hasPos() {
			s.Pointer = ev.Pos
		}
		for _, b := range s.Registry.Bodies() {
			// skip bodies removed earlier in this frame
			if !s.Registry.Contains(b) {
				continue
			}
			b.HandleInput(ev, s)
		}
	}
	return quit
}

// Step advances every emitter by one tick.
func (s *Scene) Step() Stats {
	var st Stats
	for _, e := range s.Registry.Emitters() {
		e.Tick(s, &st)
	}
	return st
}

// Draw renders the bodies, then the photons in their fade colors.
func (s *Scene) Draw(cv Canvas) {
	for _, b := range s.Registry.Bodies() {
		b.Draw(cv)
	}
	size := float64(s.Tunables.PhotonPixelSize)
	for _, e := range s.Registry.Emitters() {
		for _, p := range e.Photons() {
			cv.FillSquare(p.Pos, size, s.Palette[p.Reflections])
		}
	}
}
