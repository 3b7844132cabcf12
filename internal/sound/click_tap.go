// Package sound turns collision counts into short noise clicks.
package sound

import (
	"math/rand"
	"sync"
)

// ClickTap is an endless beep.Streamer. Trigger queues clicks into a ring buffer;
// Stream plays them one after another as exponentially decaying noise bursts.
type ClickTap struct {
	queue []float64
	head  int
	size  int
	decay float64
	env   float64
	rng   *rand.Rand
	mu    sync.Mutex
}

func NewClickTap(ringSize int, decay float64, rng *rand.Rand) *ClickTap {
	return &ClickTap{
		queue: make([]float64, ringSize),
		decay: decay,
		rng:   rng,
	}
}

// Trigger queues a click of amplitude amp, clamped to [0,1].
// Clicks are dropped while the ring is full.
func (t *ClickTap) Trigger(amp float64) {
	amp = clamp01(amp)
	if amp == 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.size == len(t.queue) {
		return
	}
	t.queue[(t.head+t.size)%len(t.queue)] = amp
	t.size++
}

// Pending returns the number of queued clicks not yet started.
func (t *ClickTap) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

func (t *ClickTap) Stream(samples [][2]float64) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range samples {
		if t.env < 1e-3 && t.size > 0 {
			t.env = t.queue[t.head]
			t.head = (t.head + 1) % len(t.queue)
			t.size--
		}
		v := 0.0
		if t.env >= 1e-3 {
			v = (t.rng.Float64()*2 - 1) * t.env
			t.env *= t.decay
		}
		samples[i] = [2]float64{v, v}
	}
	return len(samples), true
}

func (t *ClickTap) Err() error { return nil }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
