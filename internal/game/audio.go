package game

import (
	"math/rand"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"

	"github.com/iburimskiy/photon-bounce/internal/config"
	"github.com/iburimskiy/photon-bounce/internal/optics"
	"github.com/iburimskiy/photon-bounce/internal/sound"
)

// Loudness per photon event; a frame's clicks saturate at full volume.
const (
	absorbGain  = 0.02
	reflectGain = 0.005
)

// sonifier plays a click per frame in which photons were absorbed or reflected.
type sonifier struct {
	tap  *sound.ClickTap
	ctrl *beep.Ctrl
}

func startSonifier(rng *rand.Rand) (*sonifier, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}
	tap := sound.NewClickTap(config.ClickRingSize, config.ClickDecay, rng)
	ctrl := &beep.Ctrl{Streamer: tap, Paused: false}
	speaker.Play(ctrl)
	return &sonifier{tap: tap, ctrl: ctrl}, nil
}

func (s *sonifier) frame(st optics.Stats) {
	s.tap.Trigger(float64(st.Absorbed+st.Faded)*absorbGain + float64(st.Reflected)*reflectGain)
}

func (s *sonifier) toggle() {
	speaker.Lock()
	s.ctrl.Paused = !s.ctrl.Paused
	speaker.Unlock()
}

func (s *sonifier) muted() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return s.ctrl.Paused
}
