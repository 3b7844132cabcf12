package sound

import (
	"math/rand"
	"testing"

	"github.com/faiface/beep"
)

var _ beep.Streamer = (*ClickTap)(nil)

func TestStreamSilentWhenIdle(t *testing.T) {
	tap := NewClickTap(4, 0.9, rand.New(rand.NewSource(1)))
	buf := make([][2]float64, 64)
	n, ok := tap.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("expected full endless stream, got n=%d ok=%v", n, ok)
	}
	for i, s := range buf {
		if s != [2]float64{} {
			t.Fatalf("expected silence at %d, got %v", i, s)
		}
	}
}

func TestTriggerPlaysAndDecays(t *testing.T) {
	tap := NewClickTap(4, 0.5, rand.New(rand.NewSource(1)))
	tap.Trigger(1)
	if tap.Pending() != 1 {
		t.Fatalf("expected 1 pending click, got %d", tap.Pending())
	}

	buf := make([][2]float64, 32)
	tap.Stream(buf)
	if tap.Pending() != 0 {
		t.Errorf("expected click to start, %d still pending", tap.Pending())
	}
	loud := false
	for _, s := range buf[:4] {
		if s[0] != 0 {
			loud = true
		}
		if s[0] != s[1] {
			t.Errorf("expected mono click, got %v", s)
		}
		if s[0] > 1 || s[0] < -1 {
			t.Errorf("sample %f out of range", s[0])
		}
	}
	if !loud {
		t.Error("expected click to be audible")
	}
	if buf[31] != [2]float64{} {
		t.Errorf("expected click to have decayed, got %v", buf[31])
	}
}

func TestTriggerDropsWhenFull(t *testing.T) {
	tap := NewClickTap(2, 0.5, rand.New(rand.NewSource(1)))
	for i := 0; i < 5; i++ {
		tap.Trigger(0.5)
	}
	if tap.Pending() != 2 {
		t.Errorf("expected ring to hold 2 clicks, got %d", tap.Pending())
	}
	tap.Trigger(-1)
	tap.Trigger(0)
	if tap.Pending() != 2 {
		t.Errorf("expected silent clicks to be ignored, got %d", tap.Pending())
	}
}
