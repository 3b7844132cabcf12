package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/photon-bounce/internal/geom"
	"github.com/iburimskiy/photon-bounce/internal/optics"
)

var mouseButtons = []struct {
	eb  ebiten.MouseButton
	btn optics.Button
}{
	{ebiten.MouseButtonLeft, optics.ButtonLeft},
	{ebiten.MouseButtonRight, optics.ButtonRight},
	{ebiten.MouseButtonMiddle, optics.ButtonMiddle},
}

var keys = []struct {
	eb  ebiten.Key
	key optics.Key
}{
	{ebiten.KeyR, optics.KeyRemove},
	{ebiten.KeyC, optics.KeyClear},
	{ebiten.KeyEscape, optics.KeyQuit},
}

// inputState turns polled device state into the discrete events the scene consumes.
type inputState struct {
	lastX, lastY int
	seen         bool
}

// collect returns this frame's events. skipLeft drops the left button
// press/release when a UI button already took it.
func (in *inputState) collect(skipLeft bool) []optics.Event {
	var events []optics.Event
	if ebiten.IsWindowBeingClosed() {
		events = append(events, optics.Event{Kind: optics.QuitRequested})
	}

	x, y := ebiten.CursorPosition()
	pos := geom.Pt(float64(x), float64(y))
	if !in.seen || x != in.lastX || y != in.lastY {
		events = append(events, optics.Event{Kind: optics.PointerMove, Pos: pos})
		in.lastX, in.lastY, in.seen = x, y, true
	}

	for _, mb := range mouseButtons {
		if skipLeft && mb.btn == optics.ButtonLeft {
			continue
		}
		if inpututil.IsMouseButtonJustPressed(mb.eb) {
			events = append(events, optics.Event{Kind: optics.PointerDown, Pos: pos, Button: mb.btn})
		}
		if inpututil.IsMouseButtonJustReleased(mb.eb) {
			events = append(events, optics.Event{Kind: optics.PointerUp, Pos: pos, Button: mb.btn})
		}
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		events = append(events, optics.Event{Kind: optics.ScrollTick, Pos: pos, Delta: dy})
	}

	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k.eb) {
			events = append(events, optics.Event{Kind: optics.KeyPress, Key: k.key})
		}
	}
	return events
}
