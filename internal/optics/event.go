package optics

import "github.com/iburimskiy/photon-bounce/internal/geom"

type EventKind int

const (
	PointerDown EventKind = iota
	PointerUp
	PointerMove
	ScrollTick
	KeyPress
	QuitRequested
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

type Key int

const (
	KeyOther  Key = iota
	KeyRemove     // R
	KeyClear      // C
	KeyQuit       // Escape
)

// Event is one discrete input. Pos is set for pointer and scroll events,
// Button for presses and releases, Delta for scrolls and Key for key presses.
type Event struct {
	Kind   EventKind
	Pos    geom.Point
	Button Button
	Delta  float64
	Key    Key
}

func (ev Event) hasPos() bool {
	return ev.Kind == PointerDown || ev.Kind == PointerUp || ev.Kind == PointerMove || ev.Kind == ScrollTick
}
