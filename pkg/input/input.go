// Package input defines the abstract input boundary: pointer events for
// hit-testing and directional intents for focus navigation. Platform backends
// translate their native events into these values; the core never sees a
// windowing library.
package input

import "github.com/go-boreal/boreal/pkg/geometry"

// Direction is a directional-navigation intent.
type Direction int

const (
	// DirectionUp moves focus upward.
	DirectionUp Direction = iota
	// DirectionDown moves focus downward.
	DirectionDown
	// DirectionLeft moves focus leftward.
	DirectionLeft
	// DirectionRight moves focus rightward.
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Kind discriminates event payloads.
type Kind int

const (
	// KindPointer carries a 2D point for hit-testing.
	KindPointer Kind = iota
	// KindNavigate carries a directional-navigation intent.
	KindNavigate
)

// Event is one abstract input event delivered to the view tree.
type Event struct {
	Kind      Kind
	Point     geometry.Point
	Direction Direction
}

// PointerEvent constructs a hit-testing event.
func PointerEvent(p geometry.Point) Event {
	return Event{Kind: KindPointer, Point: p}
}

// NavigateEvent constructs a focus-navigation event.
func NavigateEvent(d Direction) Event {
	return Event{Kind: KindNavigate, Direction: d}
}
