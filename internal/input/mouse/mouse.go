// Package mouse provides mouse event types for the plot viewer and a
// tracker that turns tcell's stateful mouse stream into the press,
// drag, release and wheel events the viewport handlers consume.
package mouse

import (
	"github.com/dshills/plotview/internal/input/key"
	"github.com/dshills/plotview/internal/plot/transform"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary (left) mouse button.
	ButtonLeft
	// ButtonMiddle is the middle mouse button (scroll wheel click).
	ButtonMiddle
	// ButtonRight is the secondary (right) mouse button.
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates mouse movement (no button held).
	ActionMove
	// ActionDrag indicates mouse movement with a button held.
	ActionDrag
	// ActionWheel indicates a scroll wheel movement.
	ActionWheel
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	case ActionDrag:
		return "drag"
	case ActionWheel:
		return "wheel"
	default:
		return "none"
	}
}

// Position represents a screen coordinate in cells.
type Position struct {
	X int
	Y int
}

// Equal returns true if two positions are equal.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Delta returns the componentwise difference p - other.
func (p Position) Delta(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// WheelStep is the normalized wheel delta per discrete wheel tick.
// Touchpads may report smaller continuous values through other
// frontends; consumers scale deltas by 1/WheelStep.
const WheelStep = 120.0

// Event represents a mouse input event delivered to the viewport.
//
// Scene positions are floating-point plot-scene coordinates; Screen
// positions are integer cells. Drag events carry the previous position
// of both, and the position where the active button went down.
type Event struct {
	// Button is the mouse button involved.
	Button Button

	// Action is the type of mouse action.
	Action Action

	// Screen is the current screen position.
	Screen Position

	// LastScreen is the screen position at the previous event.
	LastScreen Position

	// Scene is the current scene position.
	Scene transform.Point

	// LastScene is the scene position at the previous event.
	LastScene transform.Point

	// ButtonDownScene is where the active button was pressed.
	ButtonDownScene transform.Point

	// WheelDelta is the signed wheel movement, WheelStep per tick.
	WheelDelta float64

	// Modifiers are keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Finish is set on the last drag event of a gesture (the button
	// was released at this position).
	Finish bool

	accepted bool
}

// Accept marks the event as handled so the host stops propagating it.
func (e *Event) Accept() {
	e.accepted = true
}

// Accepted reports whether a handler accepted the event.
func (e *Event) Accepted() bool {
	return e.accepted
}

// IsFinish reports whether this is the final drag event of a gesture.
func (e *Event) IsFinish() bool {
	return e.Finish
}

// SceneDelta returns the scene-space movement since the last event.
func (e *Event) SceneDelta() transform.Point {
	return e.Scene.Sub(e.LastScene)
}

// ScreenDelta returns the screen-space movement since the last event.
func (e *Event) ScreenDelta() Position {
	return e.Screen.Delta(e.LastScreen)
}
