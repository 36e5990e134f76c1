package mouse

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/plotview/internal/input/key"
	"github.com/dshills/plotview/internal/plot/transform"
)

// SceneMapper converts a screen cell position to scene coordinates.
type SceneMapper func(Position) transform.Point

// CellMapper is the default scene mapping: one scene unit per cell.
func CellMapper(p Position) transform.Point {
	return transform.Point{X: float64(p.X), Y: float64(p.Y)}
}

// Tracker converts tcell's stateful mouse stream into discrete press,
// drag, release and wheel events. tcell reports the full button mask
// on every motion event, so the tracker owns the transition logic:
// which button is held, where it went down, and when a drag finishes.
type Tracker struct {
	mu sync.Mutex

	mapScene SceneMapper

	held            Button
	dragging        bool
	last            Position
	lastScene       transform.Point
	buttonDownScene transform.Point
	hasLast         bool
}

// NewTracker creates a tracker with the given scene mapping.
// A nil mapper falls back to CellMapper.
func NewTracker(mapScene SceneMapper) *Tracker {
	if mapScene == nil {
		mapScene = CellMapper
	}
	return &Tracker{mapScene: mapScene}
}

// SetSceneMapper replaces the scene mapping (e.g. after a resize).
func (t *Tracker) SetSceneMapper(mapScene SceneMapper) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if mapScene == nil {
		mapScene = CellMapper
	}
	t.mapScene = mapScene
}

// Held returns the button currently held, or ButtonNone.
func (t *Tracker) Held() Button {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.held
}

// Reset clears all tracking state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.held = ButtonNone
	t.dragging = false
	t.hasLast = false
}

// Translate converts one tcell mouse event into zero or more Events.
// A release that ends a drag yields two: the finishing drag and the
// release itself, in that order.
func (t *Tracker) Translate(ev *tcell.EventMouse) []*Event {
	t.mu.Lock()
	defer t.mu.Unlock()

	x, y := ev.Position()
	pos := Position{X: x, Y: y}
	scene := t.mapScene(pos)
	mods := key.ModifierFromTcell(ev.Modifiers())

	if wheel := wheelDelta(ev.Buttons()); wheel != 0 {
		return []*Event{{
			Button:     ButtonNone,
			Action:     ActionWheel,
			Screen:     pos,
			LastScreen: pos,
			Scene:      scene,
			LastScene:  scene,
			WheelDelta: wheel,
			Modifiers:  mods,
		}}
	}

	btn := buttonFromMask(ev.Buttons())

	var out []*Event
	switch {
	case t.held == ButtonNone && btn != ButtonNone:
		// Press
		t.held = btn
		t.dragging = false
		t.buttonDownScene = scene
		out = append(out, &Event{
			Button:          btn,
			Action:          ActionPress,
			Screen:          pos,
			LastScreen:      pos,
			Scene:           scene,
			LastScene:       scene,
			ButtonDownScene: scene,
			Modifiers:       mods,
		})

	case t.held != ButtonNone && btn == t.held:
		if t.hasLast && !pos.Equal(t.last) {
			t.dragging = true
			out = append(out, t.dragEvent(pos, scene, mods, false))
		}

	case t.held != ButtonNone && btn == ButtonNone:
		// Release. A drag in progress gets its finishing event first.
		if t.dragging {
			out = append(out, t.dragEvent(pos, scene, mods, true))
		}
		out = append(out, &Event{
			Button:          t.held,
			Action:          ActionRelease,
			Screen:          pos,
			LastScreen:      t.last,
			Scene:           scene,
			LastScene:       t.lastScene,
			ButtonDownScene: t.buttonDownScene,
			Modifiers:       mods,
		})
		t.held = ButtonNone
		t.dragging = false

	case t.held == ButtonNone && t.hasLast && !pos.Equal(t.last):
		out = append(out, &Event{
			Action:     ActionMove,
			Screen:     pos,
			LastScreen: t.last,
			Scene:      scene,
			LastScene:  t.lastScene,
			Modifiers:  mods,
		})
	}

	t.last = pos
	t.lastScene = scene
	t.hasLast = true

	return out
}

// dragEvent builds a drag event from the tracked state (lock held).
func (t *Tracker) dragEvent(pos Position, scene transform.Point, mods key.Modifier, finish bool) *Event {
	return &Event{
		Button:          t.held,
		Action:          ActionDrag,
		Screen:          pos,
		LastScreen:      t.last,
		Scene:           scene,
		LastScene:       t.lastScene,
		ButtonDownScene: t.buttonDownScene,
		Modifiers:       mods,
		Finish:          finish,
	}
}

// buttonFromMask extracts the highest-priority held button.
func buttonFromMask(mask tcell.ButtonMask) Button {
	switch {
	case mask&tcell.ButtonPrimary != 0:
		return ButtonLeft
	case mask&tcell.ButtonSecondary != 0:
		return ButtonRight
	case mask&tcell.ButtonMiddle != 0:
		return ButtonMiddle
	default:
		return ButtonNone
	}
}

// wheelDelta converts tcell wheel flags to a normalized delta.
func wheelDelta(mask tcell.ButtonMask) float64 {
	switch {
	case mask&tcell.WheelUp != 0:
		return WheelStep
	case mask&tcell.WheelDown != 0:
		return -WheelStep
	default:
		return 0
	}
}
