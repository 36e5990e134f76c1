package mouse

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/plotview/internal/plot/transform"
)

func TestButtonString(t *testing.T) {
	tests := []struct {
		button   Button
		expected string
	}{
		{ButtonNone, "none"},
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.button.String(); got != tt.expected {
				t.Errorf("Button.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "none"},
		{ActionPress, "press"},
		{ActionRelease, "release"},
		{ActionMove, "move"},
		{ActionDrag, "drag"},
		{ActionWheel, "wheel"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.action.String(); got != tt.expected {
				t.Errorf("Action.String() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestEventAccept(t *testing.T) {
	ev := &Event{}
	if ev.Accepted() {
		t.Error("new event already accepted")
	}
	ev.Accept()
	if !ev.Accepted() {
		t.Error("Accept() did not mark event")
	}
}

func mouseAt(x, y int, mask tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, mask, tcell.ModNone)
}

func TestTrackerPressDragFinish(t *testing.T) {
	tr := NewTracker(nil)

	evs := tr.Translate(mouseAt(10, 10, tcell.ButtonPrimary))
	if len(evs) != 1 || evs[0].Action != ActionPress || evs[0].Button != ButtonLeft {
		t.Fatalf("press translated to %+v", evs)
	}

	evs = tr.Translate(mouseAt(12, 11, tcell.ButtonPrimary))
	if len(evs) != 1 || evs[0].Action != ActionDrag {
		t.Fatalf("drag translated to %+v", evs)
	}
	if evs[0].IsFinish() {
		t.Error("mid-drag event marked finish")
	}
	if d := evs[0].ScreenDelta(); d.X != 2 || d.Y != 1 {
		t.Errorf("ScreenDelta() = %v, want {2 1}", d)
	}
	if evs[0].ButtonDownScene.X != 10 || evs[0].ButtonDownScene.Y != 10 {
		t.Errorf("ButtonDownScene = %v, want {10 10}", evs[0].ButtonDownScene)
	}

	evs = tr.Translate(mouseAt(12, 11, tcell.ButtonNone))
	if len(evs) != 2 {
		t.Fatalf("release translated to %d events, want 2", len(evs))
	}
	if evs[0].Action != ActionDrag || !evs[0].IsFinish() {
		t.Errorf("first release event = %v finish=%v, want finishing drag", evs[0].Action, evs[0].IsFinish())
	}
	if evs[1].Action != ActionRelease || evs[1].Button != ButtonLeft {
		t.Errorf("second release event = %v %v, want left release", evs[1].Action, evs[1].Button)
	}
	if tr.Held() != ButtonNone {
		t.Errorf("Held() = %v after release, want none", tr.Held())
	}
}

func TestTrackerClickWithoutDrag(t *testing.T) {
	tr := NewTracker(nil)

	tr.Translate(mouseAt(5, 5, tcell.ButtonSecondary))
	evs := tr.Translate(mouseAt(5, 5, tcell.ButtonNone))
	if len(evs) != 1 || evs[0].Action != ActionRelease || evs[0].Button != ButtonRight {
		t.Fatalf("click release translated to %+v", evs)
	}
}

func TestTrackerWheel(t *testing.T) {
	tr := NewTracker(nil)

	evs := tr.Translate(mouseAt(3, 4, tcell.WheelUp))
	if len(evs) != 1 || evs[0].Action != ActionWheel {
		t.Fatalf("wheel translated to %+v", evs)
	}
	if evs[0].WheelDelta != WheelStep {
		t.Errorf("WheelDelta = %v, want %v", evs[0].WheelDelta, WheelStep)
	}

	evs = tr.Translate(mouseAt(3, 4, tcell.WheelDown))
	if evs[0].WheelDelta != -WheelStep {
		t.Errorf("WheelDelta = %v, want %v", evs[0].WheelDelta, -WheelStep)
	}
}

func TestTrackerMove(t *testing.T) {
	tr := NewTracker(nil)

	tr.Translate(mouseAt(1, 1, tcell.ButtonNone))
	evs := tr.Translate(mouseAt(2, 1, tcell.ButtonNone))
	if len(evs) != 1 || evs[0].Action != ActionMove {
		t.Fatalf("move translated to %+v", evs)
	}
}

func TestTrackerSceneMapper(t *testing.T) {
	tr := NewTracker(func(p Position) transform.Point {
		return transform.Point{X: float64(p.X) * 2, Y: float64(p.Y) * 2}
	})

	evs := tr.Translate(mouseAt(4, 5, tcell.ButtonPrimary))
	if len(evs) != 1 {
		t.Fatalf("press translated to %d events, want 1", len(evs))
	}
	if evs[0].Scene.X != 8 || evs[0].Scene.Y != 10 {
		t.Errorf("Scene = %v, want {8 10}", evs[0].Scene)
	}
}
