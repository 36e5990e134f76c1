package app

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/plotview/internal/plot/menu"
	"github.com/dshills/plotview/internal/plot/viewbox"
	"github.com/dshills/plotview/internal/renderer"
	"github.com/dshills/plotview/internal/renderer/backend"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestApp(t *testing.T, cfg Config) *App {
	t.Helper()

	if cfg.Terminal == nil {
		term, err := backend.NewSimulation(40, 11)
		if err != nil {
			t.Fatalf("NewSimulation: %v", err)
		}
		cfg.Terminal = term
	}
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Make scene coordinates equal data coordinates so the tests can
	// reason about positions directly.
	a.View().SetSceneSize(40, 10)
	a.View().SetXRange(0, 40, 0)
	a.View().SetYRange(0, 10, 0)
	return a
}

func mouseEvent(x, y int, btn tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, btn, 0)
}

func TestModeKeys(t *testing.T) {
	a := newTestApp(t, Config{})

	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'c', 0))
	if a.View().Mode() != viewbox.ModeCursor {
		t.Errorf("mode = %v after 'c', want ModeCursor", a.View().Mode())
	}

	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'p', 0))
	if a.View().Mode() != viewbox.ModePan {
		t.Errorf("mode = %v after 'p', want ModePan", a.View().Mode())
	}
}

func TestZoomChordKeys(t *testing.T) {
	a := newTestApp(t, Config{})

	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'x', 0))
	if c, armed := a.View().ArmedZoom(); !armed || c != viewbox.XZoom {
		t.Errorf("ArmedZoom = %v %v after 'x', want XZoom armed", c, armed)
	}

	// Escape disarms rather than quitting while a chord is pending.
	a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	if _, armed := a.View().ArmedZoom(); armed {
		t.Error("chord still armed after escape")
	}
	if a.quit {
		t.Error("escape quit while disarming")
	}

	a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	if !a.quit {
		t.Error("second escape did not quit")
	}
}

func TestMouseDragPansView(t *testing.T) {
	a := newTestApp(t, Config{})

	a.handleMouse(mouseEvent(20, 5, tcell.ButtonPrimary))
	a.handleMouse(mouseEvent(10, 5, tcell.ButtonPrimary))
	a.handleMouse(mouseEvent(10, 5, tcell.ButtonNone))

	x, _ := a.View().ViewRange()
	if math.Abs(x[0]-10) > 1e-9 || math.Abs(x[1]-50) > 1e-9 {
		t.Errorf("x range = %v, want [10 50] after left pan", x)
	}
}

func TestCursorModeDragPlacesCursor(t *testing.T) {
	a := newTestApp(t, Config{})
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'c', 0))

	a.handleMouse(mouseEvent(5, 5, tcell.ButtonPrimary))
	a.handleMouse(mouseEvent(12, 5, tcell.ButtonPrimary))
	a.handleMouse(mouseEvent(12, 5, tcell.ButtonNone))

	if !a.Cursor().IsSet() {
		t.Fatal("cursor not placed by drag")
	}
	if got := a.Cursor().Value(); math.Abs(got-12) > 1e-9 {
		t.Errorf("cursor value = %v, want 12", got)
	}

	x, _ := a.View().ViewRange()
	if x != [2]float64{0, 40} {
		t.Errorf("cursor drag changed x range: %v", x)
	}
}

func TestZoomGestureAppliesXRange(t *testing.T) {
	a := newTestApp(t, Config{})
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'c', 0))
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'x', 0))

	a.handleMouse(mouseEvent(10, 5, tcell.ButtonPrimary))
	a.handleMouse(mouseEvent(30, 5, tcell.ButtonPrimary))
	a.handleMouse(mouseEvent(30, 5, tcell.ButtonNone))

	x, _ := a.View().ViewRange()
	if math.Abs(x[0]-10) > 1e-9 || math.Abs(x[1]-30) > 1e-9 {
		t.Errorf("x range = %v, want [10 30] after x zoom gesture", x)
	}
	if a.View().ZoomGestureActive() {
		t.Error("gesture still active after release")
	}
	if a.View().ScaleBoxState().Visible {
		t.Error("scale box still visible after gesture")
	}
}

func TestWheelZoomsView(t *testing.T) {
	a := newTestApp(t, Config{})

	a.handleMouse(mouseEvent(20, 5, tcell.WheelUp))

	s := math.Pow(1.02, 120*viewbox.DefaultWheelScaleFactor)
	x, _ := a.View().ViewRange()
	want := [2]float64{20 - 20*s, 20 + 20*s}
	if math.Abs(x[0]-want[0]) > 1e-9 || math.Abs(x[1]-want[1]) > 1e-9 {
		t.Errorf("x range = %v, want %v after wheel", x, want)
	}
}

func rightClick(a *App, x, y int) {
	a.handleMouse(mouseEvent(x, y, tcell.ButtonSecondary))
	a.handleMouse(mouseEvent(x, y, tcell.ButtonNone))
}

func TestRightClickOpensMenu(t *testing.T) {
	a := newTestApp(t, Config{})

	rightClick(a, 20, 5)

	if !a.menuOpen {
		t.Fatal("right click did not open the menu")
	}
	if len(a.menuEntries) != 2 {
		t.Fatalf("menu has %d entries, want 2 (rect stays unlisted)", len(a.menuEntries))
	}
	// The checked entry is preselected.
	if a.menuEntries[a.menuIndex].Label != menu.LabelPan {
		t.Errorf("preselected entry = %q, want %q", a.menuEntries[a.menuIndex].Label, menu.LabelPan)
	}
}

func TestRightDragDoesNotOpenMenu(t *testing.T) {
	a := newTestApp(t, Config{})

	a.handleMouse(mouseEvent(20, 5, tcell.ButtonSecondary))
	a.handleMouse(mouseEvent(25, 5, tcell.ButtonSecondary))
	a.handleMouse(mouseEvent(25, 5, tcell.ButtonNone))

	if a.menuOpen {
		t.Error("right drag opened the menu")
	}
}

func TestMenuKeyboardSelection(t *testing.T) {
	a := newTestApp(t, Config{})
	rightClick(a, 5, 2)

	a.handleKey(tcell.NewEventKey(tcell.KeyDown, 0, 0))
	a.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, 0))

	if a.menuOpen {
		t.Error("menu still open after selection")
	}
	if a.View().Mode() != viewbox.ModeCursor {
		t.Errorf("mode = %v after selecting cursor entry, want ModeCursor", a.View().Mode())
	}
}

func TestMenuEscapeCloses(t *testing.T) {
	a := newTestApp(t, Config{})
	rightClick(a, 5, 2)

	a.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, 0))

	if a.menuOpen {
		t.Error("menu still open after escape")
	}
	if a.quit {
		t.Error("escape quit instead of closing the menu")
	}
	if a.View().Mode() != viewbox.ModePan {
		t.Errorf("mode changed to %v on dismiss", a.View().Mode())
	}
}

func TestMenuMouseSelection(t *testing.T) {
	a := newTestApp(t, Config{})
	rightClick(a, 5, 2)

	// Entry rows start one cell below the popup's top border; the
	// second row is the cursor entry.
	x := a.menuPos.X + 2
	y := a.menuPos.Y + 2
	a.handleMouse(mouseEvent(x, y, tcell.ButtonPrimary))

	if a.menuOpen {
		t.Error("menu still open after click selection")
	}
	if a.View().Mode() != viewbox.ModeCursor {
		t.Errorf("mode = %v after clicking cursor entry, want ModeCursor", a.View().Mode())
	}

	// The click was consumed by the menu, not fed to the viewport.
	a.handleMouse(mouseEvent(x, y, tcell.ButtonNone))
	x0, _ := a.View().ViewRange()
	if x0 != [2]float64{0, 40} {
		t.Errorf("menu click leaked into the viewport: x range %v", x0)
	}
}

func TestMenuOutsideClickDismisses(t *testing.T) {
	a := newTestApp(t, Config{})
	rightClick(a, 2, 2)

	a.handleMouse(mouseEvent(39, 9, tcell.ButtonPrimary))
	a.handleMouse(mouseEvent(39, 9, tcell.ButtonNone))

	if a.menuOpen {
		t.Error("menu still open after outside click")
	}
	if a.View().Mode() != viewbox.ModePan {
		t.Errorf("outside click changed mode to %v", a.View().Mode())
	}
}

func TestMenuClampsToScreen(t *testing.T) {
	a := newTestApp(t, Config{})

	rightClick(a, 39, 10)

	w, h := renderer.MenuSize(a.menuEntries)
	if a.menuPos.X+w > 40 || a.menuPos.Y+h > 11 {
		t.Errorf("menu at %v size %dx%d overflows the 40x11 screen", a.menuPos, w, h)
	}
}

func TestSessionSaveAndRestore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.dspf")

	a := newTestApp(t, Config{SessionPath: path})
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, 'c', 0))
	a.Cursor().SetValue(17)
	a.SetSeries([]renderer.Series{{Name: "engine_speed"}})

	if err := a.saveSession(path); err != nil {
		t.Fatalf("saveSession: %v", err)
	}

	b := newTestApp(t, Config{})
	if err := b.loadSession(path); err != nil {
		t.Fatalf("loadSession: %v", err)
	}

	if b.View().Mode() != viewbox.ModeCursor {
		t.Errorf("restored mode = %v, want ModeCursor", b.View().Mode())
	}
	if !b.Cursor().IsSet() || b.Cursor().Value() != 17 {
		t.Errorf("restored cursor = %v set=%v, want 17", b.Cursor().Value(), b.Cursor().IsSet())
	}
}

func TestConfigDisablesYAxis(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "plotview.toml")
	writeFile(t, cfgPath, "[plot]\ny_mouse_enabled = false\n")

	a := newTestApp(t, Config{ConfigPath: cfgPath})
	if got := a.View().MouseEnabled(); got != [2]bool{true, false} {
		t.Errorf("mouse enabled = %v, want [true false]", got)
	}
}
