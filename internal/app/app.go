package app

import (
	"context"
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/plotview/internal/config"
	"github.com/dshills/plotview/internal/config/registry"
	"github.com/dshills/plotview/internal/event"
	"github.com/dshills/plotview/internal/event/events"
	"github.com/dshills/plotview/internal/input/key"
	"github.com/dshills/plotview/internal/input/mouse"
	"github.com/dshills/plotview/internal/plot/cursor"
	"github.com/dshills/plotview/internal/plot/menu"
	"github.com/dshills/plotview/internal/plot/style"
	"github.com/dshills/plotview/internal/plot/viewbox"
	"github.com/dshills/plotview/internal/renderer"
	"github.com/dshills/plotview/internal/renderer/backend"
	"github.com/dshills/plotview/internal/session"
)

// Config configures the application.
type Config struct {
	// ConfigPath is the optional TOML settings file.
	ConfigPath string

	// SessionPath is the optional display session file, loaded at
	// startup and saved on exit.
	SessionPath string

	// Logger is the application logger. Nil uses NullLogger so log
	// output never corrupts the terminal by accident.
	Logger *Logger

	// Terminal overrides the screen backend, used by tests.
	Terminal *backend.Terminal
}

// App owns the application wiring: screen, bus, input translation,
// viewport, menu, cursor and renderer. All event handling runs on the
// goroutine that calls Run.
type App struct {
	log      *Logger
	bus      *event.Bus
	term     *backend.Terminal
	settings *registry.Accessor

	view       *viewbox.ViewBox
	menuCtl    *menu.Controller
	cursorLine *cursor.Line
	tracker    *mouse.Tracker
	palette    *style.Palette
	rend       *renderer.Renderer

	series          []renderer.Series
	sessionPath     string
	sessionRestored bool
	quit            bool

	// Context menu overlay state, populated while the popup is open.
	menuOpen    bool
	menuEntries []menu.Entry
	menuPos     mouse.Position
	menuIndex   int
}

// settingsAdapter exposes the config accessor through the narrow
// interface the viewport reads per event.
type settingsAdapter struct {
	acc *registry.Accessor
}

func (s settingsAdapter) ZoomCenterOnCursor() bool {
	v, err := s.acc.GetBool(config.KeyZoomCenterOnCursor)
	if err != nil {
		return true
	}
	return v
}

// New builds a fully wired application.
func New(cfg Config) (*App, error) {
	log := cfg.Logger
	if log == nil {
		log = NullLogger
	}

	acc, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("app: load config: %w", err)
	}

	term := cfg.Terminal
	if term == nil {
		term, err = backend.NewTerminal()
		if err != nil {
			return nil, fmt.Errorf("app: terminal: %w", err)
		}
	}

	bus := event.NewBus(event.WithPanicHandler(func(ev any, recovered any) {
		log.Error("handler panic on %T: %v", ev, recovered)
	}))

	wheelFactor, err := acc.GetFloat64(config.KeyWheelScaleFactor)
	if err != nil {
		return nil, fmt.Errorf("app: settings: %w", err)
	}
	xEnabled, err := acc.GetBool(config.KeyXMouseEnabled)
	if err != nil {
		return nil, fmt.Errorf("app: settings: %w", err)
	}
	yEnabled, err := acc.GetBool(config.KeyYMouseEnabled)
	if err != nil {
		return nil, fmt.Errorf("app: settings: %w", err)
	}

	line := cursor.NewLine()

	view := viewbox.New(
		viewbox.WithPublisher(bus),
		viewbox.WithSettings(settingsAdapter{acc: acc}),
		viewbox.WithCursor(line),
		viewbox.WithMouseEnabled(xEnabled, yEnabled),
		viewbox.WithWheelScaleFactor(wheelFactor),
	)

	menuCtl, err := menu.New(view, bus)
	if err != nil {
		return nil, err
	}

	palette := style.NewPalette()

	a := &App{
		log:         log.WithComponent("app"),
		bus:         bus,
		term:        term,
		settings:    acc,
		view:        view,
		menuCtl:     menuCtl,
		cursorLine:  line,
		tracker:     mouse.NewTracker(nil),
		palette:     palette,
		rend:        renderer.New(palette),
		sessionPath: cfg.SessionPath,
	}

	if err := a.subscribe(); err != nil {
		return nil, err
	}

	if cfg.SessionPath != "" {
		if err := a.loadSession(cfg.SessionPath); err != nil {
			log.Warn("session not restored: %v", err)
		}
	}

	return a, nil
}

// subscribe wires the handlers that react to viewport notifications:
// cursor placement and applying finished zoom gestures.
func (a *App) subscribe() error {
	_, err := a.bus.Subscribe(events.TopicPlotCursorMoved,
		event.HandlerFunc(a.onCursorMoved), event.WithPriority(event.PriorityHigh))
	if err != nil {
		return fmt.Errorf("app: subscribe: %w", err)
	}

	_, err = a.bus.Subscribe(events.TopicPlotZoomFinished,
		event.HandlerFunc(a.onZoomFinished), event.WithPriority(event.PriorityHigh))
	if err != nil {
		return fmt.Errorf("app: subscribe: %w", err)
	}
	return nil
}

// Bus exposes the event bus for additional listeners.
func (a *App) Bus() *event.Bus { return a.bus }

// View exposes the viewport.
func (a *App) View() *viewbox.ViewBox { return a.view }

// Menu exposes the menu controller.
func (a *App) Menu() *menu.Controller { return a.menuCtl }

// Cursor exposes the cursor line.
func (a *App) Cursor() *cursor.Line { return a.cursorLine }

// SetSeries replaces the plotted channels and auto-ranges the view to
// their bounds unless a restored session already set a range.
func (a *App) SetSeries(series []renderer.Series) {
	a.series = series

	if a.sessionRestored || len(series) == 0 {
		return
	}
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, v := range s.X {
			xmin, xmax = math.Min(xmin, v), math.Max(xmax, v)
		}
		for _, v := range s.Y {
			ymin, ymax = math.Min(ymin, v), math.Max(ymax, v)
		}
	}
	if xmin < xmax && ymin < ymax {
		a.view.SetXRange(xmin, xmax, 0.02)
		a.view.SetYRange(ymin, ymax, 0.05)
		a.view.SetTargetRange([2]float64{xmin, xmax}, [2]float64{ymin, ymax})
	}
}

// Run initializes the terminal and processes events until Quit.
func (a *App) Run() error {
	if err := a.term.Init(); err != nil {
		return fmt.Errorf("app: init terminal: %w", err)
	}
	defer a.term.Shutdown()

	w, h := a.term.Size()
	a.view.SetSceneSize(float64(w), float64(h-1))
	a.log.Info("started %dx%d", w, h)

	a.redraw()

	screen := a.term.Screen()
	for !a.quit {
		ev := screen.PollEvent()
		if ev == nil {
			break
		}
		a.handleEvent(ev)
		a.redraw()
	}

	if a.sessionPath != "" {
		if err := a.saveSession(a.sessionPath); err != nil {
			a.log.Error("session not saved: %v", err)
		}
	}
	return nil
}

// Quit stops the event loop after the current event.
func (a *App) Quit() {
	a.quit = true
}

func (a *App) handleEvent(ev tcell.Event) {
	switch tev := ev.(type) {
	case *tcell.EventResize:
		w, h := tev.Size()
		a.view.SetSceneSize(float64(w), float64(h-1))
		a.tracker.Reset()

	case *tcell.EventKey:
		a.handleKey(tev)

	case *tcell.EventMouse:
		a.handleMouse(tev)
	}
}

// handleKey maps terminal keys onto the viewport's keyboard protocol.
// Terminals report no key releases, so dedicated keys arm and disarm
// the zoom chords that a desktop toolkit would derive from held
// modifiers.
func (a *App) handleKey(ev *tcell.EventKey) {
	if a.menuOpen {
		a.handleMenuKey(ev)
		return
	}

	switch {
	case ev.Key() == tcell.KeyCtrlC:
		a.Quit()

	case ev.Key() == tcell.KeyEscape:
		// Escape first disarms a pending chord, then quits.
		if _, armed := a.view.ArmedZoom(); armed {
			a.view.KeyRelease()
			return
		}
		a.Quit()

	case ev.Key() == tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			a.Quit()
		case 'p':
			a.setMode("pan")
		case 'c':
			a.setMode("cursor")
		case 'x':
			a.view.KeyPress(viewbox.XZoom)
		case 'y':
			a.view.KeyPress(viewbox.YZoom)
		case 'b':
			a.view.KeyPress(viewbox.XYZoom[0])
		case 'h':
			if a.cursorLine.IsVisible() {
				a.cursorLine.Hide()
			} else {
				a.cursorLine.Show()
			}
		default:
			a.view.KeyPress(key.ComboFromTcell(ev))
		}

	default:
		a.view.KeyPress(key.ComboFromTcell(ev))
	}
}

func (a *App) setMode(name string) {
	if err := a.menuCtl.SetMouseMode(name); err != nil {
		a.log.Warn("mode not set: %v", err)
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	for _, mev := range a.tracker.Translate(ev) {
		if a.menuOpen {
			a.handleMenuMouse(mev)
			continue
		}

		switch mev.Action {
		case mouse.ActionPress:
			a.view.MousePress(mev)
		case mouse.ActionDrag:
			a.view.MouseDrag(mev)
			if a.view.ZoomGestureActive() {
				a.view.UpdateScaleBox(mev.ButtonDownScene, mev.Scene)
			}
		case mouse.ActionRelease:
			a.view.KeyRelease()
			a.view.HideScaleBox()
			// A right click (press and release with no drag in
			// between) pops up the context menu.
			if mev.Button == mouse.ButtonRight && mev.Scene == mev.ButtonDownScene {
				a.openMenu(mev.Screen)
			}
		case mouse.ActionWheel:
			a.view.Wheel(mev)
		}
	}
}

// openMenu refreshes the menu entries and shows the popup near the
// click position, clamped so the box stays on screen.
func (a *App) openMenu(pos mouse.Position) {
	entries := a.menuCtl.Popup()
	if len(entries) == 0 {
		return
	}

	w, h := renderer.MenuSize(entries)
	sw, sh := a.term.Size()
	if pos.X+w > sw {
		pos.X = sw - w
	}
	if pos.Y+h > sh {
		pos.Y = sh - h
	}
	if pos.X < 0 {
		pos.X = 0
	}
	if pos.Y < 0 {
		pos.Y = 0
	}

	a.menuEntries = entries
	a.menuPos = pos
	a.menuIndex = 0
	for i, e := range entries {
		if e.Checked {
			a.menuIndex = i
		}
	}
	a.menuOpen = true
}

func (a *App) closeMenu() {
	a.menuOpen = false
	a.menuEntries = nil
}

func (a *App) selectMenuEntry(i int) {
	if i >= 0 && i < len(a.menuEntries) {
		if err := a.menuCtl.Select(a.menuEntries[i].Label); err != nil {
			a.log.Warn("menu selection failed: %v", err)
		}
	}
	a.closeMenu()
}

func (a *App) handleMenuKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		a.closeMenu()
	case tcell.KeyUp:
		if a.menuIndex > 0 {
			a.menuIndex--
		}
	case tcell.KeyDown:
		if a.menuIndex < len(a.menuEntries)-1 {
			a.menuIndex++
		}
	case tcell.KeyEnter:
		a.selectMenuEntry(a.menuIndex)
	}
}

// handleMenuMouse hit-tests presses against the open popup: a press on
// an entry row selects it, a press anywhere else dismisses the menu.
func (a *App) handleMenuMouse(mev *mouse.Event) {
	if mev.Action != mouse.ActionPress {
		return
	}

	w, h := renderer.MenuSize(a.menuEntries)
	inside := mev.Screen.X >= a.menuPos.X && mev.Screen.X < a.menuPos.X+w &&
		mev.Screen.Y >= a.menuPos.Y && mev.Screen.Y < a.menuPos.Y+h
	if !inside {
		a.closeMenu()
		return
	}

	row := mev.Screen.Y - a.menuPos.Y - 1
	if row >= 0 && row < len(a.menuEntries) {
		a.selectMenuEntry(row)
	}
}

func (a *App) onCursorMoved(_ context.Context, raw any) error {
	cm, ok := raw.(events.CursorMoved)
	if !ok || cm.Event == nil {
		return nil
	}
	p := a.view.MapSceneToView(cm.Event.Scene)
	a.cursorLine.SetValue(p.X)
	return nil
}

func (a *App) onZoomFinished(_ context.Context, raw any) error {
	zf, ok := raw.(events.ZoomFinished)
	if !ok {
		return nil
	}

	r := zf.Region
	switch r.Combo {
	case viewbox.XZoom:
		a.view.SetXRange(r.Start.X, r.End.X, 0)
	case viewbox.YZoom:
		a.view.SetYRange(r.Start.Y, r.End.Y, 0)
	case viewbox.XYZoom[0], viewbox.XYZoom[1]:
		a.view.SetXRange(r.Start.X, r.End.X, 0)
		a.view.SetYRange(r.Start.Y, r.End.Y, 0)
	}
	a.view.HideScaleBox()
	return nil
}

func (a *App) redraw() {
	a.rend.Draw(a.term.Screen(), a.view, a.cursorLine, a.series)
	if a.menuOpen {
		a.rend.DrawMenu(a.term.Screen(), a.menuEntries, a.menuPos.X, a.menuPos.Y, a.menuIndex)
	}
}

func (a *App) loadSession(path string) error {
	s, err := session.Load(path)
	if err != nil {
		return err
	}
	if err := a.view.RestoreState(s.View); err != nil {
		return err
	}
	if s.Cursor.Set {
		a.cursorLine.SetValue(s.Cursor.Value)
		if !s.Cursor.Visible {
			a.cursorLine.Hide()
		}
	}
	for _, ch := range s.Channels {
		if c, err := style.ParseHex(ch.Color); err == nil {
			a.palette.SetColor(ch.Name, c)
		}
	}
	a.sessionRestored = true
	a.log.Info("session restored from %s", path)
	return nil
}

func (a *App) saveSession(path string) error {
	s := session.Session{
		View: a.view.State(),
		Cursor: session.Cursor{
			Set:     a.cursorLine.IsSet(),
			Value:   a.cursorLine.Value(),
			Visible: a.cursorLine.IsVisible(),
		},
	}
	for _, sr := range a.series {
		s.Channels = append(s.Channels, session.Channel{
			Name:  sr.Name,
			Color: a.palette.Hex(sr.Name),
		})
	}
	return session.Save(path, s)
}
