// Package viewbox implements the interactive viewport of a 2D plot:
// mode-dependent mouse-drag handling, keyboard-armed constrained zoom
// gestures, wheel zoom with optional cursor centering, and the
// notifications sibling widgets consume.
package viewbox

import (
	"context"
	"fmt"
	"sync"

	"github.com/dshills/plotview/internal/event"
	"github.com/dshills/plotview/internal/event/events"
	"github.com/dshills/plotview/internal/input/key"
	"github.com/dshills/plotview/internal/plot/transform"
)

// CursorLine is the non-owning view of the sibling cursor readout the
// viewport consults for wheel-zoom centering.
type CursorLine interface {
	// Value returns the cursor's data-space x position.
	Value() float64

	// IsVisible reports whether the cursor is shown.
	IsVisible() bool
}

// Settings supplies the persisted flags the viewport reads per event.
// Injecting it keeps the viewport testable without a settings store.
type Settings interface {
	// ZoomCenterOnCursor reports whether wheel zoom keeps the visible
	// x-range centered on the cursor line.
	ZoomCenterOnCursor() bool
}

// ScaleBox is the persistent selection-box overlay, in content
// coordinates.
type ScaleBox struct {
	Rect    transform.Rect
	Visible bool
}

// State is a snapshot of the viewport's restorable state.
type State struct {
	Mode             Mode
	XRange           [2]float64
	YRange           [2]float64
	MouseEnabled     [2]bool
	AspectLocked     bool
	WheelScaleFactor float64
}

// DefaultWheelScaleFactor is the scale exponent per wheel delta unit:
// one discrete tick (120 units) scales the view by 1.02^-15.
const DefaultWheelScaleFactor = -1.0 / 8.0

// ViewBox is a 2D viewport with mode-dependent mouse interaction.
//
// All input handlers run synchronously on the host event goroutine and
// publish notifications in the exact order the state changes happen.
type ViewBox struct {
	mu sync.Mutex

	mode             Mode
	mouseEnabled     [2]bool
	aspectLocked     bool
	wheelScaleFactor float64

	xRange [2]float64
	yRange [2]float64

	// Pending auto-range target; cleared by any explicit transform.
	targetX   [2]float64
	targetY   [2]float64
	targetSet bool

	sceneW float64
	sceneH float64

	scaleBox ScaleBox

	// Armed zoom chord and in-progress gesture. A nil gestureStart
	// means no gesture.
	zoom         key.Combo
	zoomArmed    bool
	gestureStart *transform.Point

	cursor   CursorLine
	settings Settings
	bus      event.Publisher
}

// Option configures a ViewBox.
type Option func(*ViewBox)

// WithPublisher sets the bus notifications are published on.
func WithPublisher(p event.Publisher) Option {
	return func(vb *ViewBox) {
		vb.bus = p
	}
}

// WithSettings injects the settings accessor.
func WithSettings(s Settings) Option {
	return func(vb *ViewBox) {
		vb.settings = s
	}
}

// WithCursor sets the sibling cursor line consulted by wheel zoom.
func WithCursor(c CursorLine) Option {
	return func(vb *ViewBox) {
		vb.cursor = c
	}
}

// WithSceneSize sets the scene (pixel) size of the viewport.
func WithSceneSize(w, h float64) Option {
	return func(vb *ViewBox) {
		vb.sceneW = w
		vb.sceneH = h
	}
}

// WithMouseEnabled sets the per-axis mouse-interaction mask.
func WithMouseEnabled(x, y bool) Option {
	return func(vb *ViewBox) {
		vb.mouseEnabled = [2]bool{x, y}
	}
}

// WithAspectLocked locks the aspect ratio.
func WithAspectLocked() Option {
	return func(vb *ViewBox) {
		vb.aspectLocked = true
	}
}

// WithWheelScaleFactor overrides the wheel scale exponent.
func WithWheelScaleFactor(f float64) Option {
	return func(vb *ViewBox) {
		vb.wheelScaleFactor = f
	}
}

// WithRange sets the initial visible range.
func WithRange(x, y [2]float64) Option {
	return func(vb *ViewBox) {
		vb.xRange = x
		vb.yRange = y
	}
}

// New creates a ViewBox in pan mode with both axes enabled.
func New(opts ...Option) *ViewBox {
	vb := &ViewBox{
		mode:             ModePan,
		mouseEnabled:     [2]bool{true, true},
		wheelScaleFactor: DefaultWheelScaleFactor,
		xRange:           [2]float64{0, 1},
		yRange:           [2]float64{0, 1},
		sceneW:           100,
		sceneH:           100,
	}
	for _, opt := range opts {
		opt(vb)
	}
	return vb
}

// SetMouseMode sets the mouse interaction mode and broadcasts a
// state-change notification. The mode is left unchanged on error.
func (vb *ViewBox) SetMouseMode(m Mode) error {
	if !m.IsValid() {
		return fmt.Errorf("%w (got %d)", ErrInvalidMode, m)
	}

	vb.mu.Lock()
	vb.mode = m
	vb.mu.Unlock()

	vb.publish(events.ViewStateChanged{Mode: m.String()})
	return nil
}

// SetLeftButtonAction is the legacy string-based mode setter. It
// accepts "pan", "cursor" and "rect" in any case.
func (vb *ViewBox) SetLeftButtonAction(name string) error {
	m, err := ParseMode(name)
	if err != nil {
		return err
	}
	return vb.SetMouseMode(m)
}

// Mode returns the current mouse interaction mode.
func (vb *ViewBox) Mode() Mode {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return vb.mode
}

// SetMouseEnabled sets the per-axis mouse-interaction mask.
func (vb *ViewBox) SetMouseEnabled(x, y bool) {
	vb.mu.Lock()
	vb.mouseEnabled = [2]bool{x, y}
	vb.mu.Unlock()

	vb.publish(events.ViewStateChanged{Mode: vb.Mode().String()})
}

// MouseEnabled returns the per-axis mouse-interaction mask.
func (vb *ViewBox) MouseEnabled() [2]bool {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return vb.mouseEnabled
}

// SetAspectLocked locks or unlocks the aspect ratio.
func (vb *ViewBox) SetAspectLocked(locked bool) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.aspectLocked = locked
}

// SetWheelScaleFactor sets the wheel scale exponent.
func (vb *ViewBox) SetWheelScaleFactor(f float64) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.wheelScaleFactor = f
}

// SetSceneSize updates the scene (pixel) size, e.g. after a resize.
func (vb *ViewBox) SetSceneSize(w, h float64) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.sceneW = w
	vb.sceneH = h
}

// ViewRange returns the visible x and y ranges.
func (vb *ViewBox) ViewRange() (x, y [2]float64) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return vb.xRange, vb.yRange
}

// SetXRange sets the visible x range with a padding fraction applied
// to each side.
func (vb *ViewBox) SetXRange(min, max, padding float64) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.setXRangeLocked(min, max, padding)
}

// SetYRange sets the visible y range with a padding fraction applied
// to each side.
func (vb *ViewBox) SetYRange(min, max, padding float64) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.setYRangeLocked(min, max, padding)
}

// SetTargetRange records a pending auto-range target. Any explicit
// transform from an input handler clears it.
func (vb *ViewBox) SetTargetRange(x, y [2]float64) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.targetX = x
	vb.targetY = y
	vb.targetSet = true
}

// HasTargetRange reports whether an auto-range target is pending.
func (vb *ViewBox) HasTargetRange() bool {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return vb.targetSet
}

// TranslateBy shifts the visible range by data-space offsets.
func (vb *ViewBox) TranslateBy(dx, dy float64) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.translateByLocked(dx, dy)
}

// ScaleBy scales the visible range about a data-space center point.
// A nil factor leaves that axis untouched.
func (vb *ViewBox) ScaleBy(x, y *float64, center transform.Point) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.scaleByLocked(x, y, center)
}

// MapSceneToView maps a scene position to data coordinates.
func (vb *ViewBox) MapSceneToView(p transform.Point) transform.Point {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return vb.mapSceneToViewLocked(p)
}

// MapViewToScene maps a data position to scene coordinates.
func (vb *ViewBox) MapViewToScene(p transform.Point) transform.Point {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return vb.contentTransformLocked().Map(p)
}

// ContentTransform returns the current data-to-scene transform.
func (vb *ViewBox) ContentTransform() transform.Transform {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return vb.contentTransformLocked()
}

// ScaleBoxState returns the selection-box overlay state.
func (vb *ViewBox) ScaleBoxState() ScaleBox {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return vb.scaleBox
}

// HideScaleBox hides the selection-box overlay.
func (vb *ViewBox) HideScaleBox() {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	vb.scaleBox.Visible = false
}

// ZoomGestureActive reports whether a constrained zoom drag is in
// progress.
func (vb *ViewBox) ZoomGestureActive() bool {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return vb.gestureStart != nil
}

// ArmedZoom returns the armed zoom chord, if any.
func (vb *ViewBox) ArmedZoom() (key.Combo, bool) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return vb.zoom, vb.zoomArmed
}

// State returns a snapshot of the restorable viewport state.
func (vb *ViewBox) State() State {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	return State{
		Mode:             vb.mode,
		XRange:           vb.xRange,
		YRange:           vb.yRange,
		MouseEnabled:     vb.mouseEnabled,
		AspectLocked:     vb.aspectLocked,
		WheelScaleFactor: vb.wheelScaleFactor,
	}
}

// RestoreState applies a snapshot and broadcasts a state change.
func (vb *ViewBox) RestoreState(st State) error {
	if !st.Mode.IsValid() {
		return fmt.Errorf("%w (got %d)", ErrInvalidMode, st.Mode)
	}

	vb.mu.Lock()
	vb.mode = st.Mode
	vb.xRange = st.XRange
	vb.yRange = st.YRange
	vb.mouseEnabled = st.MouseEnabled
	vb.aspectLocked = st.AspectLocked
	if st.WheelScaleFactor != 0 {
		vb.wheelScaleFactor = st.WheelScaleFactor
	}
	vb.mu.Unlock()

	vb.publish(events.ViewStateChanged{Mode: st.Mode.String()})
	return nil
}

// contentTransformLocked derives the data-to-scene transform from the
// visible range and scene size. Scene y grows downward, so the y scale
// is negative. Degenerate ranges map with unit scale to keep the
// transform invertible.
func (vb *ViewBox) contentTransformLocked() transform.Transform {
	sx, sy := 1.0, -1.0
	tx, ty := 0.0, 0.0

	if dx := vb.xRange[1] - vb.xRange[0]; dx != 0 && vb.sceneW != 0 {
		sx = vb.sceneW / dx
	}
	tx = -vb.xRange[0] * sx

	if dy := vb.yRange[1] - vb.yRange[0]; dy != 0 && vb.sceneH != 0 {
		sy = -vb.sceneH / dy
	}
	ty = -vb.yRange[1] * sy

	return transform.Transform{SX: sx, SY: sy, TX: tx, TY: ty}
}

func (vb *ViewBox) mapSceneToViewLocked(p transform.Point) transform.Point {
	inv, err := vb.contentTransformLocked().Invert()
	if err != nil {
		return transform.Point{}
	}
	return inv.Map(p)
}

func (vb *ViewBox) setXRangeLocked(min, max, padding float64) {
	if min > max {
		min, max = max, min
	}
	p := (max - min) * padding
	vb.xRange = [2]float64{min - p, max + p}
}

func (vb *ViewBox) setYRangeLocked(min, max, padding float64) {
	if min > max {
		min, max = max, min
	}
	p := (max - min) * padding
	vb.yRange = [2]float64{min - p, max + p}
}

func (vb *ViewBox) translateByLocked(dx, dy float64) {
	vb.xRange[0] += dx
	vb.xRange[1] += dx
	vb.yRange[0] += dy
	vb.yRange[1] += dy
}

func (vb *ViewBox) scaleByLocked(x, y *float64, center transform.Point) {
	if x != nil {
		vb.xRange[0] = center.X + (vb.xRange[0]-center.X)**x
		vb.xRange[1] = center.X + (vb.xRange[1]-center.X)**x
	}
	if y != nil {
		vb.yRange[0] = center.Y + (vb.yRange[0]-center.Y)**y
		vb.yRange[1] = center.Y + (vb.yRange[1]-center.Y)**y
	}
}

// resetTargetLocked clears a pending auto-range target before an
// explicit transform takes over.
func (vb *ViewBox) resetTargetLocked() {
	vb.targetSet = false
	vb.targetX = vb.xRange
	vb.targetY = vb.yRange
}

// publish sends notifications outside the state lock.
func (vb *ViewBox) publish(evs ...any) {
	if vb.bus == nil {
		return
	}
	for _, e := range evs {
		_ = vb.bus.Publish(context.Background(), e)
	}
}

func (vb *ViewBox) zoomCenterOnCursor() bool {
	if vb.settings == nil {
		return true
	}
	return vb.settings.ZoomCenterOnCursor()
}
