package viewbox

import (
	"math"

	"github.com/dshills/plotview/internal/event/events"
	"github.com/dshills/plotview/internal/input/key"
	"github.com/dshills/plotview/internal/input/mouse"
	"github.com/dshills/plotview/internal/plot/transform"
)

// Axis selects a single axis for constrained handlers, e.g. when an
// axis item forwards a drag that may only affect its own axis.
type Axis int

const (
	// AxisX is the horizontal axis.
	AxisX Axis = 0
	// AxisY is the vertical axis.
	AxisY Axis = 1
)

// Keyboard chords that arm a constrained zoom gesture. A bare Shift
// press arms x zoom, a bare Alt press arms y zoom, and either key
// pressed while the other is held arms both axes.
var (
	XZoom = key.ComboOf(key.ModShift, key.KeyShift)
	YZoom = key.ComboOf(key.ModAlt, key.KeyAlt)

	XYZoom = [2]key.Combo{
		key.ComboOf(key.ModShift|key.ModAlt, key.KeyAlt),
		key.ComboOf(key.ModShift|key.ModAlt, key.KeyShift),
	}
)

func isZoomCombo(c key.Combo) bool {
	return c == XZoom || c == YZoom || c == XYZoom[0] || c == XYZoom[1]
}

type handlerConfig struct {
	axis         *Axis
	ignoreCursor bool
}

// HandlerOption adjusts how an input handler interprets an event.
type HandlerOption func(*handlerConfig)

// WithAxis restricts the handler's effect to a single axis.
func WithAxis(a Axis) HandlerOption {
	return func(c *handlerConfig) {
		ax := a
		c.axis = &ax
	}
}

// WithIgnoreCursor makes a drag behave as in pan mode even while the
// viewport is in cursor mode.
func WithIgnoreCursor() HandlerOption {
	return func(c *handlerConfig) {
		c.ignoreCursor = true
	}
}

func applyHandlerOptions(opts []HandlerOption) handlerConfig {
	var cfg handlerConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// KeyPress arms the zoom chord. While a gesture is in progress the
// armed chord is frozen so releasing a key mid-drag does not change
// the gesture's meaning. The event is never consumed.
func (vb *ViewBox) KeyPress(c key.Combo) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	if vb.gestureStart == nil {
		vb.zoom = c
		vb.zoomArmed = true
	}
}

// KeyRelease disarms the zoom chord unless a gesture is in progress.
// The event is never consumed.
func (vb *ViewBox) KeyRelease() {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	if vb.gestureStart == nil {
		vb.zoom = key.ComboNone
		vb.zoomArmed = false
	}
}

// MousePress starts a constrained zoom gesture when the viewport is in
// cursor mode and a zoom chord is armed. The event is never consumed,
// so the host still delivers the subsequent drag.
func (vb *ViewBox) MousePress(ev *mouse.Event) {
	vb.mu.Lock()
	defer vb.mu.Unlock()
	if vb.mode == ModeCursor && vb.zoomArmed && isZoomCombo(vb.zoom) {
		start := vb.mapSceneToViewLocked(ev.Scene)
		vb.gestureStart = &start
	}
}

// MouseDrag handles a drag event according to the current mode.
//
// In cursor mode the primary button drives the cursor readout and, if a
// zoom gesture is in progress, the gesture lifecycle; any other button
// pans the x axis only. Outside cursor mode the primary and middle
// buttons pan and the secondary button scales about the position where
// it was pressed. All branches consume the event.
func (vb *ViewBox) MouseDrag(ev *mouse.Event, opts ...HandlerOption) {
	cfg := applyHandlerOptions(opts)
	ev.Accept()

	vb.mu.Lock()

	// Movement is applied opposite to the drag direction and masked by
	// the per-axis enable flags (plus any axis restriction).
	dif := ev.SceneDelta().Scaled(-1)
	mouseEnabled := vb.mouseEnabled
	mask := [2]float64{boolToFloat(mouseEnabled[0]), boolToFloat(mouseEnabled[1])}
	if cfg.axis != nil {
		mask[1-*cfg.axis] = 0
	}

	if vb.mode == ModeCursor && !cfg.ignoreCursor {
		if ev.Button == mouse.ButtonLeft {
			pending := []any{events.CursorMoved{Event: ev}}
			if vb.gestureStart != nil {
				region := events.ZoomRegion{
					Start: *vb.gestureStart,
					End:   vb.mapSceneToViewLocked(ev.Scene),
					Combo: vb.zoom,
				}
				pending = append(pending, events.ZoomChanged{Region: &region})
				if ev.IsFinish() {
					vb.gestureStart = nil
					pending = append(pending,
						events.ZoomFinished{Region: region},
						events.ZoomChanged{Region: nil},
					)
				}
			}
			vb.mu.Unlock()
			vb.publish(pending...)
			return
		}

		// Any other button pans the x axis only.
		inv, err := vb.contentTransformLocked().Invert()
		if err != nil {
			vb.mu.Unlock()
			return
		}
		d := inv.MapVec(dif.ScaledXY(mask[0], mask[1]))

		vb.resetTargetLocked()
		if mask[0] == 1 {
			vb.translateByLocked(d.X, 0)
		}
		vb.mu.Unlock()
		vb.publish(events.RangeChanged{Axis: mouseEnabled})
		return
	}

	switch {
	case ev.Button == mouse.ButtonLeft || ev.Button == mouse.ButtonMiddle:
		inv, err := vb.contentTransformLocked().Invert()
		if err != nil {
			vb.mu.Unlock()
			return
		}
		d := inv.MapVec(dif.ScaledXY(mask[0], mask[1]))

		var dx, dy float64
		if mask[0] == 1 {
			dx = d.X
		}
		if mask[1] == 1 {
			dy = d.Y
		}

		vb.resetTargetLocked()
		if mask[0] == 1 || mask[1] == 1 {
			vb.translateByLocked(dx, dy)
		}
		vb.mu.Unlock()
		vb.publish(events.RangeChanged{Axis: mouseEnabled})

	case ev.Button == mouse.ButtonRight:
		if vb.aspectLocked {
			mask[0] = 0
		}

		// Scale grows exponentially with screen-space movement; the x
		// component is sign inverted so dragging right zooms in.
		sd := ev.ScreenDelta()
		sx := math.Pow(mask[0]*0.02+1, -float64(sd.X))
		sy := math.Pow(mask[1]*0.02+1, float64(sd.Y))

		var px, py *float64
		if mouseEnabled[0] {
			px = &sx
		}
		if mouseEnabled[1] {
			py = &sy
		}

		inv, err := vb.contentTransformLocked().Invert()
		if err != nil {
			vb.mu.Unlock()
			return
		}
		center := inv.Map(ev.ButtonDownScene)

		vb.resetTargetLocked()
		vb.scaleByLocked(px, py, center)
		vb.mu.Unlock()
		vb.publish(events.RangeChanged{Axis: mouseEnabled})

	default:
		vb.mu.Unlock()
	}
}

// Wheel handles a scroll event. When cursor centering is enabled and
// the cursor line is visible, the x range stays centered on the cursor
// and grows or shrinks by 15% per wheel tick. Otherwise the enabled
// axes scale about the pointer position. The event is always consumed
// and a manual range change is published with the effective axis mask.
func (vb *ViewBox) Wheel(ev *mouse.Event, opts ...HandlerOption) {
	cfg := applyHandlerOptions(opts)

	// Read the sibling cursor before taking the state lock.
	centerOnCursor := vb.zoomCenterOnCursor() && vb.cursor != nil && vb.cursor.IsVisible()
	var cursorPos float64
	if centerOnCursor {
		cursorPos = vb.cursor.Value()
	}

	vb.mu.Lock()

	var mask [2]bool
	switch {
	case vb.mode == ModeCursor:
		mask = [2]bool{true, false}
	case cfg.axis != nil:
		mask[*cfg.axis] = vb.mouseEnabled[*cfg.axis]
	default:
		mask = vb.mouseEnabled
	}

	if centerOnCursor {
		width := vb.xRange[1] - vb.xRange[0]
		step := -width * (ev.WheelDelta * 0.15 / mouse.WheelStep)
		vb.setXRangeLocked(cursorPos-width/2-step, cursorPos+width/2+step, 0)
	} else {
		s := math.Pow(1.02, ev.WheelDelta*vb.wheelScaleFactor)
		sx, sy := s, s

		var px, py *float64
		if mask[0] {
			px = &sx
		}
		if mask[1] {
			py = &sy
		}

		center := vb.mapSceneToViewLocked(ev.Scene)
		vb.resetTargetLocked()
		vb.scaleByLocked(px, py, center)
	}

	vb.mu.Unlock()

	ev.Accept()
	vb.publish(events.RangeChanged{Axis: mask})
}

// UpdateScaleBox positions the selection-box overlay between two scene
// corners and makes it visible.
func (vb *ViewBox) UpdateScaleBox(p1, p2 transform.Point) {
	vb.mu.Lock()
	defer vb.mu.Unlock()

	r := transform.FromPoints(p1, p2)
	if inv, err := vb.contentTransformLocked().Invert(); err == nil {
		r = inv.MapRect(r)
	}
	vb.scaleBox = ScaleBox{Rect: r, Visible: true}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
