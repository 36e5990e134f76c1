// Package renderer draws the plot into a terminal screen: the channel
// traces, the cursor readout line, the zoom selection box and a status
// line with the current mode and visible range.
package renderer

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/plotview/internal/plot/cursor"
	"github.com/dshills/plotview/internal/plot/style"
	"github.com/dshills/plotview/internal/plot/transform"
	"github.com/dshills/plotview/internal/plot/viewbox"
)

// Series is one plotted channel's samples. X must be sorted ascending.
type Series struct {
	Name string
	X    []float64
	Y    []float64
}

// Renderer draws plot frames. It holds no screen state; every Draw
// renders a complete frame.
type Renderer struct {
	palette *style.Palette
}

// New creates a renderer using the given channel palette.
func New(palette *style.Palette) *Renderer {
	if palette == nil {
		palette = style.NewPalette()
	}
	return &Renderer{palette: palette}
}

// Draw renders one frame: traces, selection box, cursor and status
// line. The bottom row is reserved for status.
func (r *Renderer) Draw(screen tcell.Screen, vb *viewbox.ViewBox, cur *cursor.Line, series []Series) {
	w, h := screen.Size()
	plotH := h - 1
	if w <= 0 || plotH <= 0 {
		return
	}

	screen.Clear()

	tr := vb.ContentTransform()

	for _, s := range series {
		r.drawSeries(screen, tr, s, w, plotH)
	}

	if sb := vb.ScaleBoxState(); sb.Visible {
		drawBox(screen, tr.MapRect(sb.Rect), w, plotH)
	}

	if cur != nil && cur.IsVisible() {
		col := int(math.Round(tr.Map(transform.Point{X: cur.Value()}).X))
		if col >= 0 && col < w {
			st := tcell.StyleDefault.Foreground(tcell.ColorYellow)
			for row := 0; row < plotH; row++ {
				screen.SetContent(col, row, '│', nil, st)
			}
		}
	}

	r.drawStatus(screen, vb, w, h-1)
	screen.Show()
}

func (r *Renderer) drawSeries(screen tcell.Screen, tr transform.Transform, s Series, w, plotH int) {
	st := tcell.StyleDefault.Foreground(r.palette.Tcell(s.Name))

	n := len(s.X)
	if len(s.Y) < n {
		n = len(s.Y)
	}

	prevCol, prevRow := math.MinInt32, 0
	for i := 0; i < n; i++ {
		p := tr.Map(transform.Point{X: s.X[i], Y: s.Y[i]})
		col := int(math.Round(p.X))
		row := int(math.Round(p.Y))

		if col >= 0 && col < w && row >= 0 && row < plotH {
			screen.SetContent(col, row, '•', nil, st)
		}

		// Fill the vertical gap to the previous sample so steep slopes
		// stay connected.
		if prevCol != math.MinInt32 && col >= 0 && col < w && abs(col-prevCol) <= 1 {
			lo, hi := prevRow, row
			if lo > hi {
				lo, hi = hi, lo
			}
			for y := lo + 1; y < hi; y++ {
				if y >= 0 && y < plotH {
					screen.SetContent(col, y, '·', nil, st)
				}
			}
		}
		prevCol, prevRow = col, row
	}
}

func drawBox(screen tcell.Screen, r transform.Rect, w, plotH int) {
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	x1 := int(math.Round(r.X + r.W))
	y1 := int(math.Round(r.Y + r.H))
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}

	st := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	for x := x0; x <= x1; x++ {
		setClipped(screen, x, y0, '─', st, w, plotH)
		setClipped(screen, x, y1, '─', st, w, plotH)
	}
	for y := y0; y <= y1; y++ {
		setClipped(screen, x0, y, '│', st, w, plotH)
		setClipped(screen, x1, y, '│', st, w, plotH)
	}
	setClipped(screen, x0, y0, '┌', st, w, plotH)
	setClipped(screen, x1, y0, '┐', st, w, plotH)
	setClipped(screen, x0, y1, '└', st, w, plotH)
	setClipped(screen, x1, y1, '┘', st, w, plotH)
}

func setClipped(screen tcell.Screen, x, y int, ch rune, st tcell.Style, w, h int) {
	if x >= 0 && x < w && y >= 0 && y < h {
		screen.SetContent(x, y, ch, nil, st)
	}
}

func (r *Renderer) drawStatus(screen tcell.Screen, vb *viewbox.ViewBox, w, row int) {
	x, y := vb.ViewRange()
	text := fmt.Sprintf(" %s | x: [%.3g, %.3g] y: [%.3g, %.3g]", vb.Mode(), x[0], x[1], y[0], y[1])

	st := tcell.StyleDefault.Reverse(true)
	for col := 0; col < w; col++ {
		ch := ' '
		if col < len(text) {
			ch = rune(text[col])
		}
		screen.SetContent(col, row, ch, nil, st)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
