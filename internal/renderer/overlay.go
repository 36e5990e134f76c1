package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/plotview/internal/plot/menu"
)

// MenuSize returns the cell dimensions of the menu overlay for the
// given entries, border included. Hit testing in the input layer uses
// the same geometry.
func MenuSize(entries []menu.Entry) (w, h int) {
	for _, e := range entries {
		if len(e.Label) > w {
			w = len(e.Label)
		}
	}
	// Border, check marker and padding around the widest label.
	w += 6
	h = len(entries) + 2
	return w, h
}

// DrawMenu renders the context menu overlay with its top-left corner
// at (x, y). The selected row is highlighted; the checked entry
// carries a marker. The caller clamps (x, y) so the box fits.
func (r *Renderer) DrawMenu(screen tcell.Screen, entries []menu.Entry, x, y, selected int) {
	if len(entries) == 0 {
		return
	}

	w, h := MenuSize(entries)
	border := tcell.StyleDefault.Foreground(tcell.ColorWhite)

	for col := 0; col < w; col++ {
		screen.SetContent(x+col, y, '─', nil, border)
		screen.SetContent(x+col, y+h-1, '─', nil, border)
	}
	for row := 0; row < h; row++ {
		screen.SetContent(x, y+row, '│', nil, border)
		screen.SetContent(x+w-1, y+row, '│', nil, border)
	}
	screen.SetContent(x, y, '┌', nil, border)
	screen.SetContent(x+w-1, y, '┐', nil, border)
	screen.SetContent(x, y+h-1, '└', nil, border)
	screen.SetContent(x+w-1, y+h-1, '┘', nil, border)

	for i, e := range entries {
		st := tcell.StyleDefault
		if i == selected {
			st = st.Reverse(true)
		}

		marker := ' '
		if e.Checked {
			marker = '•'
		}

		row := y + 1 + i
		screen.SetContent(x+1, row, ' ', nil, st)
		screen.SetContent(x+2, row, marker, nil, st)
		screen.SetContent(x+3, row, ' ', nil, st)
		for j := 0; j < w-5; j++ {
			ch := ' '
			if j < len(e.Label) {
				ch = rune(e.Label[j])
			}
			screen.SetContent(x+4+j, row, ch, nil, st)
		}
	}

	screen.Show()
}
