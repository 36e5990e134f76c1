// Package style assigns display colors to plot channels. Colors come
// from evenly spaced hues so neighboring channels stay distinguishable
// on dark terminal backgrounds.
package style

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette hands out stable per-channel colors. A channel keeps its
// color for the lifetime of the palette, independent of lookup order
// of other channels.
type Palette struct {
	mu       sync.Mutex
	assigned map[string]colorful.Color
	next     int
}

// NewPalette creates an empty palette.
func NewPalette() *Palette {
	return &Palette{assigned: make(map[string]colorful.Color)}
}

// hue steps through the color wheel using the golden angle so any
// prefix of the sequence is roughly evenly spread.
func hue(i int) float64 {
	const golden = 137.50776405003785
	h := float64(i) * golden
	for h >= 360 {
		h -= 360
	}
	return h
}

// Color returns the channel's color, assigning the next palette slot
// on first lookup.
func (p *Palette) Color(channel string) colorful.Color {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.assigned[channel]; ok {
		return c
	}
	c := colorful.Hcl(hue(p.next), 0.6, 0.7).Clamped()
	p.assigned[channel] = c
	p.next++
	return c
}

// SetColor pins a channel to an explicit color, e.g. one restored from
// a saved display session.
func (p *Palette) SetColor(channel string, c colorful.Color) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.assigned[channel] = c
}

// Hex returns the channel's color as "#rrggbb".
func (p *Palette) Hex(channel string) string {
	return p.Color(channel).Hex()
}

// Tcell returns the channel's color as a tcell color for rendering.
func (p *Palette) Tcell(channel string) tcell.Color {
	return ToTcell(p.Color(channel))
}

// ToTcell converts a colorful color to a 24-bit tcell color.
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ParseHex parses "#rrggbb" into a colorful color.
func ParseHex(s string) (colorful.Color, error) {
	return colorful.Hex(s)
}
