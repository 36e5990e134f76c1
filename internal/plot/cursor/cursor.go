// Package cursor provides the movable readout line shown on a plot.
// The line marks a single data-space x position; the viewport keeps a
// non-owning reference to it for wheel-zoom centering.
package cursor

import "sync"

// Line is a vertical readout line at a data-space x position.
type Line struct {
	mu      sync.RWMutex
	value   float64
	set     bool
	visible bool
}

// NewLine creates an unset, hidden cursor line.
func NewLine() *Line {
	return &Line{}
}

// Value returns the line's data-space x position.
// Returns 0 while unset; use IsSet to distinguish.
func (l *Line) Value() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value
}

// IsSet reports whether the line has been positioned.
func (l *Line) IsSet() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.set
}

// SetValue positions the line and makes it visible.
func (l *Line) SetValue(v float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.value = v
	l.set = true
	l.visible = true
}

// Clear unsets and hides the line.
func (l *Line) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.set = false
	l.visible = false
}

// IsVisible reports whether the line is shown.
func (l *Line) IsVisible() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.visible
}

// Show makes a positioned line visible. A line with no value stays
// hidden.
func (l *Line) Show() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.set {
		l.visible = true
	}
}

// Hide hides the line without unsetting its value.
func (l *Line) Hide() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.visible = false
}
