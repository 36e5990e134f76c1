// Package menu implements the viewport context menu. The mouse-mode
// submenu offers exclusive (radio style) entries that switch the
// viewport's interaction mode; the checked entry tracks the viewport
// lazily through state-change notifications.
package menu

import (
	"context"
	"fmt"

	"github.com/dshills/plotview/internal/event"
	"github.com/dshills/plotview/internal/event/events"
	"github.com/dshills/plotview/internal/plot/viewbox"
)

// Display labels for the mouse-mode entries.
const (
	LabelPan    = "Pan mode"
	LabelCursor = "Cursor mode"
	LabelRect   = "Rectangle selection mode"
)

// Entry is one mouse-mode menu entry.
type Entry struct {
	Label   string
	Mode    viewbox.Mode
	Checked bool

	// Listed reports whether the entry is currently offered. The
	// rectangle entry is kept for the key it binds but stays off the
	// menu.
	Listed bool
}

// Controller drives the mouse-mode submenu for one viewport. It keeps a
// non-owning reference to the viewport and never outlives it.
type Controller struct {
	view *viewbox.ViewBox

	entries []Entry

	// valid tells us whether the checked entry still matches the
	// viewport; cleared on every state-change notification.
	valid bool

	sub event.Subscription
}

// New creates a menu controller bound to the given viewport and, when a
// bus is provided, subscribes to its state changes. State notifications
// run at critical priority so the menu is current before lower-priority
// listeners observe the change.
func New(view *viewbox.ViewBox, bus *event.Bus) (*Controller, error) {
	if view == nil {
		return nil, fmt.Errorf("menu: %w", ErrNilView)
	}

	c := &Controller{
		view: view,
		entries: []Entry{
			{Label: LabelPan, Mode: viewbox.ModePan, Listed: true},
			{Label: LabelCursor, Mode: viewbox.ModeCursor, Listed: true},
			{Label: LabelRect, Mode: viewbox.ModeRect, Listed: false},
		},
	}

	if bus != nil {
		sub, err := bus.Subscribe(
			events.TopicPlotViewStateChanged,
			event.HandlerFunc(c.onViewStateChanged),
			event.WithPriority(event.PriorityCritical),
		)
		if err != nil {
			return nil, fmt.Errorf("menu: subscribe: %w", err)
		}
		c.sub = sub
	}

	c.UpdateState()
	return c, nil
}

// Close cancels the controller's bus subscription.
func (c *Controller) Close() {
	if c.sub != nil {
		c.sub.Cancel()
	}
}

func (c *Controller) onViewStateChanged(_ context.Context, _ any) error {
	c.valid = false
	c.UpdateState()
	return nil
}

// UpdateState re-reads the viewport mode and moves the check mark.
func (c *Controller) UpdateState() {
	mode := c.view.Mode()
	for i := range c.entries {
		c.entries[i].Checked = c.entries[i].Mode == mode
	}
	c.valid = true
}

// Popup returns the entries to display, refreshing them first if a
// state change invalidated the menu. Unlisted entries are omitted.
func (c *Controller) Popup() []Entry {
	if !c.valid {
		c.UpdateState()
	}

	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Listed {
			out = append(out, e)
		}
	}
	return out
}

// Entries returns all entries including unlisted ones.
func (c *Controller) Entries() []Entry {
	if !c.valid {
		c.UpdateState()
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// SetMouseMode switches the viewport mode through its legacy
// string-based setter. The viewport broadcasts the change, which in
// turn refreshes the check marks.
func (c *Controller) SetMouseMode(name string) error {
	return c.view.SetLeftButtonAction(name)
}

// Select activates the entry with the given label.
func (c *Controller) Select(label string) error {
	for _, e := range c.entries {
		if e.Label == label {
			return c.view.SetMouseMode(e.Mode)
		}
	}
	return fmt.Errorf("menu: %w: %q", ErrUnknownEntry, label)
}
