// Package events defines the plot event topics and payloads published
// on the bus for sibling widgets to consume.
package events

import (
	"github.com/dshills/plotview/internal/event/topic"
	"github.com/dshills/plotview/internal/input/key"
	"github.com/dshills/plotview/internal/input/mouse"
	"github.com/dshills/plotview/internal/plot/transform"
)

// Plot event topics.
const (
	// TopicPlotCursorMoved is published on every cursor-mode primary
	// drag, carrying the raw mouse event.
	TopicPlotCursorMoved topic.Topic = "plot.cursor.moved"

	// TopicPlotZoomChanged is published while a constrained zoom
	// gesture is in progress, and once more with a nil region when the
	// gesture ends.
	TopicPlotZoomChanged topic.Topic = "plot.zoom.changed"

	// TopicPlotZoomFinished is published exactly once when a zoom
	// gesture completes.
	TopicPlotZoomFinished topic.Topic = "plot.zoom.finished"

	// TopicPlotRangeChanged is published after any manual (mouse
	// driven) change to the visible range.
	TopicPlotRangeChanged topic.Topic = "plot.range.changed.manual"

	// TopicPlotViewStateChanged is published when viewport state such
	// as the interaction mode changes.
	TopicPlotViewStateChanged topic.Topic = "plot.view.state.changed"
)

// CursorMoved carries the raw mouse event of a cursor-mode drag.
type CursorMoved struct {
	// Event is the drag event that moved the cursor.
	Event *mouse.Event
}

// EventTopic implements event.TopicProvider.
func (CursorMoved) EventTopic() topic.Topic {
	return TopicPlotCursorMoved
}

// ZoomRegion describes an in-progress or completed zoom gesture.
type ZoomRegion struct {
	// Start is the data-space position where the gesture began.
	Start transform.Point

	// End is the current data-space position.
	End transform.Point

	// Combo is the keyboard combination that armed the gesture.
	Combo key.Combo
}

// ZoomChanged is published while a zoom gesture is in progress.
// A nil Region marks the end of the gesture; it is an explicit
// "no payload" value, not a sentinel region.
type ZoomChanged struct {
	Region *ZoomRegion
}

// EventTopic implements event.TopicProvider.
func (ZoomChanged) EventTopic() topic.Topic {
	return TopicPlotZoomChanged
}

// ZoomFinished is published exactly once when a zoom gesture completes.
type ZoomFinished struct {
	Region ZoomRegion
}

// EventTopic implements event.TopicProvider.
func (ZoomFinished) EventTopic() topic.Topic {
	return TopicPlotZoomFinished
}

// RangeChanged is published after a manual change to the visible
// range. Axis reports which axes were enabled for the interaction.
type RangeChanged struct {
	// Axis is the per-axis enable mask, indexed x then y.
	Axis [2]bool
}

// EventTopic implements event.TopicProvider.
func (RangeChanged) EventTopic() topic.Topic {
	return TopicPlotRangeChanged
}

// ViewStateChanged is published when the viewport's interaction state
// changes, notably the mouse mode. Mode carries the mode's name.
type ViewStateChanged struct {
	Mode string
}

// EventTopic implements event.TopicProvider.
func (ViewStateChanged) EventTopic() topic.Topic {
	return TopicPlotViewStateChanged
}
