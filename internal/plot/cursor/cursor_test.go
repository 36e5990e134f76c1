package cursor

import "testing"

func TestLineLifecycle(t *testing.T) {
	l := NewLine()

	if l.IsSet() || l.IsVisible() {
		t.Error("new line is set or visible")
	}

	l.SetValue(12.5)
	if !l.IsSet() || !l.IsVisible() {
		t.Error("SetValue did not set and show the line")
	}
	if l.Value() != 12.5 {
		t.Errorf("Value() = %v, want 12.5", l.Value())
	}

	l.Hide()
	if l.IsVisible() {
		t.Error("Hide() left line visible")
	}
	if !l.IsSet() {
		t.Error("Hide() unset the value")
	}

	l.Show()
	if !l.IsVisible() {
		t.Error("Show() did not reveal a positioned line")
	}

	l.Clear()
	if l.IsSet() || l.IsVisible() {
		t.Error("Clear() left line set or visible")
	}
}

func TestShowRequiresValue(t *testing.T) {
	l := NewLine()
	l.Show()
	if l.IsVisible() {
		t.Error("Show() revealed a line with no value")
	}
}
