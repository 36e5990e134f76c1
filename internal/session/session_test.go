package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/plotview/internal/plot/viewbox"
)

func sampleSession() Session {
	return Session{
		View: viewbox.State{
			Mode:             viewbox.ModeCursor,
			XRange:           [2]float64{-5, 65},
			YRange:           [2]float64{0, 100},
			MouseEnabled:     [2]bool{true, false},
			AspectLocked:     true,
			WheelScaleFactor: viewbox.DefaultWheelScaleFactor,
		},
		Cursor: Cursor{Set: true, Value: 30, Visible: true},
		Channels: []Channel{
			{Name: "engine_speed", Color: "#ff8000"},
			{Name: "vehicle_speed", Color: "#00ff80"},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := sampleSession()

	data, err := Encode(want)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.View != want.View {
		t.Errorf("view = %+v, want %+v", got.View, want.View)
	}
	if got.Cursor != want.Cursor {
		t.Errorf("cursor = %+v, want %+v", got.Cursor, want.Cursor)
	}
	if len(got.Channels) != len(want.Channels) {
		t.Fatalf("channels = %d, want %d", len(got.Channels), len(want.Channels))
	}
	for i := range want.Channels {
		if got.Channels[i] != want.Channels[i] {
			t.Errorf("channel[%d] = %+v, want %+v", i, got.Channels[i], want.Channels[i])
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("{not json")); !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("Decode(garbage) error = %v, want ErrInvalidDocument", err)
	}
}

func TestDecodeRejectsFutureVersion(t *testing.T) {
	if _, err := Decode([]byte(`{"version": 99}`)); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Decode(v99) error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestDecodeRejectsMissingVersion(t *testing.T) {
	if _, err := Decode([]byte(`{"view": {"mode": "pan"}}`)); !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Decode(no version) error = %v, want ErrUnsupportedVersion", err)
	}
}

func TestDecodeRejectsUnknownMode(t *testing.T) {
	doc := `{"version": 1, "view": {"mode": "lasso"}}`
	if _, err := Decode([]byte(doc)); !errors.Is(err, viewbox.ErrUnknownModeName) {
		t.Errorf("Decode(bad mode) error = %v, want ErrUnknownModeName", err)
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.dspf")
	want := sampleSession()

	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.View != want.View {
		t.Errorf("loaded view = %+v, want %+v", got.View, want.View)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.dspf"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want fs not-exist", err)
	}
}
