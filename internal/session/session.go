// Package session persists display sessions: the viewport state, the
// cursor line and the channel color assignments, stored as a JSON
// document so saved files stay hand-editable and forward compatible.
package session

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/plotview/internal/plot/viewbox"
)

// Version is the current session file format version.
const Version = 1

var (
	// ErrInvalidDocument is returned when the file is not valid JSON.
	ErrInvalidDocument = errors.New("session: invalid document")

	// ErrUnsupportedVersion is returned for files written by a newer
	// format revision.
	ErrUnsupportedVersion = errors.New("session: unsupported version")
)

// Channel is one plotted channel's persisted display attributes.
type Channel struct {
	Name  string
	Color string
}

// Cursor is the persisted cursor line state.
type Cursor struct {
	Set     bool
	Value   float64
	Visible bool
}

// Session is a complete display session.
type Session struct {
	View     viewbox.State
	Cursor   Cursor
	Channels []Channel
}

// Encode renders the session as a JSON document.
func Encode(s Session) ([]byte, error) {
	doc := "{}"
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	set("version", Version)

	set("view.mode", s.View.Mode.String())
	set("view.x_range", s.View.XRange[:])
	set("view.y_range", s.View.YRange[:])
	set("view.mouse_enabled", s.View.MouseEnabled[:])
	set("view.aspect_locked", s.View.AspectLocked)
	set("view.wheel_scale_factor", s.View.WheelScaleFactor)

	set("cursor.set", s.Cursor.Set)
	set("cursor.value", s.Cursor.Value)
	set("cursor.visible", s.Cursor.Visible)

	for i, ch := range s.Channels {
		set(fmt.Sprintf("channels.%d.name", i), ch.Name)
		set(fmt.Sprintf("channels.%d.color", i), ch.Color)
	}

	if err != nil {
		return nil, fmt.Errorf("session: encode: %w", err)
	}
	return []byte(doc), nil
}

// Decode parses a JSON session document.
func Decode(data []byte) (Session, error) {
	if !gjson.ValidBytes(data) {
		return Session{}, ErrInvalidDocument
	}
	doc := gjson.ParseBytes(data)

	if v := doc.Get("version"); !v.Exists() || v.Int() > Version {
		return Session{}, fmt.Errorf("%w: %v", ErrUnsupportedVersion, v.Value())
	}

	var s Session

	mode, err := viewbox.ParseMode(doc.Get("view.mode").String())
	if err != nil {
		return Session{}, err
	}
	s.View.Mode = mode

	s.View.XRange = pair(doc.Get("view.x_range"))
	s.View.YRange = pair(doc.Get("view.y_range"))

	me := doc.Get("view.mouse_enabled").Array()
	for i := 0; i < len(me) && i < 2; i++ {
		s.View.MouseEnabled[i] = me[i].Bool()
	}

	s.View.AspectLocked = doc.Get("view.aspect_locked").Bool()
	s.View.WheelScaleFactor = doc.Get("view.wheel_scale_factor").Float()

	s.Cursor = Cursor{
		Set:     doc.Get("cursor.set").Bool(),
		Value:   doc.Get("cursor.value").Float(),
		Visible: doc.Get("cursor.visible").Bool(),
	}

	doc.Get("channels").ForEach(func(_, ch gjson.Result) bool {
		s.Channels = append(s.Channels, Channel{
			Name:  ch.Get("name").String(),
			Color: ch.Get("color").String(),
		})
		return true
	})

	return s, nil
}

func pair(r gjson.Result) [2]float64 {
	var out [2]float64
	arr := r.Array()
	for i := 0; i < len(arr) && i < 2; i++ {
		out[i] = arr[i].Float()
	}
	return out
}

// Save writes the session to a file.
func Save(path string, s Session) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("session: write %s: %w", path, err)
	}
	return nil
}

// Load reads a session from a file.
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Session{}, fmt.Errorf("session: read %s: %w", path, err)
	}
	return Decode(data)
}
