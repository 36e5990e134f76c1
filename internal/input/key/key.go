package key

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key represents a keyboard key. The plot viewer only needs the keys
// that participate in viewport gestures; character keys use KeyRune.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyEscape is the Escape key.
	KeyEscape
	// KeyEnter is the Enter key.
	KeyEnter

	// KeyShift is the Shift key itself (a bare modifier press).
	KeyShift
	// KeyCtrl is the Control key itself.
	KeyCtrl
	// KeyAlt is the Alt key itself.
	KeyAlt
	// KeyMeta is the Meta key itself.
	KeyMeta

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// KeyRune is used for character keys.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Escape"
	case KeyEnter:
		return "Enter"
	case KeyShift:
		return "Shift"
	case KeyCtrl:
		return "Ctrl"
	case KeyAlt:
		return "Alt"
	case KeyMeta:
		return "Meta"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyRune:
		return "Rune"
	default:
		return "Unknown"
	}
}

// Combo is a combined modifier+key value. It identifies a complete
// keyboard chord in a single comparable value, which is what the
// viewport stores while a zoom gesture is armed.
type Combo uint32

// ComboNone is the zero Combo: no modifiers, no key.
const ComboNone Combo = 0

// ComboOf combines a modifier set and a key into a Combo.
func ComboOf(m Modifier, k Key) Combo {
	return Combo(uint32(m)<<16 | uint32(k))
}

// Modifiers returns the modifier part of the combo.
func (c Combo) Modifiers() Modifier {
	return Modifier(c >> 16)
}

// Key returns the key part of the combo.
func (c Combo) Key() Key {
	return Key(c & 0xffff)
}

// String returns a representation like "Shift+Alt+Alt".
func (c Combo) String() string {
	m := c.Modifiers()
	if m.IsEmpty() {
		return c.Key().String()
	}
	return fmt.Sprintf("%s+%s", m, c.Key())
}

// ModifierFromTcell converts tcell modifier flags.
func ModifierFromTcell(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out = out.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		out = out.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		out = out.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		out = out.With(ModMeta)
	}
	return out
}

// ComboFromTcell converts a tcell key event into a Combo. Terminals do
// not report bare modifier presses, so a modified arrow/rune event maps
// to the corresponding modifier-key combo when only modifiers matter.
func ComboFromTcell(ev *tcell.EventKey) Combo {
	mods := ModifierFromTcell(ev.Modifiers())

	var k Key
	switch ev.Key() {
	case tcell.KeyEscape:
		k = KeyEscape
	case tcell.KeyEnter:
		k = KeyEnter
	case tcell.KeyUp:
		k = KeyUp
	case tcell.KeyDown:
		k = KeyDown
	case tcell.KeyLeft:
		k = KeyLeft
	case tcell.KeyRight:
		k = KeyRight
	case tcell.KeyRune:
		k = KeyRune
	default:
		k = KeyNone
	}

	return ComboOf(mods, k)
}
