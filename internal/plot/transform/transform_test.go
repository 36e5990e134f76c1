package transform

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMap(t *testing.T) {
	tr := Transform{SX: 2, SY: -3, TX: 10, TY: 100}

	got := tr.Map(Point{X: 5, Y: 4})
	want := Point{X: 20, Y: 88}
	if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) {
		t.Errorf("Map() = %v, want %v", got, want)
	}
}

func TestMapVec(t *testing.T) {
	tr := Transform{SX: 2, SY: -3, TX: 10, TY: 100}

	// MapVec must equal Map(p) - Map(origin).
	p := Point{X: 7, Y: -2}
	viaMap := tr.Map(p).Sub(tr.Map(Point{}))
	got := tr.MapVec(p)
	if !almostEqual(got.X, viaMap.X) || !almostEqual(got.Y, viaMap.Y) {
		t.Errorf("MapVec() = %v, want %v", got, viaMap)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
	}{
		{"identity", Identity()},
		{"scale-only", Transform{SX: 4, SY: 0.5}},
		{"full", Transform{SX: 2.5, SY: -1.5, TX: -40, TY: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.tr.Invert()
			if err != nil {
				t.Fatalf("Invert() error = %v", err)
			}
			p := Point{X: 3.25, Y: -7.5}
			back := inv.Map(tt.tr.Map(p))
			if !almostEqual(back.X, p.X) || !almostEqual(back.Y, p.Y) {
				t.Errorf("round trip = %v, want %v", back, p)
			}
		})
	}
}

func TestInvertSingular(t *testing.T) {
	for _, tr := range []Transform{{SX: 0, SY: 1}, {SX: 1, SY: 0}, {}} {
		if _, err := tr.Invert(); !errors.Is(err, ErrSingular) {
			t.Errorf("Invert(%v) error = %v, want ErrSingular", tr, err)
		}
	}
}

func TestFromPointsNormalizes(t *testing.T) {
	r := FromPoints(Point{X: 10, Y: 20}, Point{X: 4, Y: 2})
	want := Rect{X: 4, Y: 2, W: 6, H: 18}
	if r != want {
		t.Errorf("FromPoints() = %v, want %v", r, want)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 5}

	if !r.Contains(Point{X: 5, Y: 2}) {
		t.Error("interior point not contained")
	}
	if !r.Contains(Point{X: 10, Y: 5}) {
		t.Error("edge point not contained")
	}
	if r.Contains(Point{X: 11, Y: 2}) {
		t.Error("outside point contained")
	}
}

func TestMapRect(t *testing.T) {
	tr := Transform{SX: 2, SY: -1, TX: 0, TY: 10}
	r := tr.MapRect(Rect{X: 1, Y: 2, W: 3, H: 4})

	// Negative y scale flips the rect; MapRect renormalizes.
	want := Rect{X: 2, Y: 4, W: 6, H: 4}
	if r != want {
		t.Errorf("MapRect() = %v, want %v", r, want)
	}
}
