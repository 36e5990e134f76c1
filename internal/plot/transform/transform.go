// Package transform provides the 2D coordinate math shared by the plot
// widgets: points, rectangles and the axis-aligned affine transform that
// maps between data (view) coordinates and scene coordinates.
package transform

import "errors"

// ErrSingular is returned when inverting a transform with a zero scale.
var ErrSingular = errors.New("transform: singular, cannot invert")

// Point is a 2D coordinate.
type Point struct {
	X float64
	Y float64
}

// Add returns p + q componentwise.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q componentwise.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scaled returns p with both components multiplied by f.
func (p Point) Scaled(f float64) Point {
	return Point{X: p.X * f, Y: p.Y * f}
}

// ScaledXY returns p with components multiplied per axis.
func (p Point) ScaledXY(fx, fy float64) Point {
	return Point{X: p.X * fx, Y: p.Y * fy}
}

// Rect is an axis-aligned rectangle. W and H are always non-negative
// when constructed through FromPoints.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// FromPoints returns the normalized rectangle spanned by two corners.
func FromPoints(p1, p2 Point) Rect {
	x, w := p1.X, p2.X-p1.X
	if w < 0 {
		x, w = p2.X, -w
	}
	y, h := p1.Y, p2.Y-p1.Y
	if h < 0 {
		y, h = p2.Y, -h
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// TopLeft returns the rectangle's origin corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// BottomRight returns the corner opposite the origin.
func (r Rect) BottomRight() Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Transform is an axis-aligned affine transform: scale then translate.
// The plot scene never shears or rotates, so two scale factors and two
// offsets describe every mapping this package needs.
type Transform struct {
	SX float64
	SY float64
	TX float64
	TY float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{SX: 1, SY: 1}
}

// Map applies the transform to a point.
func (t Transform) Map(p Point) Point {
	return Point{
		X: t.SX*p.X + t.TX,
		Y: t.SY*p.Y + t.TY,
	}
}

// MapVec applies only the scale part of the transform. Equivalent to
// Map(p) - Map(origin), which is how deltas are mapped.
func (t Transform) MapVec(p Point) Point {
	return Point{X: t.SX * p.X, Y: t.SY * p.Y}
}

// MapRect maps a rectangle through the transform and renormalizes it.
func (t Transform) MapRect(r Rect) Rect {
	return FromPoints(t.Map(r.TopLeft()), t.Map(r.BottomRight()))
}

// Invert returns the inverse transform.
func (t Transform) Invert() (Transform, error) {
	if t.SX == 0 || t.SY == 0 {
		return Transform{}, ErrSingular
	}
	return Transform{
		SX: 1 / t.SX,
		SY: 1 / t.SY,
		TX: -t.TX / t.SX,
		TY: -t.TY / t.SY,
	}, nil
}

// Translated returns the transform with an additional post-translation.
func (t Transform) Translated(dx, dy float64) Transform {
	return Transform{SX: t.SX, SY: t.SY, TX: t.TX + dx, TY: t.TY + dy}
}

// Scaled returns the transform with an additional post-scale.
func (t Transform) Scaled(sx, sy float64) Transform {
	return Transform{SX: t.SX * sx, SY: t.SY * sy, TX: t.TX * sx, TY: t.TY * sy}
}
