// Package geom provides the vector and winding toolkit used by the
// B-rep builders: 3D vector arithmetic, normalization, and polygon
// winding-order normalization in the xy plane.
package geom

import (
	"fmt"
	"math"
)

// Vec3 is a point or direction in 3D space. Coordinates are in mm
// once the input scale coefficient has been applied.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o componentwise.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns v - o componentwise.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v with every component multiplied by k.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{k * v.X, k * v.Y, k * v.Z}
}

// Length returns the Euclidean magnitude of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec3) Vec3 {
	return Vec3{(a.X + b.X) / 2, (a.Y + b.Y) / 2, (a.Z + b.Z) / 2}
}

// Cross returns the right-handed cross product a × b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// DegenerateVectorError reports an attempt to normalize a zero-length
// vector, typically the result of coincident consecutive vertices.
type DegenerateVectorError struct {
	Vec Vec3
}

func (e *DegenerateVectorError) Error() string {
	return fmt.Sprintf("cannot normalize zero-length vector (%g,%g,%g)", e.Vec.X, e.Vec.Y, e.Vec.Z)
}

// Normalize returns the unit vector pointing along v, or a
// DegenerateVectorError if v has zero length.
func Normalize(v Vec3) (Vec3, error) {
	m := v.Length()
	if m == 0 {
		return Vec3{}, &DegenerateVectorError{Vec: v}
	}
	return Vec3{v.X / m, v.Y / m, v.Z / m}, nil
}

// DegeneratePolygonError reports a polygon whose signed area is exactly
// zero: collinear or self-canceling boundaries have no winding order.
type DegeneratePolygonError struct{}

func (e *DegeneratePolygonError) Error() string {
	return "polygon is neither clockwise nor counter-clockwise"
}

// Reversed returns a copy of ring with the vertex order reversed.
func Reversed(ring []Vec3) []Vec3 {
	out := make([]Vec3, len(ring))
	for i, v := range ring {
		out[len(ring)-1-i] = v
	}
	return out
}

// signedDoubleArea is twice the signed area of the ring projected onto
// the xy plane. Counter-clockwise rings are positive.
func signedDoubleArea(ring []Vec3) float64 {
	var sum float64
	for i, cur := range ring {
		prev := ring[(i+len(ring)-1)%len(ring)]
		sum += (prev.X - cur.X) * (prev.Y + cur.Y)
	}
	return sum
}

// Clockwise returns ring wound clockwise in the xy plane: a clockwise
// ring comes back unchanged, a counter-clockwise ring as a reversed
// copy. Z components ride along untouched. Rings with exactly zero
// signed area fail with a DegeneratePolygonError.
func Clockwise(ring []Vec3) ([]Vec3, error) {
	s := signedDoubleArea(ring)
	switch {
	case s == 0:
		return nil, &DegeneratePolygonError{}
	case s > 0:
		return Reversed(ring), nil
	default:
		return ring, nil
	}
}
