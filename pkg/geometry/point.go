// Package geometry holds the model-space primitives shared by shapes
// and the view pipeline: homogeneous 2D points and RGB colors.
package geometry

import (
	"math"
	"strconv"

	"inkpad/pkg/algebra"
)

// Point is a 2D model-space point carried in homogeneous form as the
// vector (x, y, 1). The third coordinate is pinned to 1 so affine view
// transforms reduce to a single 3×3 multiplication; no public
// operation ever produces a point with a different third coordinate.
// Point has value semantics: copies are independent.
type Point struct {
	v algebra.Vec3[float64]
}

// NewPoint creates the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{v: algebra.Vec3[float64]{X: x, Y: y, Z: 1}}
}

// PointFromVec3 builds a point from the x and y components of a
// homogeneous vector, re-tagging the result with the 1 coordinate.
// Used to lift matrix-transform results back into point form.
func PointFromVec3(v algebra.Vec3[float64]) Point {
	return NewPoint(v.X, v.Y)
}

// X returns the x coordinate.
func (p Point) X() float64 { return p.v.X }

// Y returns the y coordinate.
func (p Point) Y() float64 { return p.v.Y }

// Vec returns the homogeneous (x, y, 1) column vector.
func (p Point) Vec() algebra.Vec3[float64] { return p.v }

// Add returns p + q, adding only the x and y components.
func (p Point) Add(q Point) Point {
	return NewPoint(p.v.X+q.v.X, p.v.Y+q.v.Y)
}

// Sub returns p - q, subtracting only the x and y components.
func (p Point) Sub(q Point) Point {
	return NewPoint(p.v.X-q.v.X, p.v.Y-q.v.Y)
}

// Magnitude returns the Euclidean norm of (x, y).
func (p Point) Magnitude() float64 {
	return math.Hypot(p.v.X, p.v.Y)
}

// Dot returns the 2D dot product of p and q taken as vectors from the
// origin.
func (p Point) Dot(q Point) float64 {
	return p.v.X*q.v.X + p.v.Y*q.v.Y
}

// Direction returns the signed angle in radians from p to q, in
// (−π, π], computed as atan2 of the 2D cross and dot products. The
// sign carries the rotation direction, which an unsigned arccos
// formula would lose.
func (p Point) Direction(q Point) float64 {
	dot := p.v.X*q.v.X + p.v.Y*q.v.Y
	cross := p.v.X*q.v.Y - p.v.Y*q.v.X
	return math.Atan2(cross, dot)
}

// Less reports whether p is closer to the origin than q.
func (p Point) Less(q Point) bool {
	return p.Magnitude() < q.Magnitude()
}

// String renders the point in its wire form, e.g. "POINT2D( 0.5 2 )".
func (p Point) String() string {
	return "POINT2D( " + FormatFloat(p.v.X) + " " + FormatFloat(p.v.Y) + " )"
}

// FormatFloat renders a coordinate or color channel for the wire
// format using the shortest representation that parses back to the
// same float64, so save followed by load is lossless.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
