// Package shape implements the editor's drawable primitives — lines,
// triangles and polygons — their owning container, and the line
// oriented text format drawings are saved in.
package shape

import (
	"fmt"

	"inkpad/pkg/geometry"
	"inkpad/pkg/render"
	"inkpad/pkg/view"
)

// Shape is the closed set of drawable primitives: *Line, *Triangle and
// *Polygon. Every shape owns its vertex storage exclusively; Clone
// produces a deep copy with independent vertices.
//
// The origin is the centroid of the vertex set at construction time.
// It is deliberately not refreshed when a vertex is changed through
// SetVertex — it records where the shape was authored, not where it
// currently sits. Centroid recomputes the live value on demand.
type Shape interface {
	// Draw maps each vertex through the view transform and strokes the
	// shape's edges on dev in the shape's color.
	Draw(dev render.Device, vc *view.Context)
	// Clone returns a deep copy with independent vertex storage.
	Clone() Shape
	// Vertex returns vertex i. Panics if i is out of range.
	Vertex(i int) geometry.Point
	// SetVertex replaces vertex i. Panics if i is out of range.
	SetVertex(i int, p geometry.Point)
	// VertexCount returns the number of vertices.
	VertexCount() int
	// Centroid returns the arithmetic mean of the current vertices.
	Centroid() geometry.Point

	Color() geometry.Color
	SetColor(c geometry.Color)
	Origin() geometry.Point
	SetOrigin(p geometry.Point)
}

// base carries the state every shape shares.
type base struct {
	color  geometry.Color
	origin geometry.Point
}

// Color returns the shape's color.
func (b *base) Color() geometry.Color { return b.color }

// SetColor sets the shape's color.
func (b *base) SetColor(c geometry.Color) { b.color = c }

// Origin returns the shape's origin.
func (b *base) Origin() geometry.Point { return b.origin }

// SetOrigin sets the shape's origin.
func (b *base) SetOrigin(p geometry.Point) { b.origin = p }

// centroid returns the arithmetic mean of verts.
func centroid(verts []geometry.Point) geometry.Point {
	var sumX, sumY float64
	for _, v := range verts {
		sumX += v.X()
		sumY += v.Y()
	}
	n := float64(len(verts))
	return geometry.NewPoint(sumX/n, sumY/n)
}

// drawPolyline maps verts to device space and strokes consecutive
// segments, closing the loop when closed is set. Device coordinates
// are truncated to whole pixels.
func drawPolyline(dev render.Device, vc *view.Context, verts []geometry.Point, c geometry.Color, closed bool) {
	if len(verts) < 2 {
		return
	}

	dev.SetColor(c.Pixel())

	prev := vc.ModelToDevice(verts[0])
	for _, v := range verts[1:] {
		next := vc.ModelToDevice(v)
		dev.DrawLine(int(prev.X()), int(prev.Y()), int(next.X()), int(next.Y()))
		prev = next
	}

	if closed {
		first := vc.ModelToDevice(verts[0])
		dev.DrawLine(int(prev.X()), int(prev.Y()), int(first.X()), int(first.Y()))
	}
}

func checkVertexIndex(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("shape: vertex index %d out of range [0,%d)", i, n))
	}
}
