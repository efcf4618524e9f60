package shape

import (
	"inkpad/pkg/geometry"
	"inkpad/pkg/render"
	"inkpad/pkg/view"
)

// Triangle is a shape with exactly three vertices, always drawn
// closed.
type Triangle struct {
	base
	verts [3]geometry.Point
}

// NewTriangle creates a black triangle from three points.
func NewTriangle(a, b, c geometry.Point) *Triangle {
	return NewTriangleWithColor(a, b, c, geometry.Black())
}

// NewTriangleWithColor creates a colored triangle from three points.
// The origin is the arithmetic mean of the three vertices.
func NewTriangleWithColor(a, b, c geometry.Point, col geometry.Color) *Triangle {
	t := &Triangle{verts: [3]geometry.Point{a, b, c}}
	t.color = col
	t.origin = centroid(t.verts[:])
	return t
}

// Draw strokes the three edges.
func (t *Triangle) Draw(dev render.Device, vc *view.Context) {
	drawPolyline(dev, vc, t.verts[:], t.color, true)
}

// Clone returns a deep copy of the triangle.
func (t *Triangle) Clone() Shape {
	c := *t
	return &c
}

// Vertex returns vertex i. Panics unless i is in [0,3).
func (t *Triangle) Vertex(i int) geometry.Point {
	checkVertexIndex(i, len(t.verts))
	return t.verts[i]
}

// SetVertex replaces vertex i. Panics unless i is in [0,3). The origin
// keeps its construction-time value.
func (t *Triangle) SetVertex(i int, p geometry.Point) {
	checkVertexIndex(i, len(t.verts))
	t.verts[i] = p
}

// VertexCount returns 3.
func (t *Triangle) VertexCount() int { return len(t.verts) }

// Centroid returns the mean of the current vertices.
func (t *Triangle) Centroid() geometry.Point { return centroid(t.verts[:]) }
