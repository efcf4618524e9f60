package shape

import (
	"inkpad/pkg/geometry"
	"inkpad/pkg/render"
	"inkpad/pkg/view"
)

// Line is a shape with exactly two vertices, drawn as a single open
// segment.
type Line struct {
	base
	verts [2]geometry.Point
}

// NewLine creates a black line between two points.
func NewLine(start, end geometry.Point) *Line {
	return NewLineWithColor(start, end, geometry.Black())
}

// NewLineWithColor creates a colored line between two points. The
// origin is the midpoint of the two vertices.
func NewLineWithColor(start, end geometry.Point, c geometry.Color) *Line {
	l := &Line{verts: [2]geometry.Point{start, end}}
	l.color = c
	l.origin = centroid(l.verts[:])
	return l
}

// Draw strokes the single segment.
func (l *Line) Draw(dev render.Device, vc *view.Context) {
	drawPolyline(dev, vc, l.verts[:], l.color, false)
}

// Clone returns a deep copy of the line.
func (l *Line) Clone() Shape {
	c := *l
	return &c
}

// Vertex returns vertex i. Panics unless i is 0 or 1.
func (l *Line) Vertex(i int) geometry.Point {
	checkVertexIndex(i, len(l.verts))
	return l.verts[i]
}

// SetVertex replaces vertex i. Panics unless i is 0 or 1. The origin
// keeps its construction-time value.
func (l *Line) SetVertex(i int, p geometry.Point) {
	checkVertexIndex(i, len(l.verts))
	l.verts[i] = p
}

// VertexCount returns 2.
func (l *Line) VertexCount() int { return len(l.verts) }

// Centroid returns the midpoint of the current vertices.
func (l *Line) Centroid() geometry.Point { return centroid(l.verts[:]) }
