package shape

import (
	"fmt"

	"inkpad/pkg/geometry"
	"inkpad/pkg/render"
	"inkpad/pkg/view"
)

// Polygon is a shape with three or more vertices, drawn closed. A
// polygon with exactly three vertices is geometrically a triangle and
// decodes as one after a save/load round trip; see codec.go.
type Polygon struct {
	base
	verts []geometry.Point
}

// NewPolygon creates a black polygon from the given points.
// Fewer than three vertices is a caller contract violation and panics.
func NewPolygon(verts ...geometry.Point) *Polygon {
	return NewPolygonWithColor(verts, geometry.Black())
}

// NewPolygonWithColor creates a colored polygon. The vertex slice is
// copied; the polygon owns its storage. The origin is the arithmetic
// mean of all vertices.
func NewPolygonWithColor(verts []geometry.Point, c geometry.Color) *Polygon {
	if len(verts) < 3 {
		panic(fmt.Sprintf("shape: polygon needs at least 3 vertices, have %d", len(verts)))
	}
	p := &Polygon{verts: append([]geometry.Point(nil), verts...)}
	p.color = c
	p.origin = centroid(p.verts)
	return p
}

// Draw strokes consecutive edges and the closing edge.
func (p *Polygon) Draw(dev render.Device, vc *view.Context) {
	drawPolyline(dev, vc, p.verts, p.color, len(p.verts) > 2)
}

// Clone returns a deep copy with independent vertex storage.
func (p *Polygon) Clone() Shape {
	c := *p
	c.verts = append([]geometry.Point(nil), p.verts...)
	return &c
}

// Vertex returns vertex i. Panics if i is out of range.
func (p *Polygon) Vertex(i int) geometry.Point {
	checkVertexIndex(i, len(p.verts))
	return p.verts[i]
}

// SetVertex replaces vertex i. Panics if i is out of range. The origin
// keeps its construction-time value.
func (p *Polygon) SetVertex(i int, pt geometry.Point) {
	checkVertexIndex(i, len(p.verts))
	p.verts[i] = pt
}

// VertexCount returns the number of vertices.
func (p *Polygon) VertexCount() int { return len(p.verts) }

// Centroid returns the mean of the current vertices.
func (p *Polygon) Centroid() geometry.Point { return centroid(p.verts) }
