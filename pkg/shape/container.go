package shape

import (
	"bufio"
	"fmt"
	"io"

	"inkpad/pkg/render"
	"inkpad/pkg/view"
)

// Container is an insertion-ordered collection of shapes. Every shape
// it holds is a deep clone owned exclusively by the container — adding
// never aliases caller-owned shapes, and copying a container clones
// every element. Iteration (draw, write) follows insertion order.
type Container struct {
	shapes []Shape
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{}
}

// Add deep-clones s and appends the clone.
func (c *Container) Add(s Shape) {
	c.shapes = append(c.shapes, s.Clone())
}

// Merge deep-clones every shape of other into c, in other's order.
func (c *Container) Merge(other *Container) {
	for _, s := range other.shapes {
		c.Add(s)
	}
}

// Clone returns a container holding deep clones of every shape.
func (c *Container) Clone() *Container {
	clone := NewContainer()
	clone.Merge(c)
	return clone
}

// Draw draws every shape in insertion order.
func (c *Container) Draw(dev render.Device, vc *view.Context) {
	for _, s := range c.shapes {
		s.Draw(dev, vc)
	}
}

// Erase removes all shapes.
func (c *Container) Erase() {
	c.shapes = nil
}

// Size returns the number of shapes held.
func (c *Container) Size() int {
	return len(c.shapes)
}

// At returns the shape at index i. The shape remains owned by the
// container; clone it before handing it elsewhere. Panics if i is out
// of range.
func (c *Container) At(i int) Shape {
	if i < 0 || i >= len(c.shapes) {
		panic(fmt.Sprintf("shape: container index %d out of range [0,%d)", i, len(c.shapes)))
	}
	return c.shapes[i]
}

// Write serializes every shape as one line, in insertion order.
func (c *Container) Write(w io.Writer) error {
	for _, s := range c.shapes {
		if _, err := fmt.Fprintln(w, Encode(s)); err != nil {
			return fmt.Errorf("failed to write shape: %w", err)
		}
	}
	return nil
}

// Read decodes shapes from r, one per line, and appends them. The
// stream is decoded in full before the container is touched: a
// malformed line fails the whole read with its line number and leaves
// the container exactly as it was, so a drawing with one corrupt shape
// never loads partially.
func (c *Container) Read(r io.Reader) error {
	var decoded []Shape

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		s, err := Decode(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		decoded = append(decoded, s)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read shapes: %w", err)
	}

	c.shapes = append(c.shapes, decoded...)
	return nil
}
