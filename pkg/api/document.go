// Package api provides a clean public API for the vector drawing
// library. This is the main entry point for external consumers.
package api

import (
	"fmt"
	"image"
	"io"
	"os"

	"inkpad/pkg/render"
	"inkpad/pkg/shape"
	"inkpad/pkg/view"
)

// Drawing represents a collection of shapes that can be loaded, saved
// and rendered.
type Drawing struct {
	shapes *shape.Container
}

// New creates an empty drawing.
func New() *Drawing {
	return &Drawing{shapes: shape.NewContainer()}
}

// Open reads a drawing from a file.
func Open(path string) (*Drawing, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	d, err := OpenReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// OpenReader reads a drawing from a stream of one-shape-per-line
// descriptions.
func OpenReader(r io.Reader) (*Drawing, error) {
	d := New()
	if err := d.shapes.Read(r); err != nil {
		return nil, fmt.Errorf("failed to parse drawing: %w", err)
	}
	return d, nil
}

// Save writes the drawing to a file, one shape per line.
func (d *Drawing) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := d.Write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// Write serializes the drawing to w, one shape per line.
func (d *Drawing) Write(w io.Writer) error {
	return d.shapes.Write(w)
}

// Add appends a copy of s to the drawing.
func (d *Drawing) Add(s shape.Shape) {
	d.shapes.Add(s)
}

// ShapeCount returns the number of shapes in the drawing.
func (d *Drawing) ShapeCount() int {
	return d.shapes.Size()
}

// Shape returns the shape at index i (insertion order). The shape is
// owned by the drawing. Panics if i is out of range.
func (d *Drawing) Shape(i int) shape.Shape {
	return d.shapes.At(i)
}

// Clear removes every shape.
func (d *Drawing) Clear() {
	d.shapes.Erase()
}

// Container returns the underlying shape container (for advanced use).
func (d *Drawing) Container() *shape.Container {
	return d.shapes
}

// Render rasterizes the drawing to an image with default options.
func (d *Drawing) Render() *image.RGBA {
	return d.RenderWithOptions(DefaultRenderOptions())
}

// RenderWithOptions rasterizes the drawing with custom options.
func (d *Drawing) RenderWithOptions(opts RenderOptions) *image.RGBA {
	dev := render.NewRaster(opts.Width, opts.Height)
	if opts.Background != nil {
		dev.SetBackground(opts.Background)
	}
	dev.SetLineWidth(opts.LineWidth)
	dev.Clear()

	d.drawInto(dev, opts)
	return dev.Image()
}

// Export renders the drawing and writes it to path, picking the image
// format from the file extension (.png, .jpg, .jpeg).
func (d *Drawing) Export(path string, opts RenderOptions) error {
	dev := render.NewExport(opts.Width, opts.Height)
	if opts.Background != nil {
		dev.SetBackground(opts.Background)
	}
	dev.SetLineWidth(opts.LineWidth)
	dev.Clear()

	d.drawInto(dev, opts)
	return dev.Save(path)
}

// ExportWriter renders the drawing and encodes it to w in the format
// named by export options.
func (d *Drawing) ExportWriter(w io.Writer, opts RenderOptions, exp ExportOptions) error {
	dev := render.NewExport(opts.Width, opts.Height)
	if opts.Background != nil {
		dev.SetBackground(opts.Background)
	}
	dev.SetLineWidth(opts.LineWidth)
	dev.Clear()

	d.drawInto(dev, opts)

	switch exp.Format {
	case "png", "":
		return dev.EncodePNG(w)
	case "jpeg", "jpg":
		return dev.EncodeJPEG(w, exp.Quality)
	default:
		return fmt.Errorf("unsupported export format %q", exp.Format)
	}
}

// drawInto draws every shape through a view context configured from
// opts.
func (d *Drawing) drawInto(dev render.Device, opts RenderOptions) {
	vc := view.NewContext(dev)
	vc.SetTranslation(opts.TranslationX, opts.TranslationY)
	vc.SetRotation(opts.Rotation)
	vc.SetScale(opts.ScaleX, opts.ScaleY)
	d.shapes.Draw(dev, vc)
}
