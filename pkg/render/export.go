package render

import (
	"fmt"
	"image/color"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
)

// Export is a Device that draws into a gg context, for writing
// finished drawings out as PNG or JPEG files.
type Export struct {
	ctx        *gg.Context
	width      int
	height     int
	background color.Color
}

// NewExport creates an export surface with a white background and a
// black, one-pixel pen.
func NewExport(width, height int) *Export {
	e := &Export{
		ctx:        gg.NewContext(width, height),
		width:      width,
		height:     height,
		background: color.White,
	}
	e.ctx.SetLineWidth(1)
	e.Clear()
	e.ctx.SetColor(color.Black)
	return e
}

// WindowWidth returns the surface width in pixels.
func (e *Export) WindowWidth() int { return e.width }

// WindowHeight returns the surface height in pixels.
func (e *Export) WindowHeight() int { return e.height }

// SetColor selects the pen from a packed 0xRRGGBB pixel.
func (e *Export) SetColor(pixel uint32) {
	e.ctx.SetColor(pixelToRGBA(pixel))
}

// SetBackground sets the color Clear fills with.
func (e *Export) SetBackground(c color.Color) {
	e.background = c
}

// SetLineWidth sets the stroke width in pixels.
func (e *Export) SetLineWidth(w float64) {
	e.ctx.SetLineWidth(w)
}

// Clear fills the surface with the background color.
func (e *Export) Clear() {
	e.ctx.Push()
	e.ctx.SetColor(e.background)
	e.ctx.Clear()
	e.ctx.Pop()
}

// DrawLine strokes a segment between two device pixels.
func (e *Export) DrawLine(x0, y0, x1, y1 int) {
	e.ctx.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	e.ctx.Stroke()
}

// EncodePNG writes the surface as PNG.
func (e *Export) EncodePNG(w io.Writer) error {
	return e.ctx.EncodePNG(w)
}

// EncodeJPEG writes the surface as JPEG with the given quality (1-100).
func (e *Export) EncodeJPEG(w io.Writer, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	return jpeg.Encode(w, e.ctx.Image(), &jpeg.Options{Quality: quality})
}

// Save writes the surface to path, picking the format from the file
// extension (.png, .jpg, .jpeg).
func (e *Export) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return e.EncodeJPEG(f, 90)
	case ".png", "":
		return e.EncodePNG(f)
	default:
		return fmt.Errorf("unsupported export format %q", filepath.Ext(path))
	}
}
