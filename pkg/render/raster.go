package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Raster is an in-memory RGBA drawing surface. Lines are stroked by
// outlining each segment as a quad and filling it through an
// anti-aliased rasterizer.
type Raster struct {
	img        *image.RGBA
	width      int
	height     int
	pen        color.RGBA
	background color.RGBA
	lineWidth  float64
}

// NewRaster creates a white-background raster surface with a black,
// one-pixel pen, cleared and ready to draw on.
func NewRaster(width, height int) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		width:      width,
		height:     height,
		pen:        color.RGBA{0, 0, 0, 255},
		background: color.RGBA{255, 255, 255, 255},
		lineWidth:  1,
	}
	r.Clear()
	return r
}

// Image returns the underlying RGBA image.
func (r *Raster) Image() *image.RGBA { return r.img }

// WindowWidth returns the surface width in pixels.
func (r *Raster) WindowWidth() int { return r.width }

// WindowHeight returns the surface height in pixels.
func (r *Raster) WindowHeight() int { return r.height }

// SetColor selects the pen from a packed 0xRRGGBB pixel.
func (r *Raster) SetColor(pixel uint32) {
	r.pen = pixelToRGBA(pixel)
}

// SetBackground sets the color Clear fills with.
func (r *Raster) SetBackground(c color.Color) {
	cr, cg, cb, ca := c.RGBA()
	r.background = color.RGBA{uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)}
}

// SetLineWidth sets the stroke width in pixels. Widths below one pixel
// are raised to one.
func (r *Raster) SetLineWidth(w float64) {
	if w < 1 {
		w = 1
	}
	r.lineWidth = w
}

// Clear fills the surface with the background color.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), &image.Uniform{r.background}, image.Point{}, draw.Src)
}

// DrawLine strokes a segment between two device pixels with the
// current pen. Zero-length segments are dropped.
func (r *Raster) DrawLine(x0, y0, x1, y1 int) {
	ax, ay := float64(x0), float64(y0)
	bx, by := float64(x1), float64(y1)

	dx := bx - ax
	dy := by - ay
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Perpendicular unit vector scaled to half the stroke width.
	half := r.lineWidth / 2
	nx := -dy / length * half
	ny := dx / length * half

	rast := &vector.Rasterizer{}
	rast.Reset(r.width, r.height)
	rast.MoveTo(float32(ax+nx), float32(ay+ny))
	rast.LineTo(float32(bx+nx), float32(by+ny))
	rast.LineTo(float32(bx-nx), float32(by-ny))
	rast.LineTo(float32(ax-nx), float32(ay-ny))
	rast.ClosePath()
	rast.Draw(r.img, r.img.Bounds(), &image.Uniform{r.pen}, image.Point{})
}
