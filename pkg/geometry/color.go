package geometry

import (
	"image/color"
	"math/rand"
)

// Color is an RGB color with channels in [0,1]. Constructors clamp out
// of range values, so a Color in hand is always valid.
type Color struct {
	R, G, B float64
}

// NewColor creates a color, clamping each channel into [0,1].
func NewColor(r, g, b float64) Color {
	return Color{R: clamp(r), G: clamp(g), B: clamp(b)}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// The named palette backing the editor's color keys.

// Black returns black.
func Black() Color { return Color{0, 0, 0} }

// Gray returns mid gray.
func Gray() Color { return Color{0.5, 0.5, 0.5} }

// White returns white.
func White() Color { return Color{1, 1, 1} }

// Red returns pure red.
func Red() Color { return Color{1, 0, 0} }

// Green returns pure green.
func Green() Color { return Color{0, 1, 0} }

// Blue returns pure blue.
func Blue() Color { return Color{0, 0, 1} }

// Cyan returns cyan.
func Cyan() Color { return Color{0, 1, 1} }

// Magenta returns magenta.
func Magenta() Color { return Color{1, 0, 1} }

// Yellow returns yellow.
func Yellow() Color { return Color{1, 1, 0} }

// Random returns a uniformly random color.
func Random() Color {
	return Color{rand.Float64(), rand.Float64(), rand.Float64()}
}

// Channel returns channel i (0=R, 1=G, 2=B). Panics if i is outside
// [0,3).
func (c Color) Channel(i int) float64 {
	switch i {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	}
	panic("geometry: color channel index out of range")
}

// Pixel packs the color into a 0xRRGGBB device pixel.
func (c Color) Pixel() uint32 {
	r := uint32(c.R*255 + 0.5)
	g := uint32(c.G*255 + 0.5)
	b := uint32(c.B*255 + 0.5)
	return r<<16 | g<<8 | b
}

// ColorFromPixel unpacks a 0xRRGGBB device pixel.
func ColorFromPixel(p uint32) Color {
	return Color{
		R: float64(p>>16&0xff) / 255,
		G: float64(p>>8&0xff) / 255,
		B: float64(p&0xff) / 255,
	}
}

// RGBA converts the color to an opaque image/color RGBA value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*255 + 0.5),
		G: uint8(c.G*255 + 0.5),
		B: uint8(c.B*255 + 0.5),
		A: 255,
	}
}
