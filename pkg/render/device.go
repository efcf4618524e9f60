// Package render defines the drawing capability the editor core
// consumes and provides two implementations of it: an in-memory
// anti-aliased raster device and a gg-backed export device.
package render

import "image/color"

// Device is the minimal surface the shape layer draws against. The
// core issues nothing beyond these five calls; the windowing backend
// behind them is opaque to it.
type Device interface {
	// SetColor selects the pen as a packed 0xRRGGBB pixel.
	SetColor(pixel uint32)
	// DrawLine strokes a segment between two device-space pixels.
	DrawLine(x0, y0, x1, y1 int)
	// Clear fills the whole surface with the background.
	Clear()
	// WindowWidth returns the surface width in pixels.
	WindowWidth() int
	// WindowHeight returns the surface height in pixels.
	WindowHeight() int
}

func pixelToRGBA(p uint32) color.RGBA {
	return color.RGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: 255,
	}
}
