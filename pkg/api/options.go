package api

import (
	"image/color"

	"inkpad/pkg/view"
)

// RenderOptions configures how a drawing is rasterized.
type RenderOptions struct {
	// Width and Height size the output surface in pixels.
	// Default: 800×800
	Width  int
	Height int

	// Background fills the surface before drawing.
	// Default: white
	Background color.Color

	// LineWidth is the stroke width in pixels.
	// Default: 1
	LineWidth float64

	// View parameters applied before drawing. Defaults match a fresh
	// view context: no translation, no rotation, 400×400 scale.
	TranslationX float64
	TranslationY float64
	Rotation     float64
	ScaleX       float64
	ScaleY       float64
}

// DefaultRenderOptions returns render options with sensible defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Width:        800,
		Height:       800,
		Background:   color.White,
		LineWidth:    1,
		TranslationX: view.DefaultTranslationX,
		TranslationY: view.DefaultTranslationY,
		Rotation:     view.DefaultRotation,
		ScaleX:       view.DefaultScaleX,
		ScaleY:       view.DefaultScaleY,
	}
}

// WithSize returns options with the specified surface size.
func WithSize(width, height int) RenderOptions {
	opts := DefaultRenderOptions()
	opts.Width = width
	opts.Height = height
	return opts
}

// WithBackground returns options with the specified background color.
func WithBackground(c color.Color) RenderOptions {
	opts := DefaultRenderOptions()
	opts.Background = c
	return opts
}

// Option is a functional option for configuring RenderOptions.
type Option func(*RenderOptions)

// Size sets the surface size in pixels.
func Size(width, height int) Option {
	return func(o *RenderOptions) {
		o.Width = width
		o.Height = height
	}
}

// Background sets the background color.
func Background(c color.Color) Option {
	return func(o *RenderOptions) {
		o.Background = c
	}
}

// LineWidth sets the stroke width in pixels.
func LineWidth(w float64) Option {
	return func(o *RenderOptions) {
		o.LineWidth = w
	}
}

// Translation sets the model-space view translation.
func Translation(x, y float64) Option {
	return func(o *RenderOptions) {
		o.TranslationX = x
		o.TranslationY = y
	}
}

// Rotation sets the view rotation in radians.
func Rotation(rad float64) Option {
	return func(o *RenderOptions) {
		o.Rotation = rad
	}
}

// Zoom multiplies the default view scale by a uniform factor.
func Zoom(f float64) Option {
	return func(o *RenderOptions) {
		o.ScaleX = view.DefaultScaleX * f
		o.ScaleY = view.DefaultScaleY * f
	}
}

// NewRenderOptions creates options from functional options.
func NewRenderOptions(opts ...Option) RenderOptions {
	o := DefaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Apply applies functional options to existing options.
func (o *RenderOptions) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// ExportOptions configure saving a rendered drawing to an image file.
type ExportOptions struct {
	// Format specifies the output format: "png", "jpeg"
	Format string

	// Quality for JPEG (1-100)
	Quality int
}

// DefaultExportOptions returns default export options.
func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Format:  "png",
		Quality: 90,
	}
}

// PNG returns export options for PNG format.
func PNG() ExportOptions {
	return ExportOptions{Format: "png"}
}

// JPEG returns export options for JPEG format with quality.
func JPEG(quality int) ExportOptions {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	return ExportOptions{
		Format:  "jpeg",
		Quality: quality,
	}
}
