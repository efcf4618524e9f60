// Package view owns the transform pipeline between model space (the
// coordinates shapes are authored in) and device space (window
// pixels).
//
// The pipeline is a pure function of five scalars plus the window
// size: the forward transform composes
//
//	ScreenTranslate · ScreenFlip · Scale · Rotate · Translate
//
// applied right-to-left to a column vector, so a model point is
// translated and rotated before the view scale applies — panning and
// rotating are therefore independent of the current zoom. The inverse
// is rebuilt compositionally in the exact reverse order with each
// elementary matrix inverted in place (offsets negated, rotation
// transposed, diagonals reciprocated) rather than through a general
// matrix inversion, keeping it bit-for-bit consistent with the
// forward construction. Both matrices are rebuilt eagerly by every
// setter, so they are never stale after a setter returns.
package view

import (
	"math"

	"inkpad/pkg/algebra"
	"inkpad/pkg/geometry"
	"inkpad/pkg/render"
)

// Default view parameters. The default scale maps one model unit to
// 400 pixels, so the unit square fills a decent part of an 800×800
// window.
const (
	DefaultTranslationX = 0.0
	DefaultTranslationY = 0.0
	DefaultRotation     = 0.0
	DefaultScaleX       = 400.0
	DefaultScaleY       = 400.0
)

// Context holds the view state and the two cached transform matrices.
// It reads, but does not own, the device it is paired with; the device
// supplies the window size for the screen-mapping factors.
type Context struct {
	dev render.Device

	translationX float64
	translationY float64
	rotation     float64
	scaleX       float64
	scaleY       float64

	forward algebra.Matrix[float64]
	inverse algebra.Matrix[float64]
}

// NewContext creates a view context over dev with the default view
// parameters, matrices ready.
func NewContext(dev render.Device) *Context {
	c := &Context{
		dev:          dev,
		translationX: DefaultTranslationX,
		translationY: DefaultTranslationY,
		rotation:     DefaultRotation,
		scaleX:       DefaultScaleX,
		scaleY:       DefaultScaleY,
	}
	c.Update()
	return c
}

// ModelToDevice maps a model-space point to device pixels.
func (c *Context) ModelToDevice(p geometry.Point) geometry.Point {
	return geometry.PointFromVec3(c.forward.MulVec3(p.Vec()))
}

// DeviceToModel maps a device-space point back to model space.
func (c *Context) DeviceToModel(p geometry.Point) geometry.Point {
	return geometry.PointFromVec3(c.inverse.MulVec3(p.Vec()))
}

// Translate pans the view by (dx, dy) model units, relative to the
// current translation.
func (c *Context) Translate(dx, dy float64) {
	c.SetTranslation(c.translationX+dx, c.translationY+dy)
}

// Rotate turns the view by dr radians, relative to the current
// rotation. Accumulation is unbounded; no wraparound is applied.
func (c *Context) Rotate(dr float64) {
	c.SetRotation(c.rotation + dr)
}

// Scale zooms the view by the factors (fx, fy), multiplying the
// current scale — a relative zoom step, not an absolute scale.
func (c *Context) Scale(fx, fy float64) {
	c.SetScale(c.scaleX*fx, c.scaleY*fy)
}

// SetTranslation sets the absolute view translation and rebuilds both
// matrices.
func (c *Context) SetTranslation(x, y float64) {
	c.translationX = x
	c.translationY = y
	c.Update()
}

// SetRotation sets the absolute view rotation in radians and rebuilds
// both matrices.
func (c *Context) SetRotation(r float64) {
	c.rotation = r
	c.Update()
}

// SetScale sets the absolute view scale and rebuilds both matrices.
// Scale factors must be nonzero for the inverse to exist.
func (c *Context) SetScale(x, y float64) {
	c.scaleX = x
	c.scaleY = y
	c.Update()
}

// TranslationX returns the current x translation in model units.
func (c *Context) TranslationX() float64 { return c.translationX }

// TranslationY returns the current y translation in model units.
func (c *Context) TranslationY() float64 { return c.translationY }

// Rotation returns the current rotation in radians.
func (c *Context) Rotation() float64 { return c.rotation }

// ScaleX returns the current x scale factor.
func (c *Context) ScaleX() float64 { return c.scaleX }

// ScaleY returns the current y scale factor.
func (c *Context) ScaleY() float64 { return c.scaleY }

// ResetTranslation restores the default translation.
func (c *Context) ResetTranslation() {
	c.SetTranslation(DefaultTranslationX, DefaultTranslationY)
}

// ResetRotation restores the default rotation.
func (c *Context) ResetRotation() {
	c.SetRotation(DefaultRotation)
}

// ResetScale restores the default scale.
func (c *Context) ResetScale() {
	c.SetScale(DefaultScaleX, DefaultScaleY)
}

// ResetView restores all five parameters to their defaults.
func (c *Context) ResetView() {
	c.ResetTranslation()
	c.ResetRotation()
	c.ResetScale()
}

// Forward returns a copy of the current forward (model→device) matrix.
func (c *Context) Forward() algebra.Matrix[float64] {
	return c.forward.Clone()
}

// Inverse returns a copy of the current inverse (device→model) matrix.
func (c *Context) Inverse() algebra.Matrix[float64] {
	return c.inverse.Clone()
}

// Update rebuilds both cached matrices from the current parameters and
// window size. Setters call it automatically; callers only need it
// after the window has been resized.
func (c *Context) Update() {
	c.forward = c.screenTranslationMatrix().
		Mul(c.screenFlipMatrix()).
		Mul(c.scaleMatrix()).
		Mul(c.rotationMatrix()).
		Mul(c.translationMatrix())

	c.inverse = c.invTranslationMatrix().
		Mul(c.invRotationMatrix()).
		Mul(c.invScaleMatrix()).
		Mul(c.invScreenFlipMatrix()).
		Mul(c.invScreenTranslationMatrix())
}

func (c *Context) translationMatrix() algebra.Matrix[float64] {
	m := algebra.Identity[float64](3)
	m.Set(0, 2, c.translationX)
	m.Set(1, 2, c.translationY)
	return m
}

func (c *Context) rotationMatrix() algebra.Matrix[float64] {
	m := algebra.NewMatrix[float64](3, 3)
	cos := math.Cos(c.rotation)
	sin := math.Sin(c.rotation)
	m.Set(0, 0, cos)
	m.Set(0, 1, -sin)
	m.Set(1, 0, sin)
	m.Set(1, 1, cos)
	m.Set(2, 2, 1)
	return m
}

func (c *Context) scaleMatrix() algebra.Matrix[float64] {
	m := algebra.NewMatrix[float64](3, 3)
	m.Set(0, 0, c.scaleX)
	m.Set(1, 1, c.scaleY)
	m.Set(2, 2, 1)
	return m
}

// screenTranslationMatrix shifts the model origin to the window
// center.
func (c *Context) screenTranslationMatrix() algebra.Matrix[float64] {
	m := algebra.Identity[float64](3)
	m.Set(0, 2, float64(c.dev.WindowWidth())/2)
	m.Set(1, 2, float64(c.dev.WindowHeight())/2)
	return m
}

// screenFlipMatrix flips the y axis into the screen's y-down
// convention.
func (c *Context) screenFlipMatrix() algebra.Matrix[float64] {
	m := algebra.NewMatrix[float64](3, 3)
	m.Set(0, 0, 1)
	m.Set(1, 1, -1)
	m.Set(2, 2, 1)
	return m
}

// A translation inverts by negating its offsets.
func (c *Context) invTranslationMatrix() algebra.Matrix[float64] {
	m := c.translationMatrix()
	m.Set(0, 2, -m.At(0, 2))
	m.Set(1, 2, -m.At(1, 2))
	return m
}

// A rotation matrix is orthonormal, so its transpose is its inverse.
func (c *Context) invRotationMatrix() algebra.Matrix[float64] {
	return c.rotationMatrix().Transpose()
}

// A scale inverts by reciprocating its diagonal.
func (c *Context) invScaleMatrix() algebra.Matrix[float64] {
	m := c.scaleMatrix()
	m.Set(0, 0, 1/m.At(0, 0))
	m.Set(1, 1, 1/m.At(1, 1))
	return m
}

// Flip entries are ±1, so reciprocating the diagonal is an identity
// operation kept for symmetry with the other inverses.
func (c *Context) invScreenFlipMatrix() algebra.Matrix[float64] {
	m := c.screenFlipMatrix()
	m.Set(0, 0, 1/m.At(0, 0))
	m.Set(1, 1, 1/m.At(1, 1))
	return m
}

func (c *Context) invScreenTranslationMatrix() algebra.Matrix[float64] {
	m := c.screenTranslationMatrix()
	m.Set(0, 2, -m.At(0, 2))
	m.Set(1, 2, -m.At(1, 2))
	return m
}
