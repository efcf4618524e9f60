package view_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpad/pkg/geometry"
	"inkpad/pkg/view"
)

// fakeDevice supplies a window size and swallows draw calls.
type fakeDevice struct {
	width, height int
}

func (d *fakeDevice) SetColor(uint32)         {}
func (d *fakeDevice) DrawLine(_, _, _, _ int) {}
func (d *fakeDevice) Clear()                  {}
func (d *fakeDevice) WindowWidth() int        { return d.width }
func (d *fakeDevice) WindowHeight() int       { return d.height }

func newTestContext() *view.Context {
	return view.NewContext(&fakeDevice{width: 800, height: 600})
}

func assertPointInDelta(t *testing.T, wantX, wantY float64, p geometry.Point) {
	t.Helper()
	assert.InDelta(t, wantX, p.X(), 1e-9)
	assert.InDelta(t, wantY, p.Y(), 1e-9)
}

func TestDefaultViewMapsOriginToWindowCenter(t *testing.T) {
	vc := newTestContext()

	assertPointInDelta(t, 400, 300, vc.ModelToDevice(geometry.NewPoint(0, 0)))
}

func TestDefaultViewScaleAndFlip(t *testing.T) {
	vc := newTestContext()

	// One model unit right is 400 pixels right.
	assertPointInDelta(t, 800, 300, vc.ModelToDevice(geometry.NewPoint(1, 0)))
	// One model unit up is 400 pixels toward the top of the window.
	assertPointInDelta(t, 400, -100, vc.ModelToDevice(geometry.NewPoint(0, 1)))
}

func TestDefaultParameters(t *testing.T) {
	vc := newTestContext()

	assert.Equal(t, view.DefaultTranslationX, vc.TranslationX())
	assert.Equal(t, view.DefaultTranslationY, vc.TranslationY())
	assert.Equal(t, view.DefaultRotation, vc.Rotation())
	assert.Equal(t, view.DefaultScaleX, vc.ScaleX())
	assert.Equal(t, view.DefaultScaleY, vc.ScaleY())
}

func TestInverseRoundTrip(t *testing.T) {
	vc := newTestContext()
	vc.SetTranslation(0.25, -1.5)
	vc.SetRotation(0.7)
	vc.SetScale(120, 260)

	points := []geometry.Point{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 1),
		geometry.NewPoint(-3.5, 2.25),
		geometry.NewPoint(1e-3, -1e3),
	}
	for _, p := range points {
		back := vc.DeviceToModel(vc.ModelToDevice(p))
		assertPointInDelta(t, p.X(), p.Y(), back)
	}
}

func TestTranslateIsRelative(t *testing.T) {
	vc := newTestContext()

	vc.Translate(1, 2)
	vc.Translate(1, 2)

	assert.Equal(t, 2.0, vc.TranslationX())
	assert.Equal(t, 4.0, vc.TranslationY())
}

func TestRotateAccumulatesUnbounded(t *testing.T) {
	vc := newTestContext()

	for i := 0; i < 8; i++ {
		vc.Rotate(math.Pi)
	}

	assert.InDelta(t, 8*math.Pi, vc.Rotation(), 1e-12)
}

func TestScaleMultiplies(t *testing.T) {
	a := newTestContext()
	a.Scale(2, 2)
	a.Scale(2, 2)

	b := newTestContext()
	b.Scale(4, 4)

	assert.Equal(t, b.ScaleX(), a.ScaleX())
	assert.Equal(t, b.ScaleY(), a.ScaleY())
	assert.True(t, a.Forward().Equal(b.Forward()))
}

func TestRotationMapsUnitXUpward(t *testing.T) {
	vc := newTestContext()
	vc.SetRotation(math.Pi / 2)

	// A quarter turn sends +x to +y in model space, which the screen
	// flip then maps toward the top of the window.
	assertPointInDelta(t, 400, -100, vc.ModelToDevice(geometry.NewPoint(1, 0)))
}

func TestTranslationAppliesBeforeScale(t *testing.T) {
	vc := newTestContext()
	vc.SetTranslation(1, 0)
	vc.SetScale(100, 100)

	// The pan offset is in model units, so it is scaled too.
	assertPointInDelta(t, 500, 300, vc.ModelToDevice(geometry.NewPoint(0, 0)))
}

func TestResetViewRestoresDefaults(t *testing.T) {
	vc := newTestContext()
	def := newTestContext()

	vc.Translate(3, -2)
	vc.Rotate(1.1)
	vc.Scale(0.5, 2)
	require.False(t, vc.Forward().Equal(def.Forward()))

	vc.ResetView()
	assert.True(t, vc.Forward().Equal(def.Forward()))
	assert.True(t, vc.Inverse().Equal(def.Inverse()))
}

func TestPerComponentResets(t *testing.T) {
	vc := newTestContext()
	vc.Translate(3, -2)
	vc.Rotate(1.1)
	vc.Scale(0.5, 2)

	vc.ResetTranslation()
	assert.Equal(t, view.DefaultTranslationX, vc.TranslationX())
	assert.InDelta(t, 1.1, vc.Rotation(), 1e-12)

	vc.ResetRotation()
	assert.Equal(t, view.DefaultRotation, vc.Rotation())
	assert.Equal(t, view.DefaultScaleX*0.5, vc.ScaleX())

	vc.ResetScale()
	assert.Equal(t, view.DefaultScaleX, vc.ScaleX())
	assert.Equal(t, view.DefaultScaleY, vc.ScaleY())
}

func TestUpdateTracksWindowResize(t *testing.T) {
	dev := &fakeDevice{width: 800, height: 600}
	vc := view.NewContext(dev)

	dev.width, dev.height = 400, 400
	vc.Update()

	assertPointInDelta(t, 200, 200, vc.ModelToDevice(geometry.NewPoint(0, 0)))
	back := vc.DeviceToModel(vc.ModelToDevice(geometry.NewPoint(0.3, -0.4)))
	assertPointInDelta(t, 0.3, -0.4, back)
}

func TestForwardReturnsCopy(t *testing.T) {
	vc := newTestContext()

	f := vc.Forward()
	f.Set(0, 0, 12345)

	assert.True(t, vc.Forward().Equal(newTestContext().Forward()))
}
