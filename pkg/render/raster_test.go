package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpad/pkg/render"
)

func TestRasterDimensions(t *testing.T) {
	r := render.NewRaster(320, 200)

	assert.Equal(t, 320, r.WindowWidth())
	assert.Equal(t, 200, r.WindowHeight())
	assert.Equal(t, 320, r.Image().Bounds().Dx())
	assert.Equal(t, 200, r.Image().Bounds().Dy())
}

func TestRasterStartsWhite(t *testing.T) {
	r := render.NewRaster(10, 10)

	c := r.Image().RGBAAt(5, 5)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, c)
}

func TestRasterClearUsesBackground(t *testing.T) {
	r := render.NewRaster(10, 10)
	r.SetBackground(color.RGBA{0, 0, 255, 255})
	r.Clear()

	assert.Equal(t, color.RGBA{0, 0, 255, 255}, r.Image().RGBAAt(3, 7))
}

func TestRasterDrawLineMarksPixels(t *testing.T) {
	r := render.NewRaster(20, 20)
	r.SetColor(0x000000)
	r.DrawLine(0, 10, 19, 10)

	// A horizontal stroke through the middle must darken a pixel on its
	// path and leave far corners untouched.
	mid := r.Image().RGBAAt(10, 10)
	assert.Less(t, int(mid.R), 255)

	corner := r.Image().RGBAAt(0, 0)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, corner)
}

func TestRasterZeroLengthSegmentIsNoop(t *testing.T) {
	r := render.NewRaster(10, 10)
	r.SetColor(0x000000)
	r.DrawLine(5, 5, 5, 5)

	assert.Equal(t, color.RGBA{255, 255, 255, 255}, r.Image().RGBAAt(5, 5))
}

func TestExportEncodePNG(t *testing.T) {
	e := render.NewExport(64, 48)
	e.SetColor(0xff0000)
	e.DrawLine(0, 0, 63, 47)

	var buf bytes.Buffer
	require.NoError(t, e.EncodePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestExportSavePicksFormatByExtension(t *testing.T) {
	e := render.NewExport(16, 16)
	e.DrawLine(0, 0, 15, 15)

	dir := t.TempDir()
	require.NoError(t, e.Save(dir+"/out.png"))
	require.NoError(t, e.Save(dir+"/out.jpg"))

	err := e.Save(dir + "/out.bmp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported")
}
