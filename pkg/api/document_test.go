package api_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpad/pkg/api"
	"inkpad/pkg/geometry"
	"inkpad/pkg/shape"
)

func sampleDrawing() *api.Drawing {
	d := api.New()
	d.Add(shape.NewLineWithColor(geometry.NewPoint(-0.5, -0.5), geometry.NewPoint(0.5, 0.5), geometry.Red()))
	d.Add(shape.NewTriangle(
		geometry.NewPoint(0, 0),
		geometry.NewPoint(0.5, 0),
		geometry.NewPoint(0, 0.5),
	))
	return d
}

func TestSaveOpenRoundTrip(t *testing.T) {
	d := sampleDrawing()
	path := filepath.Join(t.TempDir(), "drawing.shapes")

	require.NoError(t, d.Save(path))

	loaded, err := api.Open(path)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.ShapeCount())
	assert.IsType(t, &shape.Line{}, loaded.Shape(0))
	assert.IsType(t, &shape.Triangle{}, loaded.Shape(1))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := api.Open(filepath.Join(t.TempDir(), "nope.shapes"))
	assert.Error(t, err)
}

func TestOpenMalformedFileReportsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.shapes")
	content := shape.Encode(shape.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(1, 1))) + "\ngarbage\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := api.Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, shape.ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")
}

func TestOpenReaderAndWrite(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, sampleDrawing().Write(&buf))

	d, err := api.OpenReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, 2, d.ShapeCount())
}

func TestAddClonesShape(t *testing.T) {
	d := api.New()
	l := shape.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(1, 1))
	d.Add(l)

	l.SetVertex(0, geometry.NewPoint(9, 9))
	assert.Equal(t, 0.0, d.Shape(0).Vertex(0).X())
}

func TestRenderDefaultSize(t *testing.T) {
	img := sampleDrawing().Render()

	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestRenderWithOptionsSize(t *testing.T) {
	opts := api.NewRenderOptions(api.Size(200, 100))
	img := sampleDrawing().RenderWithOptions(opts)

	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())
}

func TestRenderDrawsShapes(t *testing.T) {
	d := api.New()
	d.Add(shape.NewLine(geometry.NewPoint(-1, 0), geometry.NewPoint(1, 0)))

	img := d.Render()

	// The default view puts a horizontal unit line through the window
	// center, so some pixel on that row must be darkened.
	marked := false
	for x := 0; x < img.Bounds().Dx(); x++ {
		if img.RGBAAt(x, 400).R < 255 {
			marked = true
			break
		}
	}
	assert.True(t, marked)
}

func TestExportPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, sampleDrawing().Export(path, api.WithSize(120, 80)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestExportWriterFormats(t *testing.T) {
	d := sampleDrawing()
	opts := api.WithSize(32, 32)

	var buf bytes.Buffer
	require.NoError(t, d.ExportWriter(&buf, opts, api.PNG()))
	require.NoError(t, d.ExportWriter(&buf, opts, api.JPEG(80)))

	err := d.ExportWriter(&buf, opts, api.ExportOptions{Format: "tiff"})
	assert.Error(t, err)
}

func TestDefaultRenderOptions(t *testing.T) {
	opts := api.DefaultRenderOptions()

	assert.Equal(t, 800, opts.Width)
	assert.Equal(t, 800, opts.Height)
	assert.Equal(t, 400.0, opts.ScaleX)
	assert.Equal(t, 400.0, opts.ScaleY)
	assert.Equal(t, 0.0, opts.Rotation)
}

func TestZoomOption(t *testing.T) {
	opts := api.NewRenderOptions(api.Zoom(2))

	assert.Equal(t, 800.0, opts.ScaleX)
	assert.Equal(t, 800.0, opts.ScaleY)
}
