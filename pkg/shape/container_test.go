package shape_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkpad/pkg/geometry"
	"inkpad/pkg/shape"
	"inkpad/pkg/view"
)

func testLine() *shape.Line {
	return shape.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(1, 1))
}

func TestContainerAddClones(t *testing.T) {
	c := shape.NewContainer()
	l := testLine()
	c.Add(l)

	// Mutating the caller's shape must not reach the stored clone.
	l.SetVertex(0, geometry.NewPoint(99, 99))

	assert.Equal(t, 1, c.Size())
	assert.Equal(t, 0.0, c.At(0).Vertex(0).X())
}

func TestContainerInsertionOrder(t *testing.T) {
	c := shape.NewContainer()
	c.Add(shape.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(1, 0)))
	c.Add(shape.NewLine(geometry.NewPoint(0, 1), geometry.NewPoint(1, 1)))
	c.Add(shape.NewLine(geometry.NewPoint(0, 2), geometry.NewPoint(1, 2)))

	for i := 0; i < 3; i++ {
		assert.Equal(t, float64(i), c.At(i).Vertex(0).Y())
	}
}

func TestContainerAtBoundsPanics(t *testing.T) {
	c := shape.NewContainer()
	c.Add(testLine())

	assert.Panics(t, func() { c.At(1) })
	assert.Panics(t, func() { c.At(-1) })
}

func TestContainerMergeAndClone(t *testing.T) {
	a := shape.NewContainer()
	a.Add(testLine())

	b := shape.NewContainer()
	b.Add(testLine())
	b.Add(testLine())

	a.Merge(b)
	assert.Equal(t, 3, a.Size())
	assert.Equal(t, 2, b.Size())

	clone := a.Clone()
	require.Equal(t, 3, clone.Size())

	clone.At(0).SetVertex(0, geometry.NewPoint(55, 55))
	assert.Equal(t, 0.0, a.At(0).Vertex(0).X())
}

func TestContainerErase(t *testing.T) {
	c := shape.NewContainer()
	c.Add(testLine())
	c.Add(testLine())

	c.Erase()
	assert.Equal(t, 0, c.Size())
}

func TestContainerDrawInOrder(t *testing.T) {
	dev := newRecordingDevice()
	vc := view.NewContext(dev)

	c := shape.NewContainer()
	c.Add(shape.NewLineWithColor(geometry.NewPoint(0, 0), geometry.NewPoint(1, 0), geometry.Red()))
	c.Add(shape.NewLineWithColor(geometry.NewPoint(0, 0), geometry.NewPoint(0, 1), geometry.Blue()))

	c.Draw(dev, vc)

	require.Len(t, dev.segments, 2)
	assert.Equal(t, geometry.Red().Pixel(), dev.colors[0])
	assert.Equal(t, geometry.Blue().Pixel(), dev.colors[1])
}

func TestContainerWriteReadRoundTrip(t *testing.T) {
	c := shape.NewContainer()
	c.Add(shape.NewLineWithColor(geometry.NewPoint(0, 0), geometry.NewPoint(1, 1), geometry.Red()))
	c.Add(shape.NewTriangle(
		geometry.NewPoint(0, 0),
		geometry.NewPoint(1, 0),
		geometry.NewPoint(0, 1),
	))
	c.Add(shape.NewPolygon(
		geometry.NewPoint(0, 0),
		geometry.NewPoint(2, 0),
		geometry.NewPoint(2, 2),
		geometry.NewPoint(0, 2),
	))

	var buf strings.Builder
	require.NoError(t, c.Write(&buf))

	loaded := shape.NewContainer()
	require.NoError(t, loaded.Read(strings.NewReader(buf.String())))

	require.Equal(t, c.Size(), loaded.Size())
	assert.IsType(t, &shape.Line{}, loaded.At(0))
	assert.IsType(t, &shape.Triangle{}, loaded.At(1))
	assert.IsType(t, &shape.Polygon{}, loaded.At(2))

	var again strings.Builder
	require.NoError(t, loaded.Write(&again))
	assert.Equal(t, buf.String(), again.String())
}

func TestContainerReadAppends(t *testing.T) {
	c := shape.NewContainer()
	c.Add(testLine())

	input := shape.Encode(testLine()) + "\n"
	require.NoError(t, c.Read(strings.NewReader(input)))

	assert.Equal(t, 2, c.Size())
}

func TestContainerReadAtomicOnFailure(t *testing.T) {
	c := shape.NewContainer()
	c.Add(testLine())

	input := shape.Encode(testLine()) + "\n" + "this line is not a shape\n"
	err := c.Read(strings.NewReader(input))

	require.Error(t, err)
	assert.ErrorIs(t, err, shape.ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")

	// The valid first line must not have been applied either.
	assert.Equal(t, 1, c.Size())
}

func TestContainerReadEmptyInput(t *testing.T) {
	c := shape.NewContainer()
	require.NoError(t, c.Read(strings.NewReader("")))
	assert.Equal(t, 0, c.Size())
}
