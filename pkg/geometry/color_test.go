package geometry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"inkpad/pkg/geometry"
)

func TestNewColorClamps(t *testing.T) {
	c := geometry.NewColor(-0.5, 0.25, 1.5)

	assert.Equal(t, float64(0), c.R)
	assert.Equal(t, float64(0.25), c.G)
	assert.Equal(t, float64(1), c.B)
}

func TestColorChannel(t *testing.T) {
	c := geometry.NewColor(0.1, 0.2, 0.3)

	assert.Equal(t, 0.1, c.Channel(0))
	assert.Equal(t, 0.2, c.Channel(1))
	assert.Equal(t, 0.3, c.Channel(2))
	assert.Panics(t, func() { c.Channel(3) })
}

func TestColorPixelPacking(t *testing.T) {
	assert.Equal(t, uint32(0x000000), geometry.Black().Pixel())
	assert.Equal(t, uint32(0xffffff), geometry.White().Pixel())
	assert.Equal(t, uint32(0xff0000), geometry.Red().Pixel())
	assert.Equal(t, uint32(0x00ff00), geometry.Green().Pixel())
	assert.Equal(t, uint32(0x0000ff), geometry.Blue().Pixel())
	assert.Equal(t, uint32(0x00ffff), geometry.Cyan().Pixel())
	assert.Equal(t, uint32(0xff00ff), geometry.Magenta().Pixel())
	assert.Equal(t, uint32(0xffff00), geometry.Yellow().Pixel())
}

func TestColorFromPixelRoundTrip(t *testing.T) {
	for _, c := range []geometry.Color{
		geometry.Black(),
		geometry.White(),
		geometry.Red(),
		geometry.Cyan(),
	} {
		assert.Equal(t, c.Pixel(), geometry.ColorFromPixel(c.Pixel()).Pixel())
	}
}

func TestColorRGBAOpaque(t *testing.T) {
	rgba := geometry.NewColor(1, 0.5, 0).RGBA()

	assert.Equal(t, uint8(255), rgba.R)
	assert.Equal(t, uint8(128), rgba.G)
	assert.Equal(t, uint8(0), rgba.B)
	assert.Equal(t, uint8(255), rgba.A)
}

func TestRandomColorInRange(t *testing.T) {
	for i := 0; i < 20; i++ {
		c := geometry.Random()
		for ch := 0; ch < 3; ch++ {
			v := c.Channel(ch)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
}
