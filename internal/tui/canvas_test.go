package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/flamesim/internal/layout"
	"github.com/coreman2200/flamesim/internal/render"
)

func boardLEDs(t *testing.T) []render.LED {
	t.Helper()
	rev, err := layout.Lookup(layout.Default)
	require.NoError(t, err)
	leds := rev.LEDs()
	for i := range leds {
		leds[i].Color = render.RGB8{R: uint8(20 * (i + 1)), G: 1}
	}
	return leds
}

func TestRasterDrawsEveryLEDAtItsPosition(t *testing.T) {
	leds := boardLEDs(t)
	r := Rasterize(leds, 80, 22)
	assert.Equal(t, 80, r.W)
	assert.Equal(t, 44, r.H)
	for i, l := range leds {
		x, y := r.Center(l.Coords)
		c, ok := r.At(x, y)
		require.True(t, ok, "LED %d", i)
		assert.Equal(t, l.Color, c, "LED %d", i)
	}
}

func TestRasterYGrowsUpward(t *testing.T) {
	leds := boardLEDs(t)
	r := Rasterize(leds, 80, 22)
	_, tip := r.Center(leds[4].Coords)
	_, wick := r.Center(leds[9].Coords)
	_, base := r.Center(leds[8].Coords)
	assert.Less(t, tip, wick)
	assert.Equal(t, wick, base, "same board y, same row")
}

func TestRasterKeepsAspect(t *testing.T) {
	// two LEDs 10 apart horizontally and vertically land equally far apart
	leds := []render.LED{{}, {}, {}}
	leds[1].Coords.X = 10
	leds[2].Coords.Y = 10
	r := Rasterize(leds, 120, 20)
	x0, y0 := r.Center(leds[0].Coords)
	x1, _ := r.Center(leds[1].Coords)
	_, y2 := r.Center(leds[2].Coords)
	assert.InDelta(t, x1-x0, y0-y2, 1)
}

func TestRasterDegenerate(t *testing.T) {
	r := Rasterize(nil, 10, 10)
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			_, ok := r.At(x, y)
			assert.False(t, ok)
		}
	}
	assert.NotPanics(t, func() { Rasterize(boardLEDs(t), 1, 1) })
	assert.NotPanics(t, func() { Rasterize(boardLEDs(t), 0, 0) })
	_, ok := Rasterize(boardLEDs(t), 1, 1).At(0, 0)
	assert.True(t, ok)
}
