package flicker

import (
	"image"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/flamesim/internal/layout"
	"github.com/coreman2200/flamesim/internal/render"
)

func board(t *testing.T) []render.LED {
	t.Helper()
	rev, err := layout.Lookup(layout.Default)
	require.NoError(t, err)
	return rev.LEDs()
}

func TestFlickerHeightStaysInRange(t *testing.T) {
	leds := board(t)
	s := NewWithRand(leds, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, Name, s.Name())
	assert.Equal(t, 0.5, s.Height())

	var at uint64
	for i := 0; i < 5000; i++ {
		at += uint64(1+i%7) * 400_000
		s.Tick(leds, at, float64(i%11)/10)
		require.GreaterOrEqual(t, s.Height(), 0.0)
		require.LessOrEqual(t, s.Height(), 1.0)
	}
}

// pinned always returns the same random draw.
func pinned(v float64) *Scene {
	s := New(nil)
	s.rnd = func() float64 { return v }
	return s
}

func TestFlickerClampsAtExtremes(t *testing.T) {
	leds := []render.LED{{Coords: image.Pt(0, 0)}, {Coords: image.Pt(0, 10)}}

	up := pinned(0.999)
	up.minY, up.span = 0, 10
	up.Tick(leds, 1_000_000, 1)
	assert.Equal(t, 1.0, up.Height())
	assert.Equal(t, Color, leds[0].Color)
	assert.Equal(t, Color, leds[1].Color, "line at the top lights the top LED fully")

	down := pinned(0)
	down.minY, down.span = 0, 10
	down.Tick(leds, 1_000_000, 1)
	assert.Equal(t, 0.0, down.Height())
	assert.Equal(t, Color, leds[0].Color)
	assert.Equal(t, render.Black, leds[1].Color)
}

func TestFlickerNoMoveWithoutTime(t *testing.T) {
	leds := board(t)
	s := pinned(0.9)
	s.Tick(leds, 0, 1)
	assert.Equal(t, 0.5, s.Height())
}

func TestFlickerEdgeFalloff(t *testing.T) {
	assert.Equal(t, 0.0, brightness(2.5))
	assert.Equal(t, 1.0, brightness(-2.5))
	assert.Equal(t, 0.5, brightness(1))
	assert.Equal(t, 0.5, brightness(-1))
	assert.Equal(t, 1.0, brightness(0))
	assert.Equal(t, render.RGB8{R: 128, G: 15}, render.Scale(Color, brightness(1)))
}
