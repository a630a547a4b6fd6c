package steady

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coreman2200/flamesim/internal/render"
)

func TestSteadyMonotonicInIntensity(t *testing.T) {
	leds := make([]render.LED, 3)
	s := New(leds)
	assert.Equal(t, Name, s.Name())

	prev := -1
	for i := 0; i <= 100; i++ {
		s.Tick(leds, uint64(i)*1000, float64(i)/100)
		c := leds[0].Color
		assert.Equal(t, c.R, c.G)
		assert.Equal(t, c.G, c.B)
		assert.GreaterOrEqual(t, int(c.R), prev)
		prev = int(c.R)
		for _, l := range leds {
			assert.Equal(t, c, l.Color)
		}
	}
	assert.Equal(t, 255, prev)

	s.Tick(leds, 0, 0)
	assert.Equal(t, render.Black, leds[2].Color)
}
