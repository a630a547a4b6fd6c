package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWhiteCap(t *testing.T) {
	frame := []RGB8{{255, 255, 255}, {255, 0, 0}, {10, 10, 10}}
	ApplyWhiteCap(frame, 0.5)
	for _, c := range frame {
		assert.LessOrEqual(t, int(c.R)+int(c.G)+int(c.B), 382)
	}
	assert.Equal(t, RGB8{255, 0, 0}, frame[1], "under budget untouched")
	assert.Equal(t, frame[0].R, frame[0].B, "hue kept")

	full := []RGB8{{255, 255, 255}}
	ApplyWhiteCap(full, 1)
	assert.Equal(t, RGB8{255, 255, 255}, full[0])
}

func TestEstimateCurrent(t *testing.T) {
	// 12 LEDs full white at 20 mA per channel is 720 mA.
	frame := make([]RGB8, 12)
	for i := range frame {
		frame[i] = RGB8{255, 255, 255}
	}
	assert.InDelta(t, 0.72, EstimateCurrent(frame, DefaultChanmA), 1e-9)
	assert.Equal(t, 0.0, EstimateCurrent(make([]RGB8, 3), DefaultChanmA))
}
