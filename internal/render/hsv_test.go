package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHSVToRGBPrimaries(t *testing.T) {
	cases := []struct {
		h, s, v float64
		want    RGB8
	}{
		{0, 1, 1, RGB8{255, 0, 0}},
		{60, 1, 1, RGB8{255, 255, 0}},
		{120, 1, 1, RGB8{0, 255, 0}},
		{180, 1, 1, RGB8{0, 255, 255}},
		{240, 1, 1, RGB8{0, 0, 255}},
		{300, 1, 1, RGB8{255, 0, 255}},
		{0, 0, 1, RGB8{255, 255, 255}},
		{200, 1, 0, RGB8{0, 0, 0}},
		{0, 0, 0.5, RGB8{128, 128, 128}},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HSVToRGB(c.h, c.s, c.v), "hsv(%v,%v,%v)", c.h, c.s, c.v)
	}
}

func TestHSVToRGBSextantBoundariesAreContinuous(t *testing.T) {
	const eps = 1e-9
	for _, b := range []float64{60, 120, 180, 240, 300} {
		lo := HSVToRGB(b-eps, 1, 1)
		hi := HSVToRGB(b, 1, 1)
		assert.InDelta(t, float64(lo.R), float64(hi.R), 1, "R at %v", b)
		assert.InDelta(t, float64(lo.G), float64(hi.G), 1, "G at %v", b)
		assert.InDelta(t, float64(lo.B), float64(hi.B), 1, "B at %v", b)
	}
	assert.Equal(t, HSVToRGB(0, 1, 1), HSVToRGB(360-1e-12, 1, 1))
}

func TestHSVToRGBWrapsAndClamps(t *testing.T) {
	assert.Equal(t, HSVToRGB(0, 1, 1), HSVToRGB(360, 1, 1))
	assert.Equal(t, HSVToRGB(240, 1, 1), HSVToRGB(-120, 1, 1))
	assert.Equal(t, HSVToRGB(30, 1, 1), HSVToRGB(750, 1, 1))
	assert.Equal(t, HSVToRGB(10, 1, 1), HSVToRGB(10, 4, 7))
	assert.Equal(t, Black, HSVToRGB(10, 1, -3))
}

func TestValidateHSV(t *testing.T) {
	require.NoError(t, ValidateHSV(0, 0, 0))
	require.NoError(t, ValidateHSV(359.9, 1, 1))
	for _, bad := range [][3]float64{{360, 1, 1}, {-1, 1, 1}, {0, 1.1, 1}, {0, 1, -0.1}} {
		require.ErrorIs(t, ValidateHSV(bad[0], bad[1], bad[2]), ErrInvalidParameter)
	}
}

func TestDeltaSecondsNeverNegative(t *testing.T) {
	assert.Equal(t, 0.0, DeltaSeconds(2_000_000, 1_000_000))
	assert.Equal(t, 0.5, DeltaSeconds(1_000_000, 1_500_000))
}

func TestGrayRounds(t *testing.T) {
	assert.Equal(t, RGB8{128, 128, 128}, Gray(0.5))
	assert.Equal(t, RGB8{255, 255, 255}, Gray(2))
	assert.Equal(t, Black, Gray(-1))
	assert.Equal(t, RGB8{128, 15, 0}, Scale(RGB8{255, 30, 0}, 0.5))
}
