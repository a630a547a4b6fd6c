package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/flamesim/internal/render"
)

func TestBuiltinRevisions(t *testing.T) {
	assert.Equal(t, []string{"pcb-v1", "pcb-v2"}, Names())
	for _, name := range Names() {
		r, err := Lookup(name)
		require.NoError(t, err)
		assert.Len(t, r.Points, 12)
		require.NoError(t, r.Candle.Validate(len(r.Points)), name)
	}
	_, err := Lookup("pcb-v9")
	require.ErrorIs(t, err, ErrUnknownRevision)
}

func TestCanonicalIsFlippedV1(t *testing.T) {
	v2, err := Lookup(Default)
	require.NoError(t, err)
	lo, hi := YRange(v2.LEDs())
	assert.Equal(t, 3, lo)
	assert.Equal(t, 30, hi)
	assert.Equal(t, image.Pt(112, 3), v2.Points[9], "wick sits at the bottom")
	assert.Equal(t, image.Pt(110, 30), v2.Points[4], "tip sits at the top")
}

func TestLookupReturnsCopy(t *testing.T) {
	a, _ := Lookup("pcb-v1")
	a.Points[0] = image.Pt(-1, -1)
	b, _ := Lookup("pcb-v1")
	assert.Equal(t, image.Pt(103, 96), b.Points[0])
}

func TestCandleValidate(t *testing.T) {
	g := CanonicalCandle()
	require.Error(t, g.Validate(5))
	g.Wick = []int{0}
	require.Error(t, g.Validate(12), "duplicate index")
}

func TestFromPoints(t *testing.T) {
	_, err := FromPoints("empty", nil)
	require.ErrorIs(t, err, render.ErrEmptyLayout)

	r, err := FromPoints("tiny", []image.Point{{0, 0}, {0, 10}})
	require.NoError(t, err)
	assert.Empty(t, r.Candle.Flame)
	assert.Len(t, r.LEDs(), 2)
}

func TestBounds(t *testing.T) {
	leds := []render.LED{{Coords: image.Pt(5, 10)}, {Coords: image.Pt(1, 20)}}
	assert.Equal(t, image.Rect(-2, 7, 8, 23), Bounds(leds, 3))
	assert.Equal(t, image.Rectangle{}, Bounds(nil, 3))
}
