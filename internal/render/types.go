package render

import (
	"errors"
	"image"
	"math"
)

var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrEmptyLayout      = errors.New("layout has no LEDs")
	ErrUnknownScene     = errors.New("unknown scene")
)

// Component is the set of channel types an RGB value can carry.
type Component interface {
	~uint8 | ~float32 | ~float64
}

// RGB is a color with channels expressed on the 0..255 scale.
type RGB[T Component] struct{ R, G, B T }

// RGB8 is what an LED actually displays.
type RGB8 = RGB[uint8]

// Black is the all-off color.
var Black = RGB8{}

// LED is one physical light on the board. Coords never change after layout.
type LED struct {
	Color  RGB8
	Coords image.Point
}

// Gray returns (v,v,v) for a brightness v in [0,1], rounded.
func Gray(v float64) RGB8 {
	c := to8(255 * Clamp01(v))
	return RGB8{c, c, c}
}

// Scale multiplies every channel by k and rounds into 0..255.
func Scale(c RGB8, k float64) RGB8 {
	k = Clamp01(k)
	return RGB8{
		R: to8(float64(c.R) * k),
		G: to8(float64(c.G) * k),
		B: to8(float64(c.B) * k),
	}
}

// To8 rounds a floating color into displayable form.
func To8[T ~float32 | ~float64](c RGB[T]) RGB8 {
	return RGB8{to8(float64(c.R)), to8(float64(c.G)), to8(float64(c.B))}
}

// Clamp01 clamps x in [0,1]. NaN becomes 0.
func Clamp01(x float64) float64 {
	if x > 0 {
		if x > 1 {
			return 1
		}
		return x
	}
	return 0
}

func to8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// DeltaSeconds returns max(0, now-last) in seconds for microsecond timestamps.
func DeltaSeconds(last, now uint64) float64 {
	if now <= last {
		return 0
	}
	return float64(now-last) / 1e6
}
