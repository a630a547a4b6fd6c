package render

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSVToRGB converts hue in degrees, saturation and value in [0,1] to an
// 8-bit color. Hue wraps into [0,360); s and v are clamped.
func HSVToRGB(h, s, v float64) RGB8 {
	c := colorful.Hsv(WrapHue(h), Clamp01(s), Clamp01(v))
	r, g, b := c.RGB255()
	return RGB8{r, g, b}
}

// ValidateHSV reports whether (h,s,v) is within the documented domain.
func ValidateHSV(h, s, v float64) error {
	switch {
	case !(h >= 0 && h < 360):
		return fmt.Errorf("hue %v outside [0,360): %w", h, ErrInvalidParameter)
	case !(s >= 0 && s <= 1):
		return fmt.Errorf("saturation %v outside [0,1]: %w", s, ErrInvalidParameter)
	case !(v >= 0 && v <= 1):
		return fmt.Errorf("value %v outside [0,1]: %w", v, ErrInvalidParameter)
	}
	return nil
}

// WrapHue maps any hue onto [0,360). NaN and Inf map to 0.
func WrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
