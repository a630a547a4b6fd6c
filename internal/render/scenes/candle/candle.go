// Package candle renders a colored candle flame: a blue base that leans
// with the flame, a dark wick, and an orange-to-yellow body whose height
// and sway come from summed sine flicker signals. Output depends only on
// time and intensity.
package candle

import (
	"math"

	"github.com/coreman2200/flamesim/internal/layout"
	"github.com/coreman2200/flamesim/internal/render"
)

const (
	Name = "Candle flame (colored)"

	// BaseHue is the hue of the blue LEDs at the foot of the flame.
	BaseHue = 200.0
)

// Scene holds the LED groups it drives. LEDs outside every group stay dark.
type Scene struct {
	lastTick uint64
	groups   layout.CandleGroups
}

// New uses the canonical board mapping, dropping any index the layout lacks.
func New(leds []render.LED) *Scene {
	return NewWithGroups(leds, layout.CanonicalCandle())
}

// NewWithGroups drives the given groups.
func NewWithGroups(leds []render.LED, g layout.CandleGroups) *Scene {
	n := len(leds)
	g.Base = inRange(g.Base, n)
	g.Wick = inRange(g.Wick, n)
	g.Flame = inRange(g.Flame, n)
	return &Scene{groups: g}
}

func inRange(idx []int, n int) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if i >= 0 && i < n {
			out = append(out, i)
		}
	}
	return out
}

func (s *Scene) Name() string { return Name }

// HorizFlicker is the side-to-side sway at t seconds, within about ±4.
func HorizFlicker(t float64) float64 {
	return 1.5 * (math.Sin(2*t) + math.Sin(t) + 0.3*math.Sin(12*t) + 0.1*math.Sin(100*t))
}

// VertFlicker is the height wobble at t seconds, within about ±10.
func VertFlicker(t float64) float64 {
	return 5 * (0.4*math.Sin(t) + 0.3*math.Sin(2*t) + math.Sin(3*t) + 0.3*math.Sin(8*t) + 0.05*math.Sin(130*t))
}

// FlameHeight is how far above the flame origin the flame reaches.
func FlameHeight(t, intensity float64) float64 {
	return (VertFlicker(t) + 10) * render.Clamp01(intensity)
}

// profile maps a position up the flame (0 at the origin, 1 at the tip) to
// hue, saturation and value. Saturation dips about two thirds of the way up.
func profile(p float64) (h, s, v float64) {
	h = math.Max(15*p+35, 37)
	s = render.Clamp01(-0.247097*math.Sin(11.8961*p) + 0.277867*math.Sin(8.61221*p) + 0.5311)
	v = 1
	if p > 1 {
		v = -20*p + 21
	}
	return h, s, v
}

// signum treats +0 as positive and -0 as negative.
func signum(x float64) float64 {
	if math.Signbit(x) {
		return -1
	}
	return 1
}

func (s *Scene) Tick(leds []render.LED, elapsed uint64, intensity float64) {
	s.lastTick = elapsed
	intensity = render.Clamp01(intensity)
	t := float64(elapsed) / 1e6
	horiz := HorizFlicker(t)
	vert := VertFlicker(t)
	height := FlameHeight(t, intensity)
	baseX := float64(s.groups.CandleBase.X)

	for i := range leds {
		leds[i].Color = render.Black
	}

	for _, i := range s.groups.Base {
		inv := signum((float64(leds[i].Coords.X) - baseX) * horiz)
		v := 0.4 + 0.02*horiz*inv + 0.005*vert + 0.03*intensity
		leds[i].Color = render.HSVToRGB(BaseHue, 1, v)
	}

	if height <= 0 {
		return
	}
	for _, i := range s.groups.Flame {
		c := leds[i].Coords
		p := (float64(c.Y) - s.groups.FlameOriginY) / height
		sway := 0.1 * horiz * signum((float64(c.X)-baseX)*horiz)
		h, sat, v := profile(p + sway)
		leds[i].Color = render.HSVToRGB(h, sat, render.Clamp01(v+sway))
	}
}
