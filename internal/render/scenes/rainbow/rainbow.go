package rainbow

import (
	"math"

	"github.com/coreman2200/flamesim/internal/layout"
	"github.com/coreman2200/flamesim/internal/render"
)

const (
	Name = "Rainbow flood"

	// HueSpeed is how far the rainbow scrolls, in degrees per second.
	HueSpeed = 120.0
)

// Scene paints a full hue cycle from the lowest LED to the highest and
// scrolls it upward over time.
type Scene struct {
	lastTick uint64
	hue      float64
	minY     int
	height   float64
}

func New(leds []render.LED) *Scene {
	lo, hi := layout.YRange(leds)
	return &Scene{minY: lo, height: float64(hi - lo)}
}

func (s *Scene) Name() string { return Name }

// Hue is the hue of the lowest LED, in [0,360).
func (s *Scene) Hue() float64 { return s.hue }

func (s *Scene) Tick(leds []render.LED, elapsed uint64, intensity float64) {
	dt := render.DeltaSeconds(s.lastTick, elapsed)
	s.lastTick = elapsed
	s.hue = math.Mod(s.hue+HueSpeed*dt, 360)

	v := render.Clamp01(intensity)
	for i := range leds {
		h := s.hue
		// a flat layout gets a single color
		if s.height > 0 {
			h += float64(leds[i].Coords.Y-s.minY) / s.height * 360
		}
		leds[i].Color = render.HSVToRGB(math.Mod(h, 360), 1, v)
	}
}
