package flash

import "github.com/coreman2200/flamesim/internal/render"

const (
	Name = "Flash every second"

	// Period is the minimum time between toggles, in microseconds.
	Period uint64 = 1_000_000
)

// Scene blinks every LED on and off. The reference time resets to the tick
// that toggled, so irregular frame timing accumulates drift.
type Scene struct {
	lastFlash uint64
	on        bool
}

func New(_ []render.LED) *Scene { return &Scene{} }

func (s *Scene) Name() string { return Name }

// On reports whether the LEDs are lit after the last tick.
func (s *Scene) On() bool { return s.on }

func (s *Scene) Tick(leds []render.LED, elapsed uint64, intensity float64) {
	if elapsed < s.lastFlash {
		s.lastFlash = elapsed
	}
	if elapsed-s.lastFlash >= Period {
		s.on = !s.on
		s.lastFlash = elapsed
	}
	c := render.Black
	if s.on {
		c = render.Gray(intensity)
	}
	for i := range leds {
		leds[i].Color = c
	}
}
