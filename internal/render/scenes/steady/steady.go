package steady

import "github.com/coreman2200/flamesim/internal/render"

const Name = "Always on"

// Scene lights every LED white at the current intensity.
type Scene struct{}

func New(_ []render.LED) *Scene { return &Scene{} }

func (s *Scene) Name() string { return Name }

func (s *Scene) Tick(leds []render.LED, _ uint64, intensity float64) {
	c := render.Gray(intensity)
	for i := range leds {
		leds[i].Color = c
	}
}
