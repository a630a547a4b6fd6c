// Package calib has bring-up scenes for checking wiring order and channel
// mapping on a new board.
package calib

import (
	"time"

	"github.com/coreman2200/flamesim/internal/render"
)

type Kind string

const (
	IndexSweep Kind = "Index sweep"
	RGBTest    Kind = "RGB channels"
)

// Step durations for each kind.
const (
	SweepStep   = 250 * time.Millisecond
	ChannelStep = time.Second
)

// Scene walks one lit LED along the wiring order, or cycles every LED
// through red, green and blue.
type Scene struct {
	kind Kind
}

func NewIndexSweep(_ []render.LED) *Scene { return &Scene{kind: IndexSweep} }
func NewRGBTest(_ []render.LED) *Scene    { return &Scene{kind: RGBTest} }

func (s *Scene) Name() string { return string(s.kind) }

// Step returns which step the scene is on at elapsed microseconds.
func (s *Scene) Step(elapsed uint64) uint64 {
	d := SweepStep
	if s.kind == RGBTest {
		d = ChannelStep
	}
	return elapsed / uint64(d.Microseconds())
}

func (s *Scene) Tick(leds []render.LED, elapsed uint64, intensity float64) {
	for i := range leds {
		leds[i].Color = render.Black
	}
	if len(leds) == 0 {
		return
	}
	step := s.Step(elapsed)
	switch s.kind {
	case IndexSweep:
		leds[step%uint64(len(leds))].Color = render.Gray(intensity)
	case RGBTest:
		var c render.RGB8
		switch step % 3 {
		case 0:
			c.R = 255
		case 1:
			c.G = 255
		case 2:
			c.B = 255
		}
		c = render.Scale(c, intensity)
		for i := range leds {
			leds[i].Color = c
		}
	}
}
