package flicker

import (
	"math"
	"math/rand/v2"

	"github.com/coreman2200/flamesim/internal/layout"
	"github.com/coreman2200/flamesim/internal/render"
)

const (
	Name = "Height flicker"

	// CenterBias pulls the burn line back toward mid-height, per second.
	CenterBias = 0.2
	// Band is how many coordinate units the edge fades over.
	Band = 2.0
)

// Color is the hue of the lit region.
var Color = render.RGB8{R: 255, G: 30, B: 0}

// Scene random-walks a horizontal burn line up and down the board. LEDs
// below the line are lit, LEDs above are dark, with a linear edge.
type Scene struct {
	lastTick uint64
	height   float64
	minY     int
	span     float64
	rnd      func() float64
}

// New seeds from the runtime's random source.
func New(leds []render.LED) *Scene {
	return NewWithRand(leds, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand uses r for the walk, for reproducible runs.
func NewWithRand(leds []render.LED, r *rand.Rand) *Scene {
	lo, hi := layout.YRange(leds)
	return &Scene{height: 0.5, minY: lo, span: float64(hi - lo), rnd: r.Float64}
}

func (s *Scene) Name() string { return Name }

// Height is the burn line as a fraction of the board height, in [0,1].
func (s *Scene) Height() float64 { return s.height }

func (s *Scene) Tick(leds []render.LED, elapsed uint64, intensity float64) {
	dt := render.DeltaSeconds(s.lastTick, elapsed)
	s.lastTick = elapsed

	variance := 6*render.Clamp01(intensity) + 0.5
	s.height += (s.rnd() - 0.5) * variance * dt
	s.height += (0.5 - s.height) * CenterBias * dt
	s.height = render.Clamp01(s.height)

	line := s.height * s.span
	for i := range leds {
		d := float64(leds[i].Coords.Y-s.minY) - line
		leds[i].Color = render.Scale(Color, brightness(d))
	}
}

func brightness(d float64) float64 {
	switch {
	case d > Band:
		return 0
	case d < -Band:
		return 1
	default:
		return 1 - math.Abs(d)/Band
	}
}
