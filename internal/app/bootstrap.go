package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/flamesim/internal/layout"
	"github.com/coreman2200/flamesim/internal/render"
	"github.com/coreman2200/flamesim/internal/render/scenes/calib"
	"github.com/coreman2200/flamesim/internal/render/scenes/candle"
	"github.com/coreman2200/flamesim/internal/render/scenes/flash"
	"github.com/coreman2200/flamesim/internal/render/scenes/flicker"
	"github.com/coreman2200/flamesim/internal/render/scenes/rainbow"
	"github.com/coreman2200/flamesim/internal/render/scenes/steady"
	"github.com/coreman2200/flamesim/internal/sequence"
)

// Core is the simulator without a front-end: layout, scenes, engine and
// program player wired together.
type Core struct {
	Rev layout.Revision
	Reg *render.Registry
	Eng *render.Engine
	Seq *sequence.Player

	log zerolog.Logger
}

type Options struct {
	Revision  layout.Revision
	Driver    render.Driver
	Intensity float64
	WhiteCap  float64
	Clock     func() time.Time
	Log       *zerolog.Logger
}

func orNop(l *zerolog.Logger) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	return *l
}

// RegisterScenes adds every scene in menu order.
func RegisterScenes(reg *render.Registry, g layout.CandleGroups) {
	reg.Register(func(l []render.LED) render.Simulation { return steady.New(l) })
	reg.Register(func(l []render.LED) render.Simulation { return flash.New(l) })
	reg.Register(func(l []render.LED) render.Simulation { return rainbow.New(l) })
	reg.Register(func(l []render.LED) render.Simulation { return flicker.New(l) })
	reg.Register(func(l []render.LED) render.Simulation { return candle.NewWithGroups(l, g) })
	reg.Register(func(l []render.LED) render.Simulation { return calib.NewIndexSweep(l) })
	reg.Register(func(l []render.LED) render.Simulation { return calib.NewRGBTest(l) })
}

func InitCore(opts Options) (*Core, error) {
	leds := opts.Revision.LEDs()
	if len(leds) == 0 {
		return nil, render.ErrEmptyLayout
	}
	if err := opts.Revision.Candle.Validate(len(leds)); err != nil {
		return nil, fmt.Errorf("layout %s: %w", opts.Revision.Name, err)
	}

	reg := render.NewRegistry(leds)
	RegisterScenes(reg, opts.Revision.Candle)

	base := orNop(opts.Log)
	log := base.With().Str("component", "core").Logger()
	engLog := base.With().Str("component", "engine").Logger()
	eng, err := render.NewEngine(leds, reg, render.EngineOpts{
		Driver:    opts.Driver,
		Intensity: opts.Intensity,
		Post:      render.PostPipeline{WhiteCap: opts.WhiteCap, ChanmA: render.DefaultChanmA},
		Clock:     opts.Clock,
		Log:       &engLog,
	})
	if err != nil {
		return nil, err
	}

	c := &Core{Rev: opts.Revision, Reg: reg, Eng: eng, log: log}
	c.Seq = sequence.NewPlayer(sequence.Hooks{
		Select: func(name string) error {
			if err := eng.SelectByName(name); err != nil {
				return err
			}
			log.Info().Str("scene", name).Msg("program switched scene")
			return nil
		},
		SetIntensity: func(v float64) { _ = eng.SetIntensity(v) },
	})
	log.Debug().Str("layout", opts.Revision.Name).Int("leds", len(leds)).
		Strs("scenes", reg.Names()).Msg("core ready")
	return c, nil
}

// Play validates prog against the registered scenes and starts it.
func (c *Core) Play(prog sequence.Program) error {
	if err := prog.Validate(c.Reg.Names()); err != nil {
		return fmt.Errorf("program %s: %w", prog.Name, err)
	}
	if err := c.Seq.Load(prog); err != nil {
		return err
	}
	c.Seq.Start()
	if err := c.Seq.Err(); err != nil {
		return err
	}
	c.log.Info().Str("program", prog.Name).Int("clips", len(prog.Clips)).Msg("program started")
	return nil
}

// Step advances the program by dt seconds and renders one frame at now.
func (c *Core) Step(now time.Time, dt float64) error {
	c.Seq.Tick(dt)
	return c.Eng.RenderOnce(now)
}
