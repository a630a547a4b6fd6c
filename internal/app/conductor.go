package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/flamesim/internal/sequence"
)

// Conductor drives a Core on a fixed frame clock without a UI.
type Conductor struct {
	Core *Core
	FPS  int
	// Frames stops the run after this many frames; 0 runs until ctx ends
	// or a non-looping program finishes.
	Frames int
	Log    *zerolog.Logger
}

func (c *Conductor) Run(ctx context.Context) error {
	fps := c.FPS
	if fps <= 0 {
		fps = 30
	}
	dt := time.Second / time.Duration(fps)
	tick := time.NewTicker(dt)
	defer tick.Stop()

	log := orNop(c.Log)
	playing := c.Core.Seq.State != sequence.Idle
	for n := 0; c.Frames <= 0 || n < c.Frames; n++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			if err := c.Core.Step(time.Time{}, dt.Seconds()); err != nil {
				return err
			}
		}
		if playing && c.Core.Seq.State == sequence.Idle {
			log.Info().Int("frames", n+1).Msg("program finished")
			return nil
		}
	}
	return nil
}
