package render

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Driver abstracts the LED output (a terminal preview, a headless logger).
type Driver interface {
	Write(frame []RGB8) error
}

// EngineOpts tunes an Engine. Zero values pick the defaults.
type EngineOpts struct {
	Driver    Driver
	Intensity float64
	Post      PostPipeline
	Clock     func() time.Time
	Log       *zerolog.Logger
}

// Engine owns the LED slice and the active scene, ticks it once per frame,
// runs post stages and hands the frame to the driver.
type Engine struct {
	LEDs []LED
	Out  []RGB8
	Drv  Driver

	reg        *Registry
	active     Simulation
	activeIdx  int
	selectedAt time.Time
	intensity  float64
	post       PostPipeline
	clock      func() time.Time
	log        zerolog.Logger

	// metrics from the last RenderOnce
	Last struct {
		TickMS   float64
		PostMS   float64
		CurrentA float64
		Elapsed  uint64
	}
}

// PostPipeline groups frame stages applied after a tick; all are optional.
type PostPipeline struct {
	WhiteCap float64 // per-LED channel sum cap as a fraction of full white; 0 disables
	ChanmA   float64 // mA per channel at full scale, for the current estimate
}

// NewEngine allocates the output frame. Nothing is selected until Select.
func NewEngine(leds []LED, reg *Registry, opts EngineOpts) (*Engine, error) {
	if len(leds) == 0 {
		return nil, ErrEmptyLayout
	}
	if reg == nil || reg.Len() == 0 {
		return nil, errors.New("no scenes registered")
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Post.ChanmA <= 0 {
		opts.Post.ChanmA = DefaultChanmA
	}
	lg := zerolog.Nop()
	if opts.Log != nil {
		lg = *opts.Log
	}
	e := &Engine{
		LEDs:      leds,
		Out:       make([]RGB8, len(leds)),
		Drv:       opts.Driver,
		reg:       reg,
		activeIdx: -1,
		intensity: Clamp01(opts.Intensity),
		post:      opts.Post,
		clock:     opts.Clock,
		log:       lg,
	}
	return e, nil
}

// Now reads the engine clock.
func (e *Engine) Now() time.Time { return e.clock() }

func (e *Engine) Registry() *Registry { return e.reg }

// Select instantiates scene i with fresh state and restarts its clock.
// LEDs are blanked so nothing from the previous scene lingers.
func (e *Engine) Select(i int) error {
	s, err := e.reg.New(i)
	if err != nil {
		return err
	}
	for j := range e.LEDs {
		e.LEDs[j].Color = Black
	}
	e.active = s
	e.activeIdx = i
	e.selectedAt = e.clock()
	e.log.Debug().Str("scene", s.Name()).Msg("scene selected")
	return nil
}

// SelectByName is Select keyed by display name.
func (e *Engine) SelectByName(name string) error {
	i := e.reg.Index(name)
	if i < 0 {
		return fmt.Errorf("scene %q: %w", name, ErrUnknownScene)
	}
	return e.Select(i)
}

// Deselect discards the active scene and its state.
func (e *Engine) Deselect() {
	e.active = nil
	e.activeIdx = -1
}

// Active returns the running scene and its registry index, or (nil, -1).
func (e *Engine) Active() (Simulation, int) { return e.active, e.activeIdx }

func (e *Engine) Intensity() float64 { return e.intensity }

// SetIntensity rejects values outside [0,1].
func (e *Engine) SetIntensity(v float64) error {
	if !(v >= 0 && v <= 1) {
		return fmt.Errorf("intensity %v: %w", v, ErrInvalidParameter)
	}
	e.intensity = v
	return nil
}

// AdjustIntensity nudges intensity by delta, clamping to [0,1].
func (e *Engine) AdjustIntensity(delta float64) float64 {
	e.intensity = Clamp01(e.intensity + delta)
	return e.intensity
}

func (e *Engine) SetPost(p PostPipeline) {
	if p.ChanmA <= 0 {
		p.ChanmA = DefaultChanmA
	}
	e.post = p
}

// Elapsed returns microseconds since selection at now, never negative.
func (e *Engine) Elapsed(now time.Time) uint64 {
	d := now.Sub(e.selectedAt)
	if d < 0 {
		return 0
	}
	return uint64(d.Microseconds())
}

// RenderOnce ticks the active scene at now (zero now uses the engine clock)
// and pushes the post-processed frame to the driver.
func (e *Engine) RenderOnce(now time.Time) error {
	if now.IsZero() {
		now = e.clock()
	}
	start := time.Now()
	if e.active != nil {
		el := e.Elapsed(now)
		e.active.Tick(e.LEDs, el, e.intensity)
		e.Last.Elapsed = el
		e.log.Trace().Uint64("elapsed_us", el).Float64("intensity", e.intensity).Msg("tick")
	}
	for i := range e.LEDs {
		e.Out[i] = e.LEDs[i].Color
	}
	e.Last.TickMS = float64(time.Since(start).Microseconds()) / 1000.0

	postStart := time.Now()
	ApplyWhiteCap(e.Out, e.post.WhiteCap)
	e.Last.CurrentA = EstimateCurrent(e.Out, e.post.ChanmA)
	e.Last.PostMS = float64(time.Since(postStart).Microseconds()) / 1000.0

	if e.Drv != nil {
		if err := e.Drv.Write(e.Out); err != nil {
			return fmt.Errorf("driver write: %w", err)
		}
	}
	return nil
}
