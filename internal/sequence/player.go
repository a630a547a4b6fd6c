package sequence

import (
	"fmt"
	"math"
	"slices"
)

func NewPlayer(h Hooks) *Player {
	return &Player{State: Idle, hooks: h}
}

// Validate checks clips have positive durations, sane envelopes and, when
// scenes is non-nil, name a known scene.
func (prog Program) Validate(scenes []string) error {
	if len(prog.Clips) == 0 {
		return ErrEmptyProgram
	}
	for i, c := range prog.Clips {
		if c.DurationS <= 0 {
			return fmt.Errorf("clip %d (%s): duration must be positive", i, c.Name)
		}
		if err := c.Intensity.Validate(); err != nil {
			return fmt.Errorf("clip %d (%s): intensity: %w", i, c.Name, err)
		}
		if scenes != nil && !slices.Contains(scenes, c.Scene) {
			return fmt.Errorf("clip %d (%s): unknown scene %q", i, c.Name, c.Scene)
		}
	}
	return nil
}

// Load replaces the program and rewinds to Idle.
func (p *Player) Load(prog Program) error {
	if err := prog.Validate(nil); err != nil {
		return err
	}
	p.prog = prog
	p.nowS = 0
	p.idx = 0
	p.err = nil
	p.State = Idle
	return nil
}

func (p *Player) Program() Program { return p.prog }

// Err returns the last error a Select hook reported.
func (p *Player) Err() error { return p.err }

// Start runs from the current position, selecting the clip's scene.
func (p *Player) Start() {
	if p.State == Running || len(p.prog.Clips) == 0 {
		return
	}
	p.State = Running
	p.enter()
}

func (p *Player) Pause() {
	if p.State == Running {
		p.State = Paused
	}
}

func (p *Player) Resume() {
	if p.State == Paused {
		p.State = Running
	}
}

// Stop rewinds to the first clip without touching the engine.
func (p *Player) Stop() {
	p.State = Idle
	p.nowS = 0
	p.idx = 0
}

// Seek jumps to absolute program time t, clamped into the program.
func (p *Player) Seek(t float64) {
	if len(p.prog.Clips) == 0 {
		return
	}
	total := p.Duration()
	t = math.Max(t, 0)
	if t >= total {
		t = math.Nextafter(total, 0)
	}
	acc := 0.0
	for i, c := range p.prog.Clips {
		if t < acc+c.DurationS {
			p.idx = i
			break
		}
		acc += c.DurationS
	}
	p.nowS = t
	if p.State != Idle {
		p.enter()
	}
}

// Tick advances by dt seconds.
func (p *Player) Tick(dt float64) {
	if p.State != Running || dt <= 0 {
		return
	}
	p.nowS += dt
	for {
		clip, local := p.Current()
		if local < clip.DurationS {
			p.applyIntensity(clip, local)
			return
		}
		if !p.advance() {
			return
		}
	}
}

// Current returns the active clip and seconds into it.
func (p *Player) Current() (Clip, float64) {
	acc := 0.0
	for i := 0; i < p.idx; i++ {
		acc += p.prog.Clips[i].DurationS
	}
	return p.prog.Clips[p.idx], p.nowS - acc
}

// Duration is the length of one pass through the program.
func (p *Player) Duration() float64 {
	total := 0.0
	for _, c := range p.prog.Clips {
		total += c.DurationS
	}
	return total
}

func (p *Player) advance() bool {
	next := p.idx + 1
	if next >= len(p.prog.Clips) {
		if !p.prog.Loop {
			p.State = Idle
			p.nowS = p.Duration()
			return false
		}
		// wrap the clock so Current stays relative to the first clip
		p.nowS -= p.Duration()
		next = 0
	}
	p.idx = next
	p.enter()
	return true
}

func (p *Player) enter() {
	clip, local := p.Current()
	if p.hooks.Select != nil {
		if err := p.hooks.Select(clip.Scene); err != nil {
			p.err = fmt.Errorf("clip %s: %w", clip.Name, err)
		}
	}
	p.applyIntensity(clip, local)
}

func (p *Player) applyIntensity(c Clip, local float64) {
	if c.Intensity.Empty() || p.hooks.SetIntensity == nil {
		return
	}
	v := c.Intensity.Eval(local)
	p.hooks.SetIntensity(math.Min(math.Max(v, 0), 1))
}
