// Package tui is the terminal front-end: an intro page, a scene menu and
// a live view that draws each LED as a colored dot at its board position.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/coreman2200/flamesim/internal/app"
	"github.com/coreman2200/flamesim/internal/sequence"
)

type page int

const (
	pageIntro page = iota
	pageMenu
	pageSim
)

type Options struct {
	FPS           int
	IntensityStep float64
	// Program, when set, is offered from the menu with 'p'.
	Program *sequence.Program
	// SkipIntro opens straight on the menu.
	SkipIntro bool
	Log       *zerolog.Logger
}

// App owns the screen and the core. All ticking and drawing happens on
// the Run goroutine.
type App struct {
	screen tcell.Screen
	core   *app.Core
	opts   Options
	log    zerolog.Logger

	page      page
	cursor    int
	status    string
	lastFrame time.Time
}

// New wraps an initialized screen.
func New(screen tcell.Screen, core *app.Core, opts Options) *App {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.IntensityStep <= 0 {
		opts.IntensityStep = 0.05
	}
	lg := zerolog.Nop()
	if opts.Log != nil {
		lg = opts.Log.With().Str("component", "tui").Logger()
	}
	a := &App{screen: screen, core: core, opts: opts, log: lg}
	if opts.SkipIntro {
		a.page = pageMenu
	}
	return a
}

// Run pumps events and frames until the user quits or ctx ends.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go a.screen.ChannelEvents(events, quit)

	tick := time.NewTicker(time.Second / time.Duration(a.opts.FPS))
	defer tick.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if a.HandleEvent(ev) {
				return nil
			}
			a.Draw()
		case now := <-tick.C:
			if a.page != pageSim {
				continue
			}
			if err := a.Frame(now); err != nil {
				return err
			}
		}
	}
}

// Frame advances the running scene to now and redraws.
func (a *App) Frame(now time.Time) error {
	dt := 0.0
	if !a.lastFrame.IsZero() {
		dt = now.Sub(a.lastFrame).Seconds()
	}
	a.lastFrame = now
	if err := a.core.Step(now, dt); err != nil {
		return fmt.Errorf("frame: %w", err)
	}
	if err := a.core.Seq.Err(); err != nil {
		a.status = err.Error()
	}
	a.Draw()
	return nil
}

// HandleEvent applies one input event and reports whether to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		return false
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			a.log.Info().Msg("quit requested")
			return true
		}
		switch a.page {
		case pageIntro:
			a.page = pageMenu
		case pageMenu:
			return a.menuKey(ev)
		case pageSim:
			a.simKey(ev)
		}
	}
	return false
}

func isBack(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}

func (a *App) menuKey(ev *tcell.EventKey) bool {
	n := a.core.Reg.Len()
	switch {
	case isBack(ev):
		return true
	case ev.Key() == tcell.KeyUp:
		a.cursor = (a.cursor - 1 + n) % n
	case ev.Key() == tcell.KeyDown:
		a.cursor = (a.cursor + 1) % n
	case ev.Key() == tcell.KeyEnter:
		a.enterScene(a.cursor)
	case ev.Key() == tcell.KeyRune && ev.Rune() == 'p':
		a.playProgram()
	}
	return false
}

func (a *App) enterScene(i int) {
	if err := a.core.Eng.Select(i); err != nil {
		a.status = err.Error()
		a.log.Error().Err(err).Int("index", i).Msg("select failed")
		return
	}
	s, _ := a.core.Eng.Active()
	a.log.Info().Str("scene", s.Name()).Msg("scene selected")
	a.page = pageSim
	a.status = ""
	a.lastFrame = time.Time{}
}

func (a *App) playProgram() {
	if a.opts.Program == nil {
		a.status = "no program configured"
		return
	}
	if err := a.core.Play(*a.opts.Program); err != nil {
		a.status = err.Error()
		a.log.Error().Err(err).Msg("program failed to start")
		return
	}
	a.page = pageSim
	a.status = ""
	a.lastFrame = time.Time{}
}

func (a *App) simKey(ev *tcell.EventKey) {
	step := a.opts.IntensityStep
	switch {
	case isBack(ev):
		a.core.Seq.Stop()
		a.core.Eng.Deselect()
		a.page = pageMenu
		a.status = ""
	case ev.Key() == tcell.KeyLeft, ev.Key() == tcell.KeyRune && ev.Rune() == '-':
		v := a.core.Eng.AdjustIntensity(-step)
		a.log.Debug().Float64("intensity", v).Msg("intensity")
	case ev.Key() == tcell.KeyRight, ev.Key() == tcell.KeyRune && (ev.Rune() == '+' || ev.Rune() == '='):
		v := a.core.Eng.AdjustIntensity(step)
		a.log.Debug().Float64("intensity", v).Msg("intensity")
	case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
		switch a.core.Seq.State {
		case sequence.Running:
			a.core.Seq.Pause()
		case sequence.Paused:
			a.core.Seq.Resume()
		}
	}
}
