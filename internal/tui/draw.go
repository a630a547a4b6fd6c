package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/coreman2200/flamesim/internal/render"
	"github.com/coreman2200/flamesim/internal/sequence"
)

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
	styleHeader = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	styleCursor = tcell.StyleDefault.Reverse(true)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Draw renders the current page and shows it.
func (a *App) Draw() {
	a.screen.Clear()
	w, h := a.screen.Size()
	switch a.page {
	case pageIntro:
		a.drawIntro(w, h)
	case pageMenu:
		a.drawMenu(w, h)
	case pageSim:
		a.drawSim(w, h)
	}
	a.screen.Show()
}

func (a *App) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, st)
		x += max(runewidth.RuneWidth(r), 1)
	}
}

func (a *App) centered(w, y int, s string, st tcell.Style) {
	a.text(max((w-runewidth.StringWidth(s))/2, 0), y, s, st)
}

func (a *App) statusBar(w, h int, s string) {
	if a.status != "" {
		a.text(0, h-2, a.status, styleError)
	}
	a.text(0, h-1, s+strings.Repeat(" ", max(w-runewidth.StringWidth(s), 0)), styleStatus)
}

func (a *App) drawIntro(w, h int) {
	a.centered(w, 0, title, styleTitle)
	for i, line := range strings.Split(Welcome, "\n") {
		a.text(2, 2+i, line, tcell.StyleDefault)
	}
	a.statusBar(w, h, helpIntro)
}

func (a *App) drawMenu(w, h int) {
	a.centered(w, 0, title, styleTitle)
	a.text(2, 2, "Choose a simulation:", styleHeader)
	names := a.core.Reg.Names()
	for i, n := range names {
		st := tcell.StyleDefault
		prefix := "  "
		if i == a.cursor {
			st = styleCursor
			prefix = "> "
		}
		a.text(4, 4+i, prefix+n, st)
	}
	help := helpMenu
	if a.opts.Program != nil {
		a.text(4, 5+len(names), "p: play program "+a.opts.Program.Name, tcell.StyleDefault)
		help = strings.Replace(help, "Quit", "Program: p, Quit", 1)
	}
	a.statusBar(w, h, help)
}

func (a *App) drawSim(w, h int) {
	eng := a.core.Eng
	name := "(none)"
	if s, _ := eng.Active(); s != nil {
		name = s.Name()
	}
	a.text(0, 0, "Simulation: "+name, styleHeader)

	// rows 1..h-3 are canvas; h-2 is for errors and h-1 the status bar
	rows := max(h-3, 0)
	r := Rasterize(eng.LEDs, w, rows)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < w; cx++ {
			top, tok := r.At(cx, cy*2)
			bot, bok := r.At(cx, cy*2+1)
			switch {
			case tok && bok:
				a.screen.SetContent(cx, cy+1, '▀', nil, tcell.StyleDefault.Foreground(color(top)).Background(color(bot)))
			case tok:
				a.screen.SetContent(cx, cy+1, '▀', nil, tcell.StyleDefault.Foreground(color(top)))
			case bok:
				a.screen.SetContent(cx, cy+1, '▄', nil, tcell.StyleDefault.Foreground(color(bot)))
			}
		}
	}

	help := fmt.Sprintf("%s  |  %3.0f%%  ~%.2f A", helpSim, eng.Intensity()*100, eng.Last.CurrentA)
	if a.core.Seq.State != sequence.Idle {
		clip, local := a.core.Seq.Current()
		help += fmt.Sprintf("  |  %s: %s %.0f/%.0fs [space: %s]",
			a.core.Seq.Program().Name, clip.Name, local, clip.DurationS, pauseLabel(a.core.Seq.State))
	}
	a.statusBar(w, h, help)
}

func color(c render.RGB8) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func pauseLabel(s sequence.PlayerState) string {
	if s == sequence.Paused {
		return "resume"
	}
	return "pause"
}
