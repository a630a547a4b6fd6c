package fake

import (
	"github.com/rs/zerolog"

	"github.com/coreman2200/flamesim/internal/render"
)

// Driver logs a compact summary of each frame (average and first LED),
// useful for headless runs and tests.
type Driver struct {
	Count int
	Last  []render.RGB8
	// Every logs one frame in this many; 0 or 1 logs them all.
	Every int
	Log   zerolog.Logger
}

func New(log zerolog.Logger, every int) *Driver {
	return &Driver{Log: log, Every: every}
}

func (d *Driver) Write(buf []render.RGB8) error {
	d.Count++
	d.Last = append(d.Last[:0], buf...)
	if d.Every > 1 && d.Count%d.Every != 0 {
		return nil
	}
	avg := Average(buf)
	ev := d.Log.Info().Int("frame", d.Count).
		Floats64("avg", []float64{avg.R, avg.G, avg.B})
	if len(buf) > 0 {
		ev = ev.Ints("first", []int{int(buf[0].R), int(buf[0].G), int(buf[0].B)})
	}
	ev.Msg("frame")
	return nil
}

// Average is the per-channel mean of buf.
func Average(buf []render.RGB8) render.RGB[float64] {
	var out render.RGB[float64]
	if len(buf) == 0 {
		return out
	}
	for _, c := range buf {
		out.R += float64(c.R)
		out.G += float64(c.G)
		out.B += float64(c.B)
	}
	n := float64(len(buf))
	out.R /= n
	out.G /= n
	out.B /= n
	return out
}
