// Package layout holds the physical LED coordinate tables for each board
// revision and the LED groupings the candle scene needs.
package layout

import (
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/coreman2200/flamesim/internal/render"
)

// Default is the revision used when nothing else is configured.
const Default = "pcb-v2"

// ErrUnknownRevision is returned by Lookup for names not in the table.
var ErrUnknownRevision = errors.New("unknown layout revision")

// CandleGroups assigns LED indices to the parts of a candle flame.
type CandleGroups struct {
	Base         []int       `yaml:"base"`
	Wick         []int       `yaml:"wick"`
	Flame        []int       `yaml:"flame"`
	CandleBase   image.Point `yaml:"-"`
	FlameOriginY float64     `yaml:"flame_origin_y"`
}

// Validate checks every index fits a layout of n LEDs and appears at most once.
func (g CandleGroups) Validate(n int) error {
	seen := map[int]string{}
	for name, idx := range map[string][]int{"base": g.Base, "wick": g.Wick, "flame": g.Flame} {
		for _, i := range idx {
			if i < 0 || i >= n {
				return fmt.Errorf("candle %s index %d out of range [0,%d)", name, i, n)
			}
			if prev, ok := seen[i]; ok {
				return fmt.Errorf("candle index %d in both %s and %s", i, prev, name)
			}
			seen[i] = name
		}
	}
	return nil
}

// Revision is one physical board: LED positions in wiring order.
type Revision struct {
	Name   string
	Points []image.Point
	Candle CandleGroups
}

// LEDs builds a fresh, all-black LED slice at the revision's positions.
func (r Revision) LEDs() []render.LED {
	out := make([]render.LED, len(r.Points))
	for i, p := range r.Points {
		out[i] = render.LED{Coords: p}
	}
	return out
}

// pcbV1 is the board as drawn in the PCB editor; y grows toward the flame base.
var pcbV1 = []image.Point{
	{103, 96}, {104, 89}, {105, 83}, {106, 76}, {110, 70}, {115, 76},
	{118, 83}, {119, 90}, {120, 97}, {112, 97}, {111, 89}, {111, 82},
}

// CanonicalCandle is the group mapping for the 12-LED flame board.
func CanonicalCandle() CandleGroups {
	return CandleGroups{
		Base:         []int{0, 8},
		Wick:         []int{9},
		Flame:        []int{1, 2, 3, 4, 5, 6, 7, 10, 11},
		CandleBase:   image.Pt(107, 3),
		FlameOriginY: 14,
	}
}

var revisions = map[string]Revision{
	"pcb-v1": {Name: "pcb-v1", Points: pcbV1, Candle: CanonicalCandle()},
	"pcb-v2": {Name: "pcb-v2", Points: flipY(pcbV1, 100), Candle: CanonicalCandle()},
}

// flipY measures y upward from the board edge at top.
func flipY(pts []image.Point, top int) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = image.Pt(p.X, top-p.Y)
	}
	return out
}

// Lookup returns a copy of the named revision.
func Lookup(name string) (Revision, error) {
	r, ok := revisions[name]
	if !ok {
		return Revision{}, fmt.Errorf("%q: %w", name, ErrUnknownRevision)
	}
	r.Points = append([]image.Point(nil), r.Points...)
	return r, nil
}

// Names lists the built-in revisions, sorted.
func Names() []string {
	out := make([]string, 0, len(revisions))
	for k := range revisions {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// FromPoints builds a custom revision, e.g. from a config file.
// Candle groups default to the canonical mapping when they fit.
func FromPoints(name string, pts []image.Point) (Revision, error) {
	if len(pts) == 0 {
		return Revision{}, render.ErrEmptyLayout
	}
	r := Revision{Name: name, Points: append([]image.Point(nil), pts...), Candle: CanonicalCandle()}
	if r.Candle.Validate(len(pts)) != nil {
		r.Candle = CandleGroups{CandleBase: r.Candle.CandleBase, FlameOriginY: r.Candle.FlameOriginY}
	}
	return r, nil
}

// Bounds is the bounding box of leds grown by pad on every side.
// Max is inclusive of the outermost LED plus padding.
func Bounds(leds []render.LED, pad int) image.Rectangle {
	if len(leds) == 0 {
		return image.Rectangle{}
	}
	b := image.Rectangle{Min: leds[0].Coords, Max: leds[0].Coords}
	for _, l := range leds[1:] {
		b.Min.X = min(b.Min.X, l.Coords.X)
		b.Min.Y = min(b.Min.Y, l.Coords.Y)
		b.Max.X = max(b.Max.X, l.Coords.X)
		b.Max.Y = max(b.Max.Y, l.Coords.Y)
	}
	return image.Rect(b.Min.X-pad, b.Min.Y-pad, b.Max.X+pad, b.Max.Y+pad)
}

// YRange returns min and max y over leds; both 0 when empty.
func YRange(leds []render.LED) (lo, hi int) {
	if len(leds) == 0 {
		return 0, 0
	}
	lo, hi = leds[0].Coords.Y, leds[0].Coords.Y
	for _, l := range leds[1:] {
		lo = min(lo, l.Coords.Y)
		hi = max(hi, l.Coords.Y)
	}
	return lo, hi
}
