package calib

import (
	"testing"

	"github.com/coreman2200/flamesim/internal/render"
)

func TestIndexSweepWalksWiringOrder(t *testing.T) {
	leds := make([]render.LED, 4)
	s := NewIndexSweep(leds)
	if s.Name() != string(IndexSweep) {
		t.Fatalf("unexpected name %q", s.Name())
	}
	for step := 0; step < 9; step++ {
		s.Tick(leds, uint64(step)*250_000+10, 1)
		lit := -1
		for i, l := range leds {
			if l.Color != render.Black {
				if lit != -1 {
					t.Fatalf("step %d: more than one LED lit", step)
				}
				lit = i
			}
		}
		if lit != step%4 {
			t.Fatalf("step %d: expected LED %d lit, got %d", step, step%4, lit)
		}
	}
}

func TestRGBChannelsCycle(t *testing.T) {
	leds := make([]render.LED, 3)
	s := NewRGBTest(leds)
	want := []render.RGB8{{R: 255}, {G: 255}, {B: 255}, {R: 255}}
	for sec, w := range want {
		s.Tick(leds, uint64(sec)*1_000_000, 1)
		for i, l := range leds {
			if l.Color != w {
				t.Fatalf("second %d LED %d: got %+v want %+v", sec, i, l.Color, w)
			}
		}
	}
	s.Tick(leds, 0, 0)
	if leds[0].Color != render.Black {
		t.Fatalf("expected dark at zero intensity, got %+v", leds[0].Color)
	}
}
