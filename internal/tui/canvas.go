package tui

import (
	"image"
	"math"

	"github.com/coreman2200/flamesim/internal/layout"
	"github.com/coreman2200/flamesim/internal/render"
)

const (
	// Padding is the margin around the LEDs' bounding box, in board units.
	Padding = 3
	// DotRadius is the drawn LED radius, in board units.
	DotRadius = 2.0
)

type pixel struct {
	c   render.RGB8
	set bool
}

// Raster is a pixel grid two pixels tall per terminal cell, so each cell
// shows a top and bottom pixel with a half-block glyph.
type Raster struct {
	W, H int
	pix  []pixel
	proj projection
}

// projection maps board coordinates (y up) to raster pixels (y down),
// uniformly scaled and centered.
type projection struct {
	minX, maxY float64
	scale      float64
	offX, offY float64
}

func fit(b image.Rectangle, w, h int) projection {
	bw := float64(max(b.Dx(), 1))
	bh := float64(max(b.Dy(), 1))
	scale := math.Min(float64(w)/bw, float64(h)/bh)
	return projection{
		minX:  float64(b.Min.X),
		maxY:  float64(b.Max.Y),
		scale: scale,
		offX:  (float64(w) - bw*scale) / 2,
		offY:  (float64(h) - bh*scale) / 2,
	}
}

func (p projection) point(pt image.Point) (x, y float64) {
	return p.offX + (float64(pt.X)-p.minX)*p.scale, p.offY + (p.maxY-float64(pt.Y))*p.scale
}

// Rasterize draws every LED as a filled disc into a cols x rows cell area.
func Rasterize(leds []render.LED, cols, rows int) *Raster {
	r := &Raster{W: max(cols, 0), H: max(rows, 0) * 2}
	r.pix = make([]pixel, r.W*r.H)
	if len(leds) == 0 || r.W == 0 || r.H == 0 {
		return r
	}
	r.proj = fit(layout.Bounds(leds, Padding), r.W, r.H)
	for _, l := range leds {
		cx, cy := r.proj.point(l.Coords)
		r.disc(cx, cy, DotRadius*r.proj.scale, l.Color)
	}
	return r
}

// Center returns the pixel holding the center of a board coordinate.
func (r *Raster) Center(pt image.Point) (x, y int) {
	fx, fy := r.proj.point(pt)
	return min(int(fx), r.W-1), min(int(fy), r.H-1)
}

// At returns the pixel color and whether any LED covers it.
func (r *Raster) At(x, y int) (render.RGB8, bool) {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return render.Black, false
	}
	p := r.pix[y*r.W+x]
	return p.c, p.set
}

func (r *Raster) set(x, y int, c render.RGB8) {
	if x < 0 || y < 0 || x >= r.W || y >= r.H {
		return
	}
	r.pix[y*r.W+x] = pixel{c: c, set: true}
}

func (r *Raster) disc(cx, cy, rad float64, c render.RGB8) {
	x0, x1 := int(math.Floor(cx-rad)), int(math.Ceil(cx+rad))
	y0, y1 := int(math.Floor(cy-rad)), int(math.Ceil(cy+rad))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= rad*rad {
				r.set(x, y, c)
			}
		}
	}
	// tiny terminals still get one pixel per LED
	r.set(min(int(cx), r.W-1), min(int(cy), r.H-1), c)
}
