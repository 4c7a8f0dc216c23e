package rawdraw

import (
	"math"
	"sort"
	"strings"
)

// Braille is a Drawer backed by unicode braille cells. Each terminal cell
// holds a 2×4 grid of dots, so a w×h cell canvas is 2w×4h pixels.
type Braille struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

// NewBraille returns an empty canvas of w×h terminal cells.
func NewBraille(w, h int) *Braille {
	w, h = max(w, 0), max(h, 0)
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &Braille{w: w, h: h, m: m}
}

// Cells returns the canvas size in terminal cells.
func (b *Braille) Cells() (w, h int) { return b.w, b.h }

// Size returns the canvas size in pixels.
func (b *Braille) Size() (w, h int) { return b.w * 2, b.h * 4 }

// Clear removes every dot.
func (b *Braille) Clear() {
	for _, row := range b.m {
		clear(row)
	}
}

// dot bit for column rx (0-1) and row ry (0-3) inside a cell, following the
// unicode braille numbering 1-2-3-7 / 4-5-6-8.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func (b *Braille) Pixel(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	cx, cy := x/2, y/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[x%2][y%4]
}

// Set reports whether the dot at pixel (x, y) is on.
func (b *Braille) Set(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= b.w || y/4 >= b.h {
		return false
	}
	return b.m[y/4][x/2]&dotBits[x%2][y%4] != 0
}

// Segment draws a line using Bresenham. Endpoints off the canvas are first
// clipped to it, so the walk is bounded by the canvas size.
func (b *Braille) Segment(x0, y0, x1, y1 int) {
	pw, ph := b.Size()
	if !b.inside(x0, y0) || !b.inside(x1, y1) {
		var ok bool
		if x0, y0, x1, y1, ok = clipSegment(x0, y0, x1, y1, pw, ph); !ok {
			return
		}
	}
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.Pixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (b *Braille) inside(x, y int) bool {
	pw, ph := b.Size()
	return x >= 0 && y >= 0 && x < pw && y < ph
}

// clipSegment trims the segment to the pixel box [0, pw)×[0, ph) using
// Liang-Barsky. ok is false when no part of it is inside.
func clipSegment(x0, y0, x1, y1, pw, ph int) (cx0, cy0, cx1, cy1 int, ok bool) {
	fx, fy := float64(x0), float64(y0)
	dx, dy := float64(x1)-fx, float64(y1)-fy
	t0, t1 := 0.0, 1.0
	for _, e := range [4][2]float64{
		{-dx, fx},
		{dx, float64(pw-1) - fx},
		{-dy, fy},
		{dy, float64(ph-1) - fy},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			t0 = max(t0, r)
		} else {
			t1 = min(t1, r)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	round := func(v float64) int { return int(math.Round(v)) }
	return round(fx + t0*dx), round(fy + t0*dy), round(fx + t1*dx), round(fy + t1*dy), true
}

// Rectangle fills the rectangle with corners (x1, y1) and (x2, y2), inclusive.
func (b *Braille) Rectangle(x1, y1, x2, y2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	pw, ph := b.Size()
	for y := max(y1, 0); y <= min(y2, ph-1); y++ {
		for x := max(x1, 0); x <= min(x2, pw-1); x++ {
			b.Pixel(x, y)
		}
	}
}

// Poly fills pts with the even-odd rule and then strokes its outline. Edges
// off the canvas still count towards the fill parity; only the visible spans
// are walked.
func (b *Braille) Poly(pts []Point) {
	switch len(pts) {
	case 0:
		return
	case 1:
		b.Pixel(pts[0].X, pts[0].Y)
		return
	case 2:
		b.Segment(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
		return
	}
	pw, ph := b.Size()
	lo, hi := ph, -1
	for _, p := range pts {
		lo, hi = min(lo, p.Y), max(hi, p.Y)
	}
	var xs []int
	for y := max(lo, 0); y <= min(hi, ph-1); y++ {
		xs = xs[:0]
		for i := range pts {
			a, c := pts[i], pts[(i+1)%len(pts)]
			if a.Y == c.Y {
				continue
			}
			if (y >= a.Y && y < c.Y) || (y >= c.Y && y < a.Y) {
				t := float64(y-a.Y) / float64(c.Y-a.Y)
				xs = append(xs, a.X+int(t*float64(c.X-a.X)))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= min(xs[i+1], pw-1); x++ {
				b.Pixel(x, y)
			}
		}
	}
	b.Outline(pts)
}

// Outline strokes the closed polygon pts without filling it.
func (b *Braille) Outline(pts []Point) {
	for i := range pts {
		a, c := pts[i], pts[(i+1)%len(pts)]
		b.Segment(a.X, a.Y, c.X, c.Y)
	}
}

// Lines renders the canvas, one string per cell row. Empty cells are spaces.
func (b *Braille) Lines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			mask := b.m[y][x]
			if mask == 0 {
				row[x] = ' '
			} else {
				row[x] = rune(0x2800 + int(mask))
			}
		}
		out[y] = string(row)
	}
	return out
}

func (b *Braille) String() string { return strings.Join(b.Lines(), "\n") }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
