package window

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"weird3d/internal/rawdraw"
)

// target receives the shapes a Canvas produces.
type target interface {
	fillRect(x, y, w, h float32, clr color.RGBA)
	strokeLine(x0, y0, x1, y1, width float32, clr color.RGBA)
	fillTriangles(vs []ebiten.Vertex, is []uint16)
}

// imageTarget draws onto an ebiten image.
type imageTarget struct{ img *ebiten.Image }

var whiteSubImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

func (t imageTarget) fillRect(x, y, w, h float32, clr color.RGBA) {
	vector.DrawFilledRect(t.img, x, y, w, h, clr, false)
}

func (t imageTarget) strokeLine(x0, y0, x1, y1, width float32, clr color.RGBA) {
	vector.StrokeLine(t.img, x0, y0, x1, y1, width, clr, true)
}

func (t imageTarget) fillTriangles(vs []ebiten.Vertex, is []uint16) {
	t.img.DrawTriangles(vs, is, whiteSubImage(), &ebiten.DrawTrianglesOptions{FillRule: ebiten.EvenOdd, AntiAlias: true})
}

// Canvas is a rawdraw.Drawer over an ebiten image. Coordinates are image
// pixels; ebiten clips to the image bounds.
type Canvas struct {
	dst   target
	clr   color.RGBA
	width float32 // stroke width

	vs []ebiten.Vertex
	is []uint16
}

// NewCanvas returns a canvas drawing onto dst in white.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return newCanvas(imageTarget{dst})
}

func newCanvas(dst target) *Canvas {
	return &Canvas{dst: dst, clr: color.RGBA{0xff, 0xff, 0xff, 0xff}, width: 1}
}

// SetColor sets the color of subsequent primitives.
func (c *Canvas) SetColor(clr color.Color) {
	c.clr = color.RGBAModel.Convert(clr).(color.RGBA)
}

func (c *Canvas) Pixel(x, y int) {
	c.dst.fillRect(float32(x), float32(y), 1, 1, c.clr)
}

// Segment strokes through pixel centers.
func (c *Canvas) Segment(x1, y1, x2, y2 int) {
	c.dst.strokeLine(float32(x1)+0.5, float32(y1)+0.5, float32(x2)+0.5, float32(y2)+0.5, c.width, c.clr)
}

func (c *Canvas) Rectangle(x1, y1, x2, y2 int) {
	x, w := span(x1, x2)
	y, h := span(y1, y2)
	c.dst.fillRect(x, y, w, h, c.clr)
}

// Poly fills pts with the even-odd rule. Fewer than three points are stroked
// instead.
func (c *Canvas) Poly(pts []rawdraw.Point) {
	if len(pts) < 3 {
		for i := 0; i+1 < len(pts); i++ {
			c.Segment(pts[i].X, pts[i].Y, pts[i+1].X, pts[i+1].Y)
		}
		return
	}
	var p vector.Path
	p.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, q := range pts[1:] {
		p.LineTo(float32(q.X), float32(q.Y))
	}
	p.Close()

	c.vs, c.is = p.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	r, g, b, a := c.clr.RGBA()
	for i := range c.vs {
		c.vs[i].SrcX, c.vs[i].SrcY = 1, 1
		c.vs[i].ColorR = float32(r) / 0xffff
		c.vs[i].ColorG = float32(g) / 0xffff
		c.vs[i].ColorB = float32(b) / 0xffff
		c.vs[i].ColorA = float32(a) / 0xffff
	}
	c.dst.fillTriangles(c.vs, c.is)
}

// span returns the origin and extent of the inclusive pixel range a..b.
func span(a, b int) (float32, float32) {
	if a > b {
		a, b = b, a
	}
	return float32(a), float32(b - a + 1)
}
