// Package window shows a scene in a desktop window through ebiten.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"weird3d/internal/pipeline"
	"weird3d/internal/rawdraw"
	"weird3d/internal/scene"
)

const (
	tps       = 60
	orbitRate = 90.0 // degrees per second while an arrow key is held
	zoomStep  = 1.2
)

var (
	background = color.RGBA{0x0b, 0x0f, 0x14, 0xff}
	wire       = color.RGBA{0x34, 0xd3, 0x99, 0xff}
)

// Input is one frame of user intent.
type Input struct {
	Yaw, Pitch float64 // degrees
	Zoom       float64 // distance factor; 0 or 1 leaves it
	Pause      bool
	Reset      bool
	Fill       bool
	Quit       bool
}

// Game is an ebiten.Game drawing one scene.
type Game struct {
	sc      scene.Scene
	cam     scene.Camera
	fov     float64
	ctx     *pipeline.Context[float64]
	t       float64
	playing bool
	fill    bool
	err     error // from the last render, returned by the next Update

	Stats scene.Stats
}

// New returns a game showing sc with a vertical field of view of fovY degrees.
func New(sc scene.Scene, fovY float64) *Game {
	return &Game{
		sc:      sc,
		cam:     scene.Frame(sc.Bounds(), fovY),
		fov:     fovY,
		ctx:     pipeline.New[float64](),
		playing: true,
	}
}

// Run opens the window and blocks until it closes.
func Run(g *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tps)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

func (g *Game) Update() error {
	return g.step(poll(), 1.0/tps)
}

// step runs one tick. A failed render from the previous frame ends the game
// with its error.
func (g *Game) step(in Input, dt float64) error {
	if g.err != nil {
		return g.err
	}
	g.Apply(in, dt)
	if in.Quit {
		return ebiten.Termination
	}
	return nil
}

// Apply advances the game by dt seconds under input in.
func (g *Game) Apply(in Input, dt float64) {
	if in.Reset {
		g.cam = scene.Frame(g.sc.Bounds(), g.fov)
	}
	if in.Pause {
		g.playing = !g.playing
	}
	if in.Fill {
		g.fill = !g.fill
	}
	g.cam.Orbit(in.Yaw, in.Pitch)
	if in.Zoom != 0 {
		g.cam.Zoom(in.Zoom)
	}
	if g.playing {
		g.t += dt
	}
}

func poll() Input {
	var in Input
	step := orbitRate / tps
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.Yaw -= step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.Yaw += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.Pitch += step
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.Pitch -= step
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		in.Zoom = 1 / zoomStep
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		in.Zoom = zoomStep
	}
	if _, dy := ebiten.Wheel(); dy > 0 {
		in.Zoom = 1 / zoomStep
	} else if dy < 0 {
		in.Zoom = zoomStep
	}
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Reset = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Fill = inpututil.IsKeyJustPressed(ebiten.KeyF)
	in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
	return in
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	b := screen.Bounds()
	if b.Empty() {
		return
	}
	cv := NewCanvas(screen)
	cv.SetColor(wire)
	g.render(cv, b.Dx(), b.Dy())
}

// render draws the scene onto a w×h pixel target. Errors are kept for the
// next Update.
func (g *Game) render(d rawdraw.Drawer, w, h int) {
	if err := g.cam.Apply(g.ctx, float64(w), float64(h)); err != nil {
		g.err = fmt.Errorf("camera: %w", err)
		return
	}
	if mesh, ok := g.sc.(*scene.Mesh); ok {
		mesh.Layers.Fill = g.fill
	}
	st, err := g.sc.Draw(d, g.ctx, g.t)
	g.Stats = st
	if err != nil {
		g.err = fmt.Errorf("draw %s: %w", g.sc.Name(), err)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Camera returns the current camera.
func (g *Game) Camera() scene.Camera { return g.cam }

// Time returns the animation time in seconds.
func (g *Game) Time() float64 { return g.t }
