// =======================
// window/window.go
// =======================

package window

import (
	"io"
	"log"
	"time"

	"wirecube/cube"

	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures the desktop window.
type Options struct {
	Anim   cube.Options
	Title  string
	Width  int
	Height int
	TPS    int
	Logger *log.Logger
}

// Game hosts the animator inside ebiten's loop: Update advances it by one
// tick, Draw renders it.
type Game struct {
	opts    Options
	log     *log.Logger
	step    time.Duration
	surface *Surface
	anim    *cube.Animator

	width, height int
	quitPressed   func() bool
}

// NewGame prepares a game; the animator is built on the first Layout.
func NewGame(opts Options) *Game {
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Game{
		opts:        opts,
		log:         logger,
		step:        time.Second / time.Duration(opts.TPS),
		quitPressed: quitKeys,
	}
}

func quitKeys() bool {
	return ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := NewGame(opts)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.TPS)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if g.quitPressed() {
		g.log.Printf("window closed after %d frames", g.Frames())
		return ebiten.Termination
	}
	if g.anim != nil {
		g.anim.Update(g.step)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.anim == nil {
		return
	}
	g.surface.Target(screen)
	g.anim.Render(g.surface)
}

// Layout keeps one pixel per device-independent unit and rebuilds the
// cube whenever the window size changes. The color cycle survives the
// rebuild.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height || g.anim == nil {
		g.width, g.height = outsideWidth, outsideHeight
		anim := g.opts.Anim
		if g.anim != nil {
			anim.Stroke = g.anim.Color()
		}
		g.surface = NewSurface(outsideWidth, outsideHeight)
		g.anim = cube.NewForSurface(g.surface, anim)
		g.log.Printf("window %dx%d, pivot %+v", outsideWidth, outsideHeight, g.anim.Pivot())
	}
	return outsideWidth, outsideHeight
}

// Frames returns the number of updates applied to the current cube.
func (g *Game) Frames() int {
	if g.anim == nil {
		return 0
	}
	return g.anim.Frames()
}
