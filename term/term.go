// =======================
// term/term.go
// =======================

package term

import (
	"fmt"
	"io"
	"log"
	"time"

	"wirecube/cube"

	"github.com/gdamore/tcell/v2"
)

// Options configures the terminal host.
type Options struct {
	Anim   cube.Options
	FPS    int
	Status bool
	Clock  cube.Clock
	Logger *log.Logger
}

type command int

const (
	cmdResize command = iota
	cmdPause
)

// host owns the animator and the surface. Only the frame loop touches it.
type host struct {
	screen tcell.Screen
	opts   Options
	log    *log.Logger

	surface *Surface
	anim    *cube.Animator

	paused   bool
	pausedAt time.Duration
	offset   time.Duration
}

// Run animates the cube on screen until Esc, Ctrl-C or q is pressed.
func Run(screen tcell.Screen, opts Options) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer screen.Fini()

	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	clock := opts.Clock
	if clock == nil {
		clock = cube.NewSystemClock()
	}
	h := &host{screen: screen, opts: opts, log: logger}
	h.opts.Anim.OnFlip = h.flipHook(opts.Anim.OnFlip)
	h.rebuild(clock.Now())

	quit := make(chan struct{})
	cmds := make(chan command, 16)

	// Input handler
	go func() {
		defer close(quit)
		for {
			switch ev := screen.PollEvent().(type) {
			case nil:
				return
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return
				case tcell.KeyRune:
					switch ev.Rune() {
					case 'q', 'Q':
						return
					case 'p', 'P', ' ':
						cmds <- cmdPause
					}
				}
			case *tcell.EventResize:
				screen.Sync()
				cmds <- cmdResize
			}
		}
	}()

	sched := cube.NewScheduler(time.Second/time.Duration(opts.FPS), clock)
	logger.Printf("terminal loop started at %d fps", opts.FPS)
	sched.Run(quit, func(now time.Duration) {
		h.drain(cmds, now)
		h.frame(now)
	})
	logger.Printf("terminal loop stopped after %d frames", h.anim.Frames())
	return nil
}

func (h *host) flipHook(next func(bool)) func(bool) {
	return func(reverse bool) {
		h.log.Printf("color cycle reversed: toward %s", target(reverse))
		if next != nil {
			next(reverse)
		}
	}
}

func (h *host) drain(cmds <-chan command, now time.Duration) {
	for {
		select {
		case c := <-cmds:
			switch c {
			case cmdResize:
				h.rebuild(now)
			case cmdPause:
				h.togglePause(now)
			}
		default:
			return
		}
	}
}

func (h *host) togglePause(now time.Duration) {
	if h.paused {
		h.offset += now - h.pausedAt
	} else {
		h.pausedAt = now
	}
	h.paused = !h.paused
	h.log.Printf("paused=%v", h.paused)
}

// rebuild sizes a new surface and animator to the screen, starting the
// animation clock at now. The color cycle carries over from the previous
// animator. The status line takes the bottom row.
func (h *host) rebuild(now time.Duration) {
	cols, rows := h.screen.Size()
	if h.opts.Status {
		rows--
	}
	anim := h.opts.Anim
	if h.anim != nil {
		anim.Stroke = h.anim.Color()
	}
	h.surface = NewSurface(cols, rows)
	h.anim = cube.NewForSurface(h.surface, anim)
	h.offset, h.pausedAt = now, now
	h.log.Printf("surface %dx%d cells, pivot %+v", cols, rows, h.anim.Pivot())
}

func (h *host) frame(now time.Duration) {
	if h.paused {
		return
	}
	cols, rows := h.surface.Cells()
	if cols < 2 || rows < 2 {
		return
	}

	h.anim.Frame(now-h.offset, h.surface)
	h.screen.Clear()
	h.surface.Present(h.screen)
	if h.opts.Status {
		c := h.anim.Color()
		info := fmt.Sprintf("%s → %s | frame %d | p:pause q:quit", c, target(c.Reverse()), h.anim.Frames())
		drawText(h.screen, 0, rows, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), info)
	}
	h.screen.Show()
}

func target(reverse bool) string {
	if reverse {
		return "#000000"
	}
	return "#999999"
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
