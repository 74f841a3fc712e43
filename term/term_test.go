package term

import (
	"image/color"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"wirecube/cube"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)
	return screen
}

func newHost(screen tcell.Screen, status bool) *host {
	return &host{
		screen: screen,
		opts:   Options{Anim: cube.DefaultOptions(), Status: status},
		log:    log.New(io.Discard, "", 0),
	}
}

func colorOf(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func rowText(screen tcell.Screen, y, n int) string {
	var b strings.Builder
	for x := 0; x < n; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestSurfacePresent(t *testing.T) {
	screen := newScreen(t, 4, 2)
	s := NewSurface(4, 2)
	if w, h := s.Size(); w != 4 || h != 4 {
		t.Fatalf("canvas size %vx%v, want 4x4", w, h)
	}

	red := tcell.NewRGBColor(0xff, 0, 0)
	blue := tcell.NewRGBColor(0, 0, 0xff)
	s.SetFillStyle(colorOf(0xff, 0, 0))
	s.FillRect(0, 0, 4, 1)
	s.SetFillStyle(colorOf(0, 0, 0xff))
	s.FillRect(0, 1, 4, 1)
	s.Present(screen)

	r, _, style, _ := screen.GetContent(1, 0)
	if r != upperHalf {
		t.Errorf("cell rune = %q, want %q", r, upperHalf)
	}
	fg, bg, _ := style.Decompose()
	if fg != red || bg != blue {
		t.Errorf("cell colors fg=%v bg=%v, want red over blue", fg, bg)
	}
}

func TestHostFrameDrawsStatus(t *testing.T) {
	screen := newScreen(t, 40, 12)
	h := newHost(screen, true)
	h.rebuild(0)

	if cols, rows := h.surface.Cells(); cols != 40 || rows != 11 {
		t.Fatalf("surface %dx%d cells, want 40x11", cols, rows)
	}

	h.frame(16 * time.Millisecond)
	if h.anim.Frames() != 1 {
		t.Fatalf("frames = %d, want 1", h.anim.Frames())
	}
	if got := rowText(screen, 11, 7); got != "#008000" {
		t.Errorf("status line starts with %q, want #008000", got)
	}
	if r, _, _, _ := screen.GetContent(0, 0); r != upperHalf {
		t.Errorf("canvas cell rune = %q", r)
	}
}

func TestHostPause(t *testing.T) {
	screen := newScreen(t, 20, 10)
	h := newHost(screen, false)
	h.rebuild(0)

	h.frame(16 * time.Millisecond)
	h.togglePause(100 * time.Millisecond)
	h.frame(200 * time.Millisecond)
	if h.anim.Frames() != 1 {
		t.Errorf("paused host advanced to %d frames", h.anim.Frames())
	}

	h.togglePause(300 * time.Millisecond)
	if h.offset != 200*time.Millisecond {
		t.Errorf("offset = %v, want 200ms", h.offset)
	}
	h.frame(316 * time.Millisecond)
	if h.anim.Frames() != 2 {
		t.Errorf("resumed host has %d frames, want 2", h.anim.Frames())
	}
}

func TestHostSkipsTinyScreens(t *testing.T) {
	screen := newScreen(t, 1, 1)
	h := newHost(screen, false)
	h.rebuild(0)
	h.frame(16 * time.Millisecond)
	if h.anim.Frames() != 0 {
		t.Errorf("tiny screen rendered %d frames", h.anim.Frames())
	}
}

func TestHostResizeRestartsClock(t *testing.T) {
	screen := newScreen(t, 30, 10)
	h := newHost(screen, false)
	h.rebuild(0)
	h.frame(16 * time.Millisecond)

	screen.SetSize(60, 20)
	cmds := make(chan command, 1)
	cmds <- cmdResize
	h.drain(cmds, 5*time.Second)

	if cols, rows := h.surface.Cells(); cols != 60 || rows != 20 {
		t.Errorf("after resize surface is %dx%d", cols, rows)
	}
	if h.offset != 5*time.Second || h.anim.Frames() != 0 {
		t.Errorf("resize kept offset=%v frames=%d", h.offset, h.anim.Frames())
	}
}

func TestHostResizeKeepsColorCycle(t *testing.T) {
	screen := newScreen(t, 30, 10)
	h := newHost(screen, false)
	h.rebuild(0)
	for i := 1; i <= 40; i++ {
		h.frame(time.Duration(i) * 60 * time.Millisecond)
	}
	before := h.anim.Color()
	if before.String() == "#008000" {
		t.Fatalf("color cycle did not advance before resize")
	}

	screen.SetSize(50, 16)
	cmds := make(chan command, 1)
	cmds <- cmdResize
	h.drain(cmds, 3*time.Second)

	if after := h.anim.Color(); after != before {
		t.Errorf("color after resize = %s (shift %d), want %s (shift %d)",
			after, after.Shift(), before, before.Shift())
	}
	h.frame(3*time.Second + 16*time.Millisecond)
	if got := h.anim.Color().String(); got != before.String() {
		t.Errorf("first frame after resize shows %s, want %s", got, before)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	flips := 0
	anim := cube.DefaultOptions()
	anim.OnFlip = func(bool) { flips++ }

	done := make(chan error, 1)
	go func() {
		done <- Run(screen, Options{Anim: anim, FPS: 120, Status: true})
	}()

	time.Sleep(100 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after q")
	}
	if flips != 0 {
		t.Errorf("unexpected color flips: %d", flips)
	}
}
