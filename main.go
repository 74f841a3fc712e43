// main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"wirecube/chime"
	"wirecube/config"
	"wirecube/cube"
	"wirecube/raster"
	"wirecube/term"
	"wirecube/window"

	"github.com/gdamore/tcell/v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses args and drives the selected backend. Deferred cleanup (log
// file, speaker) always runs before it returns.
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("wirecube", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML configuration file")
	backend := fs.String("backend", "term", "Output: term, window or gif")
	out := fs.String("out", "wirecube.gif", "Output file for the gif backend")
	frames := fs.Int("frames", 0, "Frames to render with the gif backend")
	glow := fs.Float64("glow", 0, "Glow blur radius for gif frames")
	pivot := fs.String("pivot", "", "Rotation pivot: fixed or centroid")
	fps := fs.Int("fps", 0, "Frames per second for the terminal and window")
	sound := fs.Bool("sound", false, "Play a tone when the color cycle reverses")
	bench := fs.Bool("bench", false, "Benchmark the software canvas")
	trace := fs.Int("trace", 0, "Print the drawing commands of the first N frames")
	logPath := fs.String("log", "", "Append log output to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	validBackends := map[string]bool{"term": true, "window": true, "gif": true}
	if !validBackends[*backend] {
		return fmt.Errorf("invalid backend %q, supported: term, window, gif", *backend)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags given on the command line win over the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frames":
			cfg.GIF.Frames = *frames
		case "glow":
			cfg.GIF.Glow = *glow
		case "pivot":
			cfg.Pivot = *pivot
		case "fps":
			cfg.FPS = *fps
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// The trace and the benchmark draw on plain pixel surfaces, so they
	// use the pixel layout whatever the backend.
	if *trace > 0 || *bench {
		opts, err := cfg.Options(false)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		if *trace > 0 {
			runTrace(stdout, opts, cfg.Window.Width, cfg.Window.Height, *trace)
			return nil
		}
		results, err := raster.BenchmarkCanvas(raster.DefaultBenchmarkSizes, 120, opts)
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}
		raster.PrintBenchmarkResults(stdout, results)
		return nil
	}

	logger, closeLog, err := newLogger(*logPath, *backend == "term")
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	opts, err := cfg.Options(*backend == "term")
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if *sound {
		c, err := chime.New(chime.DefaultSampleRate)
		if err != nil {
			// Non-fatal, the cube runs without sound
			logger.Printf("Audio initialization failed: %v", err)
		} else {
			defer c.Close()
			opts.OnFlip = func(reverse bool) {
				if err := c.Play(reverse); err != nil {
					logger.Printf("chime: %v", err)
				}
			}
		}
	}

	switch *backend {
	case "term":
		err = runTerminal(cfg, opts, logger)
	case "window":
		err = window.Run(window.Options{
			Anim:   opts,
			Title:  cfg.Window.Title,
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			TPS:    cfg.FPS,
			Logger: logger,
		})
	case "gif":
		err = exportGIF(stdout, *out, cfg, opts)
	}
	if err != nil {
		logger.Printf("%s backend failed: %v", *backend, err)
	}
	return err
}

// newLogger writes to path when given. Without a path the terminal
// backend discards log output, since the screen owns stdout and stderr.
func newLogger(path string, quiet bool) (*log.Logger, func(), error) {
	const prefix = "wirecube: "
	if path == "" {
		var w io.Writer = os.Stderr
		if quiet {
			w = io.Discard
		}
		return log.New(w, prefix, log.LstdFlags), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return log.New(f, prefix, log.LstdFlags|log.Lmicroseconds), func() { f.Close() }, nil
}

func runTerminal(cfg config.Config, opts cube.Options, logger *log.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	return term.Run(s, term.Options{
		Anim:   opts,
		FPS:    cfg.FPS,
		Status: cfg.Terminal.Status,
		Logger: logger,
	})
}

func exportGIF(stdout io.Writer, path string, cfg config.Config, opts cube.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	start := time.Now()
	if err := raster.Export(f, cfg.Export(), opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	fmt.Fprintf(stdout, "Wrote %s: %d frames %dx%d in %v\n",
		path, cfg.GIF.Frames, cfg.GIF.Width, cfg.GIF.Height, time.Since(start).Round(time.Millisecond))
	return nil
}

// runTrace prints every drawing command of the first n frames on a
// recording surface.
func runTrace(w io.Writer, opts cube.Options, width, height, n int) {
	rec := cube.NewRecorder(float64(width), float64(height))
	a := cube.NewForSurface(rec, opts)
	for _, c := range rec.Commands {
		fmt.Fprintf(w, "setup %s\n", c)
	}

	sched := cube.NewScheduler(cube.DefaultInterval, nil)
	sched.Steps(n, func(now time.Duration) {
		rec.Reset()
		a.Frame(now, rec)
		fmt.Fprintf(w, "frame %d @%v color=%s\n", a.Frames(), now, a.Color())
		for _, c := range rec.Commands {
			fmt.Fprintf(w, "  %s\n", c)
		}
	})
}
