package render

import (
	"fmt"
	"time"
)

// Config holds the Start-time knobs for the frame controller. Zero
// values are replaced with their documented defaults by Start.
type Config struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string

	// BytesPrealloc sizes the working arena the original C++ renderer
	// carved its buffers from. The Go port allocates framebuffers and
	// meshes on the garbage-collected heap instead (see DESIGN.md), so
	// this is tracked only for parity with the source's Start
	// signature and is not itself used to size anything.
	BytesPrealloc int

	// MaxManagedObjects is the source's object-registry capacity. It is
	// defaulted and kept for parity with the source's Start signature;
	// nothing uses it beyond that defaulting and no registry enforces it.
	MaxManagedObjects int

	// Alignment clamps to >=64; kept for parity with the source, not
	// used by the GC-backed allocation strategy.
	Alignment int

	// ClearScreen, when true, clears the back buffer and depth buffer
	// before each on_update call.
	ClearScreen bool
}

const (
	minWindowWidth  = 320
	minWindowHeight = 240
	minAlignment    = 64

	defaultBytesPrealloc     = 30 * 1024 * 1024
	defaultMaxManagedObjects = 4096
	defaultAlignment         = 64
)

func alignUp(v, alignment int) int {
	if alignment <= 0 {
		return v
	}
	rem := v % alignment
	if rem == 0 {
		return v
	}
	return v + (alignment - rem)
}

func normalizeConfig(cfg Config) Config {
	if cfg.WindowWidth < minWindowWidth {
		cfg.WindowWidth = minWindowWidth
	}
	cfg.WindowWidth = alignUp(cfg.WindowWidth, 4)

	if cfg.WindowHeight < minWindowHeight {
		cfg.WindowHeight = minWindowHeight
	}
	cfg.WindowHeight = alignUp(cfg.WindowHeight, 4)

	if cfg.BytesPrealloc <= 0 {
		cfg.BytesPrealloc = defaultBytesPrealloc
	}
	if cfg.MaxManagedObjects <= 0 {
		cfg.MaxManagedObjects = defaultMaxManagedObjects
	}
	if cfg.Alignment < minAlignment {
		cfg.Alignment = defaultAlignment
	}
	if cfg.WindowTitle == "" {
		cfg.WindowTitle = "rasterkit"
	}
	return cfg
}

// Frame owns the surface, framebuffer, and per-frame timing state that
// Start's main loop threads through the user's on_update callback.
type Frame struct {
	Surface    Surface
	FB         *Framebuffer
	Config     Config
	FrameIndex uint64
	FPS        float64

	sampleIndex    int
	accumulated    time.Duration
	accumFrames    int
}

// Present hands the back buffer to the surface and advances the
// present-buffer rotation (see Framebuffer.Present).
func (f *Frame) Present() {
	buf := f.FB.Present()
	f.Surface.Present(buf, f.FB.Width, f.FB.Height)
}

// Start clamps and aligns the window configuration, opens a Surface,
// allocates the framebuffer, runs onInit once, then drives the main
// loop: drain events, measure dt, meter FPS once every >=0.25s, clear
// (if configured), call onUpdate(dt), present, advance FrameIndex. The
// loop returns when the surface reports a quit event or a callback
// returns a non-nil error.
func Start(cfg Config, newSurface func(w, h int, title string) (Surface, error), onInit func(*Frame) error, onUpdate func(f *Frame, dt float64) error) error {
	cfg = normalizeConfig(cfg)

	surface, err := newSurface(cfg.WindowWidth, cfg.WindowHeight, cfg.WindowTitle)
	if err != nil {
		return fmt.Errorf("open surface: %w", err)
	}
	defer surface.Close()

	fb := NewFramebuffer(cfg.WindowWidth, cfg.WindowHeight)
	frame := &Frame{Surface: surface, FB: fb, Config: cfg}

	if onInit != nil {
		if err := onInit(frame); err != nil {
			return fmt.Errorf("on_init: %w", err)
		}
	}

	last := time.Now()
	for {
		if surface.PollEvents() {
			return nil
		}

		now := time.Now()
		dt := now.Sub(last)
		last = now

		frame.accumulated += dt
		frame.accumFrames++
		if frame.accumulated >= 250*time.Millisecond {
			frame.FPS = float64(frame.accumFrames) / frame.accumulated.Seconds()
			frame.accumulated = 0
			frame.accumFrames = 0
		}

		if cfg.ClearScreen {
			fb.ClearScreen()
		}

		if onUpdate != nil {
			if err := onUpdate(frame, dt.Seconds()); err != nil {
				return fmt.Errorf("on_update: %w", err)
			}
		}

		frame.Present()
		frame.FrameIndex++
	}
}
