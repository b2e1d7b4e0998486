package render

import (
	"context"
	"fmt"
	"image/color"
	"os"

	uv "github.com/charmbracelet/ultraviolet"
)

// Surface is the host windowing/input/presentation collaborator the
// frame controller drives once per frame. It owns no pipeline state:
// it only turns a present buffer into pixels on screen and reports
// input back.
type Surface interface {
	Width() int
	Height() int

	// PollEvents drains pending input without blocking and reports
	// whether a quit was requested.
	PollEvents() (quit bool)

	// Present hands the BGR present buffer, tightly packed
	// width*height, to the surface for display.
	Present(buf []Color, width, height int)

	KeyDown(key string) bool
	MouseX() int
	MouseY() int
	WheelDelta() int

	Close() error
}

// TerminalSurface presents the BGR framebuffer as terminal half-blocks:
// two framebuffer rows per terminal row, drawn as ▀ with fg=top color
// and bg=bottom color. This is the out-of-core collaborator the
// pipeline expects, not part of the pipeline itself.
type TerminalSurface struct {
	term   *uv.Terminal
	width  int
	height int

	keys       map[string]bool
	mouseX     int
	mouseY     int
	wheelDelta int
	quit       bool
}

// NewTerminalSurface starts an alternate-screen terminal session sized
// width x height and begins draining its event stream in the
// background.
func NewTerminalSurface(width, height int, title string) (*TerminalSurface, error) {
	term := uv.DefaultTerminal()
	if err := term.Start(); err != nil {
		return nil, fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	fmt.Fprint(os.Stdout, "\x1b[?1003h\x1b[?1006h") // any-event + SGR mouse tracking

	s := &TerminalSurface{
		term:   term,
		width:  width,
		height: height,
		keys:   make(map[string]bool),
	}
	go s.pump()
	return s, nil
}

func (s *TerminalSurface) pump() {
	for ev := range s.term.Events() {
		switch ev := ev.(type) {
		case uv.WindowSizeEvent:
			s.width, s.height = ev.Width, ev.Height
			s.term.Resize(s.width, s.height)
		case uv.KeyPressEvent:
			s.keys[ev.String()] = true
			if ev.MatchString("ctrl+c") {
				s.quit = true
			}
		case uv.KeyReleaseEvent:
			delete(s.keys, ev.String())
		case uv.MouseMotionEvent:
			s.mouseX, s.mouseY = ev.X, ev.Y
		case uv.MouseClickEvent:
			s.mouseX, s.mouseY = ev.X, ev.Y
		case uv.MouseWheelEvent:
			switch ev.Button {
			case uv.MouseWheelUp:
				s.wheelDelta++
			case uv.MouseWheelDown:
				s.wheelDelta--
			}
		}
	}
}

func (s *TerminalSurface) Width() int  { return s.width }
func (s *TerminalSurface) Height() int { return s.height }

// PollEvents reports whether a quit has been requested since the last
// poll. Event draining itself happens continuously in the background
// pump goroutine; this just samples the quit flag.
func (s *TerminalSurface) PollEvents() (quit bool) {
	return s.quit
}

// Present converts a tightly packed BGR buffer to terminal cells and
// draws them. The buffer's height should be 2x the terminal row count.
func (s *TerminalSurface) Present(buf []Color, width, height int) {
	rows := height / 2
	for row := 0; row < rows; row++ {
		topY := row * 2
		botY := topY + 1
		for col := 0; col < width; col++ {
			top := buf[topY*width+col]
			bot := buf[botY*width+col]

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: colorToRGBA(top),
					Bg: colorToRGBA(bot),
				},
			}
			s.term.SetCell(col, row, cell)
		}
	}
	s.term.Display()
}

// colorToRGBA converts a BGR Color to Go's color.Color interface.
func colorToRGBA(c Color) color.Color {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (s *TerminalSurface) KeyDown(key string) bool { return s.keys[key] }
func (s *TerminalSurface) MouseX() int             { return s.mouseX }
func (s *TerminalSurface) MouseY() int { return s.mouseY }

// WheelDelta returns and resets the accumulated wheel ticks since the
// last call, so repeated polling doesn't double-count a scroll.
func (s *TerminalSurface) WheelDelta() int {
	d := s.wheelDelta
	s.wheelDelta = 0
	return d
}

func (s *TerminalSurface) Close() error {
	fmt.Fprint(os.Stdout, "\x1b[?1003l\x1b[?1006l")
	s.term.ExitAltScreen()
	s.term.ShowCursor()
	return s.term.Shutdown(context.Background())
}
