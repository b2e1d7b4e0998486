package render

import "testing"

func TestNormalizeConfigClampsAndAligns(t *testing.T) {
	cfg := normalizeConfig(Config{WindowWidth: 100, WindowHeight: 100})
	if cfg.WindowWidth != minWindowWidth {
		t.Errorf("WindowWidth = %d, want %d", cfg.WindowWidth, minWindowWidth)
	}
	if cfg.WindowHeight != minWindowHeight {
		t.Errorf("WindowHeight = %d, want %d", cfg.WindowHeight, minWindowHeight)
	}
}

func TestNormalizeConfigAlignsToFour(t *testing.T) {
	cfg := normalizeConfig(Config{WindowWidth: 321, WindowHeight: 241})
	if cfg.WindowWidth%4 != 0 {
		t.Errorf("WindowWidth %d not aligned to 4", cfg.WindowWidth)
	}
	if cfg.WindowHeight%4 != 0 {
		t.Errorf("WindowHeight %d not aligned to 4", cfg.WindowHeight)
	}
}

func TestNormalizeConfigDefaults(t *testing.T) {
	cfg := normalizeConfig(Config{})
	if cfg.BytesPrealloc != defaultBytesPrealloc {
		t.Errorf("BytesPrealloc = %d, want default", cfg.BytesPrealloc)
	}
	if cfg.MaxManagedObjects != defaultMaxManagedObjects {
		t.Errorf("MaxManagedObjects = %d, want default", cfg.MaxManagedObjects)
	}
	if cfg.Alignment != defaultAlignment {
		t.Errorf("Alignment = %d, want default", cfg.Alignment)
	}
	if cfg.WindowTitle != "rasterkit" {
		t.Errorf("WindowTitle = %q, want rasterkit", cfg.WindowTitle)
	}
}

func TestNormalizeConfigPreservesValidValues(t *testing.T) {
	cfg := normalizeConfig(Config{
		WindowWidth:       640,
		WindowHeight:      480,
		WindowTitle:       "custom",
		BytesPrealloc:     1024,
		MaxManagedObjects: 10,
		Alignment:         128,
	})
	if cfg.WindowWidth != 640 || cfg.WindowHeight != 480 {
		t.Errorf("unexpected clamp of already-valid dimensions: %dx%d", cfg.WindowWidth, cfg.WindowHeight)
	}
	if cfg.Alignment != 128 {
		t.Errorf("Alignment = %d, want 128", cfg.Alignment)
	}
}

func TestAlignUp(t *testing.T) {
	cases := []struct{ v, alignment, want int }{
		{100, 4, 100},
		{101, 4, 104},
		{0, 64, 0},
		{65, 64, 128},
	}
	for _, c := range cases {
		if got := alignUp(c.v, c.alignment); got != c.want {
			t.Errorf("alignUp(%d, %d) = %d, want %d", c.v, c.alignment, got, c.want)
		}
	}
}

// stubSurface is a minimal Surface used to drive Start without a real
// terminal, presenting a fixed number of frames before quitting.
type stubSurface struct {
	width, height int
	framesLeft    int
	presented     int
}

func (s *stubSurface) Width() int  { return s.width }
func (s *stubSurface) Height() int { return s.height }
func (s *stubSurface) PollEvents() bool {
	if s.framesLeft <= 0 {
		return true
	}
	s.framesLeft--
	return false
}
func (s *stubSurface) Present(buf []Color, width, height int) { s.presented++ }
func (s *stubSurface) KeyDown(key string) bool                { return false }
func (s *stubSurface) MouseX() int                             { return 0 }
func (s *stubSurface) MouseY() int                             { return 0 }
func (s *stubSurface) WheelDelta() int                         { return 0 }
func (s *stubSurface) Close() error                            { return nil }

func TestStartDrivesInitAndUpdate(t *testing.T) {
	stub := &stubSurface{framesLeft: 3}
	newSurface := func(w, h int, title string) (Surface, error) { return stub, nil }

	initCalled := false
	updates := 0

	err := Start(Config{WindowWidth: 320, WindowHeight: 240}, newSurface,
		func(f *Frame) error { initCalled = true; return nil },
		func(f *Frame, dt float64) error { updates++; return nil },
	)
	if err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	if !initCalled {
		t.Error("on_init was not called")
	}
	if updates != 3 {
		t.Errorf("on_update called %d times, want 3", updates)
	}
	if stub.presented != 3 {
		t.Errorf("Present called %d times, want 3", stub.presented)
	}
}

func TestStartPropagatesUpdateError(t *testing.T) {
	stub := &stubSurface{framesLeft: 5}
	newSurface := func(w, h int, title string) (Surface, error) { return stub, nil }

	wantErr := "boom"
	err := Start(Config{WindowWidth: 320, WindowHeight: 240}, newSurface,
		nil,
		func(f *Frame, dt float64) error { return errString(wantErr) },
	)
	if err == nil {
		t.Fatal("expected error from Start")
	}
}

type errString string

func (e errString) Error() string { return string(e) }
