package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

const backBufferCount = 2

// Framebuffer is the renderer's double-buffered canvas: two BGR back
// buffers and two alpha channels rotated by Present, one shared
// uint16 depth buffer (smaller value is closer), and one uint32
// accumulation buffer used by multi-sample callers such as a
// raytraced pass.
type Framebuffer struct {
	Width, Height int

	back  [backBufferCount][]Color
	alpha [backBufferCount][]uint8
	Depth []uint16

	// Accumulation holds running per-channel sums, 3 entries per
	// pixel, laid out blue,green,red to mirror the back buffer.
	Accumulation []uint32

	presentBufferIndex int
	presentSampleIndex int
	lastSampleIndex    int
}

// NewFramebuffer allocates a framebuffer sized width x height.
func NewFramebuffer(width, height int) *Framebuffer {
	size := width * height
	fb := &Framebuffer{
		Width:              width,
		Height:             height,
		Depth:              make([]uint16, size),
		Accumulation:       make([]uint32, size*3),
		presentSampleIndex: 1,
		lastSampleIndex:    1,
	}
	for i := range fb.back {
		fb.back[i] = make([]Color, size)
		fb.alpha[i] = make([]uint8, size)
	}
	return fb
}

// ClearScreen resets the active back buffer to the renderer's
// gray-ish sentinel fill and the depth buffer to its farthest value.
// The accumulation buffer is reset only when the current sample index
// regresses below the last cleared one (a new still-image pass
// started), matching the renderer's raytrace-friendly clear contract.
func (fb *Framebuffer) ClearScreen() {
	back := fb.back[fb.presentBufferIndex]
	fill := Color{B: 0x4D, G: 0x4D, R: 0x4D}
	for i := range back {
		back[i] = fill
	}
	for i := range fb.Depth {
		fb.Depth[i] = 0xFFFF
	}
	if fb.presentSampleIndex < fb.lastSampleIndex {
		for i := range fb.Accumulation {
			fb.Accumulation[i] = 0
		}
	}
	fb.lastSampleIndex = fb.presentSampleIndex
}

// setBack writes directly to the active back buffer by flat index,
// used by the rasterizer once a depth test has already passed.
func (fb *Framebuffer) setBack(index int, c Color) {
	fb.back[fb.presentBufferIndex][index] = c
}

// SetPixel writes a pixel into the active back buffer with no depth
// test, leaving the depth and accumulation buffers untouched.
// Out-of-range coordinates are silently dropped.
func (fb *Framebuffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.setBack(y*fb.Width+x, c)
}

// GetPixel reads a pixel from the active back buffer; out-of-range
// coordinates return the zero Color.
func (fb *Framebuffer) GetPixel(x, y int) Color {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return Color{}
	}
	return fb.back[fb.presentBufferIndex][y*fb.Width+x]
}

// SetAlpha writes the active alpha channel at (x,y); out-of-range
// coordinates are silently dropped.
func (fb *Framebuffer) SetAlpha(x, y int, a uint8) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.alpha[fb.presentBufferIndex][y*fb.Width+x] = a
}

// GetAlpha reads the active alpha channel at (x,y); out-of-range
// coordinates return 0.
func (fb *Framebuffer) GetAlpha(x, y int) uint8 {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return 0
	}
	return fb.alpha[fb.presentBufferIndex][y*fb.Width+x]
}

// DrawPixelAccumulate sums rgb into the running accumulation buffer
// for (x,y) and writes back the running average for currentSampleIndex.
//
// The accumulation buffer slot order is blue,green,red; the readback
// below indexes each channel's own slot (index+2 for red, index+1 for
// green, index for blue), so the average it writes back is a straight,
// un-rotated reconstruction of rgb.
func (fb *Framebuffer) DrawPixelAccumulate(x, y int, rgb Color, currentSampleIndex int) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	index := (y*fb.Width + x) * 3
	fb.Accumulation[index] += uint32(rgb.B)
	fb.Accumulation[index+1] += uint32(rgb.G)
	fb.Accumulation[index+2] += uint32(rgb.R)

	c := Color{
		R: uint8(fb.Accumulation[index+2] / uint32(currentSampleIndex)),
		G: uint8(fb.Accumulation[index+1] / uint32(currentSampleIndex)),
		B: uint8(fb.Accumulation[index] / uint32(currentSampleIndex)),
	}
	fb.setBack(index/3, c)
	fb.presentSampleIndex = currentSampleIndex
}

// Present hands back the just-rendered buffer and rotates to the
// other back buffer for the next frame.
func (fb *Framebuffer) Present() []Color {
	out := fb.back[fb.presentBufferIndex]
	fb.presentBufferIndex = (fb.presentBufferIndex + 1) % backBufferCount
	return out
}

// ToImage converts the active back buffer to a standard image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	back := fb.back[fb.presentBufferIndex]
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			c := back[y*fb.Width+x]
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

// SavePNG saves the active back buffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}
