package render

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Image is a BGR pixel grid loaded from disk or built procedurally.
// It has no wrap modes and no filtering beyond nearest-neighbor,
// matching the renderer's original sampling contract.
type Image struct {
	Width, Height int
	Channels      int
	Pixels        []Color // row-major, Width*Height entries
}

// NewImage allocates a black image of the given size.
func NewImage(width, height int) *Image {
	return &Image{
		Width:    width,
		Height:   height,
		Channels: 3,
		Pixels:   make([]Color, width*height),
	}
}

// LoadImage decodes an image file into BGR pixels.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image %q: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}

	return FromStdImage(src), nil
}

// FromStdImage converts a decoded image.Image into a BGR Image.
func FromStdImage(src image.Image) *Image {
	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	img := NewImage(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.Pixels[y*width+x] = Color{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			}
		}
	}

	return img
}

// SetPixel writes a pixel; out-of-range writes are silently dropped.
func (img *Image) SetPixel(x, y int, c Color) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	img.Pixels[y*img.Width+x] = c
}

// Pixel reads a pixel at integer coordinates. Out-of-range coordinates
// return a sentinel pink so missing texels are visually obvious rather
// than silently black.
func (img *Image) Pixel(x, y int) Color {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return colorPixelSentinel
	}
	return img.Pixels[y*img.Width+x]
}

// Sample nearest-neighbor samples the image at UV coordinates in
// [0,1], with V=0 at the top. An image with zero width, or a UV pair
// outside [0,1], samples to black rather than wrapping or clamping.
func (img *Image) Sample(u, v float32) Color {
	if img.Width == 0 || img.Height == 0 {
		return ColorBlack
	}
	if u < 0 || u > 1 || v < 0 || v > 1 {
		return ColorBlack
	}

	x := int(u * float32(img.Width-1))
	y := int(v * float32(img.Height-1))

	return img.Pixel(x, y)
}
