package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/rasterkit/pkg/math3d"
)

func solidImage(c Color) *Image {
	img := NewImage(1, 1)
	img.Pixels[0] = c
	return img
}

func TestDrawTexturedTriangleRespectsDepth(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	fb.ClearScreen()

	far := Triangle{
		A: Vertex{Position: math3d.V3(2, 2, 0.9), UV: math3d.V2(0, 0)},
		B: Vertex{Position: math3d.V3(13, 2, 0.9), UV: math3d.V2(1, 0)},
		C: Vertex{Position: math3d.V3(7, 13, 0.9), UV: math3d.V2(0.5, 1)},
	}
	near := Triangle{
		A: Vertex{Position: math3d.V3(2, 2, 0.1), UV: math3d.V2(0, 0)},
		B: Vertex{Position: math3d.V3(13, 2, 0.1), UV: math3d.V2(1, 0)},
		C: Vertex{Position: math3d.V3(7, 13, 0.1), UV: math3d.V2(0.5, 1)},
	}

	fb.DrawTexturedTriangle(far, solidImage(ColorRed))
	fb.DrawTexturedTriangle(near, solidImage(ColorBlue))

	require.Equal(t, ColorBlue, fb.GetPixel(7, 7), "nearer triangle must win the depth test")
}

func TestDrawTexturedTriangleSkipsFartherPixels(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	fb.ClearScreen()

	near := Triangle{
		A: Vertex{Position: math3d.V3(2, 2, 0.1), UV: math3d.V2(0, 0)},
		B: Vertex{Position: math3d.V3(13, 2, 0.1), UV: math3d.V2(1, 0)},
		C: Vertex{Position: math3d.V3(7, 13, 0.1), UV: math3d.V2(0.5, 1)},
	}
	far := Triangle{
		A: Vertex{Position: math3d.V3(2, 2, 0.9), UV: math3d.V2(0, 0)},
		B: Vertex{Position: math3d.V3(13, 2, 0.9), UV: math3d.V2(1, 0)},
		C: Vertex{Position: math3d.V3(7, 13, 0.9), UV: math3d.V2(0.5, 1)},
	}

	fb.DrawTexturedTriangle(near, solidImage(ColorBlue))
	fb.DrawTexturedTriangle(far, solidImage(ColorRed))

	require.Equal(t, ColorBlue, fb.GetPixel(7, 7), "farther triangle drawn after must not overwrite the nearer one")
}

func TestDrawLineDepthRespectsDepth(t *testing.T) {
	fb := NewFramebuffer(16, 16)
	fb.ClearScreen()

	near := Vertex{Position: math3d.V3(0, 5, 0.1)}
	nearEnd := Vertex{Position: math3d.V3(15, 5, 0.1)}
	far := Vertex{Position: math3d.V3(0, 5, 0.9)}
	farEnd := Vertex{Position: math3d.V3(15, 5, 0.9)}

	fb.DrawLineDepth(near, nearEnd, ColorBlue)
	fb.DrawLineDepth(far, farEnd, ColorRed)

	require.Equal(t, ColorBlue, fb.GetPixel(8, 5))
}

func TestDepthQuantize(t *testing.T) {
	require.Equal(t, uint16(0), depthQuantize(0))
	require.Equal(t, uint16(depthMax), depthQuantize(1))
	require.Equal(t, uint16(depthMax), depthQuantize(-1))
}
