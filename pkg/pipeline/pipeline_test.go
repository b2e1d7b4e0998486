package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/rasterkit/pkg/math3d"
	"github.com/taigrr/rasterkit/pkg/models"
	"github.com/taigrr/rasterkit/pkg/render"
)

// quadMesh builds a single triangle in the z=0 plane around the origin.
// Its face normal (B-A)x(C-A) points toward -Z, so it faces a camera
// on the -Z axis looking along +Z.
func quadMesh() *models.Mesh {
	mesh := models.NewMesh("quad")
	mesh.Vertices = []render.Vertex{
		{Position: math3d.V3(-1, -1, 0), UV: math3d.V2(0, 0)},
		{Position: math3d.V3(0, 1, 0), UV: math3d.V2(0.5, 1)},
		{Position: math3d.V3(1, -1, 0), UV: math3d.V2(1, 0)},
	}
	mesh.Indices = []uint32{0, 1, 2}
	mesh.CalculateBounds()
	return mesh
}

func newTestCamera() *render.Camera {
	cam := render.NewCamera()
	cam.Position = math3d.V3(0, 0, -5)
	cam.Projection = render.Projection{FovDeg: 60, Near: 0.1, Far: 100}
	cam.UpdateViewMatrix()
	return cam
}

func TestPipelineDrawRastersVisibleTriangle(t *testing.T) {
	fb := render.NewFramebuffer(64, 64)
	fb.ClearScreen()
	pipe := New(fb)

	object := models.NewObject3D()
	object.AddMesh(quadMesh(), render.NewImage(4, 4))

	cam := newTestCamera()
	err := pipe.Draw(cam, []*models.Object3D{object})
	require.NoError(t, err)

	covered := false
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.Depth[y*fb.Width+x] != 0xFFFF {
				covered = true
			}
		}
	}
	require.True(t, covered, "expected some pixels to be depth-written by a visible triangle")
}

func TestPipelineDrawCullsBackFacingTriangle(t *testing.T) {
	fb := render.NewFramebuffer(64, 64)
	fb.ClearScreen()
	pipe := New(fb)

	mesh := quadMesh()
	// Reverse winding so the face normal points away from the camera.
	mesh.Indices = []uint32{2, 1, 0}

	object := models.NewObject3D()
	object.AddMesh(mesh, render.NewImage(4, 4))

	cam := newTestCamera()
	err := pipe.Draw(cam, []*models.Object3D{object})
	require.NoError(t, err)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			require.Equal(t, uint16(0xFFFF), fb.Depth[y*fb.Width+x], "back-facing triangle should not be rasterized")
		}
	}
}

func TestPipelineDrawSkipsObjectOutsideFrustumWhenCullEnabled(t *testing.T) {
	fb := render.NewFramebuffer(64, 64)
	fb.ClearScreen()
	pipe := New(fb)
	pipe.Cull = true

	object := models.NewObject3D()
	object.AddMesh(quadMesh(), render.NewImage(4, 4))
	object.Position = math3d.V3(1000, 0, 0) // far outside the view frustum

	cam := newTestCamera()
	err := pipe.Draw(cam, []*models.Object3D{object})
	require.NoError(t, err)

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			require.Equal(t, uint16(0xFFFF), fb.Depth[y*fb.Width+x], "culled object should not be rasterized")
		}
	}
}

func TestPipelineDrawWireframeUsesDrawTriangle(t *testing.T) {
	fb := render.NewFramebuffer(64, 64)
	fb.ClearScreen()
	pipe := New(fb)
	pipe.Wireframe = true

	object := models.NewObject3D()
	object.AddMesh(quadMesh(), nil)

	cam := newTestCamera()
	err := pipe.Draw(cam, []*models.Object3D{object})
	require.NoError(t, err)
}
