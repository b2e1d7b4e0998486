// Package pipeline drives a camera and a set of objects through the
// transform/clip/raster stages into a render.Framebuffer.
package pipeline

import (
	"fmt"

	"github.com/taigrr/rasterkit/pkg/math3d"
	"github.com/taigrr/rasterkit/pkg/models"
	"github.com/taigrr/rasterkit/pkg/render"
	"github.com/taigrr/rasterkit/pkg/rerr"
)

// maxClipTriangles bounds how many triangles a single input triangle
// can explode into across the near/far/4-screen-edge clip passes.
// Each of the six planes at most doubles the count, so 2^6 = 64 is the
// exact worst case.
const maxClipTriangles = 64

// Pipeline owns the viewport transform and dispatches Draw for a
// camera against a set of objects into a framebuffer.
type Pipeline struct {
	Width, Height int
	Wireframe     bool
	Cull          bool // enable optional frustum AABB pre-pass

	fb       *render.Framebuffer
	viewport math3d.Mat4
}

// New builds a pipeline targeting fb, with a viewport matrix derived
// from the framebuffer's dimensions.
func New(fb *render.Framebuffer) *Pipeline {
	return &Pipeline{
		Width:    fb.Width,
		Height:   fb.Height,
		fb:       fb,
		viewport: math3d.ViewPortMatrix(fb.Width, fb.Height),
	}
}

// Draw transforms, clips, and rasterizes every mesh of every object
// visible from camera. UpdateViewMatrix must already have been called
// on camera this frame. An overflowing clip (see rerr.ErrClipOverflow)
// aborts the rest of the frame's draw calls and is returned to the
// caller, per the fixed-size scratch array's fatal-overflow contract.
func (p *Pipeline) Draw(camera *render.Camera, objects []*models.Object3D) error {
	proj := camera.ProjectionMatrix(p.Width, p.Height)
	projViewport := proj.Mul(p.viewport)
	view := camera.ViewMatrix()

	canvasW := float32(p.Width - 1)
	canvasH := float32(p.Height - 1)

	for _, obj := range objects {
		if p.Cull {
			frustum := render.NewFrustumFromMatrix(view.Mul(proj))
			if !frustum.IntersectAABB(obj.WorldBounds()) {
				continue
			}
		}

		world := obj.WorldMatrix()

		for mi, mesh := range obj.Meshes {
			var texture *render.Image
			if mi < len(obj.DiffuseTextures) {
				texture = obj.DiffuseTextures[mi]
			}

			for ti := 0; ti < mesh.TriangleCount(); ti++ {
				toWorld := mesh.Triangle(ti).Transform(world)

				normal := toWorld.B.Position.Sub(toWorld.A.Position).
					Cross(toWorld.C.Position.Sub(toWorld.A.Position)).Normalize()
				if normal.Dot(toWorld.A.Position.Sub(camera.Position)) >= 0 {
					continue // back-facing
				}

				if err := p.drawClipped(toWorld, view, projViewport, canvasW, canvasH, texture, camera.Projection.Near, camera.Projection.Far); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (p *Pipeline) drawClipped(toWorld render.Triangle, view, projViewport math3d.Mat4, canvasW, canvasH float32, texture *render.Image, near, far float32) error {
	viewSpace := toWorld.Transform(view)

	nearClipped := render.ClipAgainstPlane(math3d.V3(0, 0, near), math3d.V3(0, 0, 1), viewSpace)

	var triangles [maxClipTriangles]render.Triangle
	count := 0

	for n := 0; n < nearClipped.Count; n++ {
		farClipped := render.ClipAgainstPlane(math3d.V3(0, 0, far), math3d.V3(0, 0, -1), nearClipped.Triangles[n])
		for m := 0; m < farClipped.Count; m++ {
			if count >= maxClipTriangles {
				return fmt.Errorf("near/far clip: %w", rerr.ErrClipOverflow)
			}
			triangles[count] = farClipped.Triangles[m].Transform(projViewport)
			count++
		}
	}

	// Clip against the four screen edges in sequence, compacting
	// survivors back into the same scratch array.
	planes := [4]struct {
		p, n math3d.Vec3
	}{
		{math3d.V3(0, 0, 0), math3d.V3(0, 1, 0)},
		{math3d.V3(0, canvasH, 0), math3d.V3(0, -1, 0)},
		{math3d.V3(0, 0, 0), math3d.V3(1, 0, 0)},
		{math3d.V3(canvasW, 0, 0), math3d.V3(-1, 0, 0)},
	}

	for _, plane := range planes {
		newCount := 0
		var next [maxClipTriangles]render.Triangle
		for i := 0; i < count; i++ {
			res := render.ClipAgainstPlane(plane.p, plane.n, triangles[i])
			for n := 0; n < res.Count; n++ {
				if newCount >= maxClipTriangles {
					return fmt.Errorf("screen-edge clip: %w", rerr.ErrClipOverflow)
				}
				next[newCount] = res.Triangles[n]
				newCount++
			}
		}
		triangles = next
		count = newCount
	}

	for i := 0; i < count; i++ {
		if p.Wireframe {
			p.fb.DrawTriangle(triangles[i])
		} else {
			p.fb.DrawTexturedTriangle(triangles[i], texture)
		}
	}
	return nil
}
