package render

import "github.com/taigrr/rasterkit/pkg/math3d"

// Vertex is the minimal attribute set the clipper and rasterizer
// operate on: position, normal, and texture coordinate.
type Vertex struct {
	Position math3d.Vec3
	Normal   math3d.Vec3
	UV       math3d.Vec2
}

// Transform applies mat to the vertex position, leaving normal and UV
// untouched (callers transform normals separately with MulVec3Dir).
func (v Vertex) Transform(mat math3d.Mat4) Vertex {
	return Vertex{Position: mat.MulVec3(v.Position), Normal: v.Normal, UV: v.UV}
}

// LerpVertex interpolates position and UV linearly and renormalizes
// the interpolated normal, matching the renderer's vertex lerp.
func LerpVertex(a, b Vertex, t float32) Vertex {
	return Vertex{
		Position: a.Position.Lerp(b.Position, t),
		Normal:   a.Normal.Lerp(b.Normal, t).Normalize(),
		UV:       a.UV.Lerp(b.UV, t),
	}
}

// Triangle is three vertices in winding order a, b, c.
type Triangle struct {
	A, B, C Vertex
}

// Transform applies mat to every vertex position in the triangle.
func (t Triangle) Transform(mat math3d.Mat4) Triangle {
	return Triangle{A: t.A.Transform(mat), B: t.B.Transform(mat), C: t.C.Transform(mat)}
}
