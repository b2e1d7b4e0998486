package render

import (
	"testing"

	"github.com/taigrr/rasterkit/pkg/math3d"
)

func BenchmarkNewFrustumFromMatrix(b *testing.B) {
	proj := math3d.ProjectionMatrix(800, 600, 90, 0.1, 100)
	view := math3d.PointAt(math3d.Zero3(), math3d.Forward(), math3d.Up()).Inverse()
	m := view.Mul(proj)

	for b.Loop() {
		_ = NewFrustumFromMatrix(m)
	}
}

func BenchmarkFrustumIntersectAABB(b *testing.B) {
	proj := math3d.ProjectionMatrix(800, 600, 90, 0.1, 100)
	view := math3d.PointAt(math3d.Zero3(), math3d.Forward(), math3d.Up()).Inverse()
	f := NewFrustumFromMatrix(view.Mul(proj))
	box := AABB{Min: math3d.V3(-1, -1, 5), Max: math3d.V3(1, 1, 7)}

	for b.Loop() {
		_ = f.IntersectAABB(box)
	}
}

func BenchmarkAABBTransform(b *testing.B) {
	box := AABB{Min: math3d.V3(-1, -1, -1), Max: math3d.V3(1, 1, 1)}
	m := math3d.Translate(5, 0, 0).Mul(math3d.RotateY(30))

	for b.Loop() {
		_ = box.Transform(m)
	}
}
