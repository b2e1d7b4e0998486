package render

import (
	"math"
	"testing"

	"github.com/taigrr/rasterkit/pkg/math3d"
)

func closeF(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestPlaneDistanceToPoint(t *testing.T) {
	plane := Plane{Normal: math3d.V3(0, 0, 1), D: 0}

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected float32
	}{
		{"origin", math3d.V3(0, 0, 0), 0},
		{"in front", math3d.V3(0, 0, 5), 5},
		{"behind", math3d.V3(0, 0, -3), -3},
		{"offset XY", math3d.V3(10, -5, 2), 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dist := plane.DistanceToPoint(tc.point)
			if !closeF(dist, tc.expected, 1e-5) {
				t.Errorf("got %v, want %v", dist, tc.expected)
			}
		})
	}
}

func TestFrustumIntersectAABB(t *testing.T) {
	proj := math3d.ProjectionMatrix(800, 600, 90, 0.1, 100)
	view := math3d.PointAt(math3d.Zero3(), math3d.Forward(), math3d.Up()).Inverse()
	f := NewFrustumFromMatrix(view.Mul(proj))

	inside := AABB{Min: math3d.V3(-1, -1, 5), Max: math3d.V3(1, 1, 7)}
	if !f.IntersectAABB(inside) {
		t.Errorf("box in front of camera should intersect frustum")
	}

	behind := AABB{Min: math3d.V3(-1, -1, -7), Max: math3d.V3(1, 1, -5)}
	if f.IntersectAABB(behind) {
		t.Errorf("box behind camera should not intersect frustum")
	}
}

func TestAABBTransform(t *testing.T) {
	box := AABB{Min: math3d.V3(-1, -1, -1), Max: math3d.V3(1, 1, 1)}
	moved := box.Transform(math3d.Translate(5, 0, 0))

	if !closeF(moved.Min.X, 4, 1e-5) || !closeF(moved.Max.X, 6, 1e-5) {
		t.Errorf("translated AABB = %+v, want shifted +5 on X", moved)
	}
}
