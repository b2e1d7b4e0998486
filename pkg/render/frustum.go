package render

import "github.com/taigrr/rasterkit/pkg/math3d"

// Plane is Ax+By+Cz+D=0, with (A,B,C) the normal and D the distance
// from the origin.
type Plane struct {
	Normal math3d.Vec3
	D      float32
}

func (p *Plane) normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1.0 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a
// point: positive is on the side the normal points to.
func (p Plane) DistanceToPoint(point math3d.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// Frustum is the 6 inward-facing planes of a view frustum, ordered
// left, right, bottom, top, near, far.
type Frustum struct {
	Planes [6]Plane
}

// NewFrustumFromMatrix extracts the frustum planes from a combined
// view*projection matrix via the Gribb/Hartmann method, adapted to
// this package's row-major, row-vector Mat4 ([row][col], v' = v*M):
// with row vectors the clip coordinates are dot products with the
// matrix columns, so the planes are built from columns.
func NewFrustumFromMatrix(m math3d.Mat4) Frustum {
	col := func(i int) math3d.Vec4 {
		return math3d.V4(m[0][i], m[1][i], m[2][i], m[3][i])
	}
	r0, r1, r2, r3 := col(0), col(1), col(2), col(3)

	build := func(a, b math3d.Vec4) Plane {
		v := a.Add(b)
		p := Plane{Normal: math3d.V3(v.X, v.Y, v.Z), D: v.W}
		p.normalize()
		return p
	}
	buildSub := func(a, b math3d.Vec4) Plane {
		return build(a, math3d.Vec4{X: -b.X, Y: -b.Y, Z: -b.Z, W: -b.W})
	}

	var f Frustum
	f.Planes[0] = build(r3, r0)    // left
	f.Planes[1] = buildSub(r3, r0) // right
	f.Planes[2] = build(r3, r1)    // bottom
	f.Planes[3] = buildSub(r3, r1) // top
	f.Planes[4] = build(r3, r2)    // near
	f.Planes[5] = buildSub(r3, r2) // far
	return f
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math3d.Vec3
}

// Transform returns the AABB bounding all 8 corners of box after
// being carried through m.
func (b AABB) Transform(m math3d.Mat4) AABB {
	corners := [8]math3d.Vec3{
		{X: b.Min.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Min.Z},
		{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Min.Y, Z: b.Max.Z},
		{X: b.Min.X, Y: b.Max.Y, Z: b.Max.Z},
		{X: b.Max.X, Y: b.Max.Y, Z: b.Max.Z},
	}

	newMin := m.MulVec3(corners[0])
	newMax := newMin
	for i := 1; i < 8; i++ {
		t := m.MulVec3(corners[i])
		newMin = newMin.Min(t)
		newMax = newMax.Max(t)
	}
	return AABB{Min: newMin, Max: newMax}
}

// IntersectAABB reports whether any part of box lies inside the
// frustum, using the positive-vertex rejection test.
func (f Frustum) IntersectAABB(box AABB) bool {
	for _, plane := range f.Planes {
		pVertex := math3d.V3(
			selectF(plane.Normal.X >= 0, box.Max.X, box.Min.X),
			selectF(plane.Normal.Y >= 0, box.Max.Y, box.Min.Y),
			selectF(plane.Normal.Z >= 0, box.Max.Z, box.Min.Z),
		)
		if plane.DistanceToPoint(pVertex) < 0 {
			return false
		}
	}
	return true
}

func selectF(cond bool, a, b float32) float32 {
	if cond {
		return a
	}
	return b
}
