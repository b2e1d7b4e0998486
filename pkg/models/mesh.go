// Package models provides 3D mesh loading and representation.
package models

import (
	"github.com/taigrr/rasterkit/pkg/math3d"
	"github.com/taigrr/rasterkit/pkg/render"
)

// Mesh owns a vertex buffer and a flat triangle index buffer, three
// indices per triangle. A trailing partial triple (len(Indices)%3 != 0)
// is tolerated: TriangleCount simply ignores the remainder.
type Mesh struct {
	Name     string
	Vertices []render.Vertex
	Indices  []uint32

	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty, named mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// TriangleCount returns the number of complete index triples.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// Triangle returns the i'th triangle as resolved vertices.
func (m *Mesh) Triangle(i int) render.Triangle {
	base := i * 3
	return render.Triangle{
		A: m.Vertices[m.Indices[base]],
		B: m.Vertices[m.Indices[base+1]],
		C: m.Vertices[m.Indices[base+2]],
	}
}

// CalculateBounds computes the axis-aligned bounding box over all
// vertices.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		return
	}
	m.BoundsMin = m.Vertices[0].Position
	m.BoundsMax = m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v.Position)
		m.BoundsMax = m.BoundsMax.Max(v.Position)
	}
}

// Bounds returns the last computed AABB as a render.AABB.
func (m *Mesh) Bounds() render.AABB {
	return render.AABB{Min: m.BoundsMin, Max: m.BoundsMax}
}

// Center returns the midpoint of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// CalculateNormals assigns a flat face normal to every vertex of each
// triangle, overwriting any normal already present.
func (m *Mesh) CalculateNormals() {
	for i := 0; i < m.TriangleCount(); i++ {
		base := i * 3
		i0, i1, i2 := m.Indices[base], m.Indices[base+1], m.Indices[base+2]
		v0 := m.Vertices[i0].Position
		v1 := m.Vertices[i1].Position
		v2 := m.Vertices[i2].Position
		normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()
		m.Vertices[i0].Normal = normal
		m.Vertices[i1].Normal = normal
		m.Vertices[i2].Normal = normal
	}
}

// CalculateSmoothNormals accumulates face normals per vertex and
// renormalizes, producing shared smooth-shaded normals.
func (m *Mesh) CalculateSmoothNormals() {
	for i := range m.Vertices {
		m.Vertices[i].Normal = math3d.Zero3()
	}
	for i := 0; i < m.TriangleCount(); i++ {
		base := i * 3
		i0, i1, i2 := m.Indices[base], m.Indices[base+1], m.Indices[base+2]
		v0 := m.Vertices[i0].Position
		v1 := m.Vertices[i1].Position
		v2 := m.Vertices[i2].Position
		normal := v1.Sub(v0).Cross(v2.Sub(v0))
		m.Vertices[i0].Normal = m.Vertices[i0].Normal.Add(normal)
		m.Vertices[i1].Normal = m.Vertices[i1].Normal.Add(normal)
		m.Vertices[i2].Normal = m.Vertices[i2].Normal.Add(normal)
	}
	for i := range m.Vertices {
		m.Vertices[i].Normal = m.Vertices[i].Normal.Normalize()
	}
}

// Clone returns a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]render.Vertex, len(m.Vertices)),
		Indices:   make([]uint32, len(m.Indices)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Indices, m.Indices)
	return clone
}
