package models

import (
	"github.com/google/uuid"

	"github.com/taigrr/rasterkit/pkg/math3d"
	"github.com/taigrr/rasterkit/pkg/render"
)

// Object3D is a positioned, oriented collection of meshes, each with
// its own diffuse texture and bounding box, exactly as the pipeline's
// per-object draw call expects.
type Object3D struct {
	ID uuid.UUID

	Meshes          []*Mesh
	DiffuseTextures []*render.Image
	CollisionBoxes  []render.AABB

	Position math3d.Vec3
	Rotation math3d.Vec3 // x, y, z degrees
	Scale    math3d.Vec3
}

// NewObject3D creates an identity-transformed object with no meshes.
func NewObject3D() *Object3D {
	return &Object3D{
		ID:    uuid.New(),
		Scale: math3d.V3(1, 1, 1),
	}
}

// AddMesh appends a mesh with its diffuse texture, computing and
// storing the mesh's local-space AABB as its collision box.
func (o *Object3D) AddMesh(mesh *Mesh, texture *render.Image) {
	mesh.CalculateBounds()
	o.Meshes = append(o.Meshes, mesh)
	o.DiffuseTextures = append(o.DiffuseTextures, texture)
	o.CollisionBoxes = append(o.CollisionBoxes, mesh.Bounds())
}

// WorldMatrix builds the object's scale*rotate*translate world matrix.
func (o *Object3D) WorldMatrix() math3d.Mat4 {
	return math3d.SRT(
		math3d.Scale(o.Scale.X, o.Scale.Y, o.Scale.Z),
		math3d.Rotate(o.Rotation.Z, o.Rotation.Y, o.Rotation.X),
		math3d.Translate(o.Position.X, o.Position.Y, o.Position.Z),
	)
}

// WorldBounds returns the union of each mesh's AABB after being
// carried through the object's world matrix, useful for a
// frustum-culling pre-pass.
func (o *Object3D) WorldBounds() render.AABB {
	world := o.WorldMatrix()
	if len(o.CollisionBoxes) == 0 {
		return render.AABB{}
	}
	box := o.CollisionBoxes[0].Transform(world)
	for _, b := range o.CollisionBoxes[1:] {
		tb := b.Transform(world)
		box.Min = box.Min.Min(tb.Min)
		box.Max = box.Max.Max(tb.Max)
	}
	return box
}
