package render

import "github.com/taigrr/rasterkit/pkg/math3d"

// Projection holds the camera's perspective parameters.
type Projection struct {
	FovDeg float32
	Near   float32
	Far    float32
}

// Camera is a position, an Euler orientation in degrees, and the
// derived view matrix that UpdateViewMatrix must refresh once per
// frame before the pipeline consumes it.
type Camera struct {
	Position math3d.Vec3
	Rotation math3d.Vec3 // x=pitch, y=yaw, z=roll, degrees
	Scale    math3d.Vec3

	Projection Projection

	// Target, when non-nil, overrides Rotation: the camera always
	// looks at *Target instead of deriving lookingAt from rotationCached.
	Target *math3d.Vec3

	rotationCached math3d.Quaternion
	lookingAt      math3d.Vec3
	lastCameraMatrix math3d.Mat4
}

// NewCamera builds a camera at the origin with a 90 degree FOV and a
// 0.1..1000 clip range, matching the teacher renderer's defaults.
func NewCamera() *Camera {
	c := &Camera{
		Position: math3d.Zero3(),
		Rotation: math3d.Zero3(),
		Scale:    math3d.V3(1, 1, 1),
		Projection: Projection{
			FovDeg: 90,
			Near:   0.1,
			Far:    1000,
		},
	}
	c.UpdateViewMatrix()
	return c
}

// SetTarget makes the camera always look at target regardless of
// Rotation. Passing nil reverts to rotation-driven aiming.
func (c *Camera) SetTarget(target *math3d.Vec3) {
	c.Target = target
}

// UpdateViewMatrix clamps pitch to +/-89.9 degrees, wraps yaw and roll
// into [0,360), rebuilds the cached orientation quaternion, derives
// the look-at point, and refreshes the cached inverse camera matrix.
// Must be called once per frame before the pipeline transforms any
// geometry through this camera.
func (c *Camera) UpdateViewMatrix() {
	if c.Rotation.X > 89.9 {
		c.Rotation.X = 89.9
	}
	if c.Rotation.X < -89.9 {
		c.Rotation.X = -89.9
	}
	c.Rotation.Y = wrapDegrees(c.Rotation.Y)
	c.Rotation.Z = wrapDegrees(c.Rotation.Z)

	c.rotationCached = math3d.QuaternionFromEuler(c.Rotation.Z, c.Rotation.X, c.Rotation.Y)

	if c.Target != nil {
		c.lookingAt = *c.Target
	} else {
		forward := c.rotationCached.ToMatrix4x4().MulVec3Dir(math3d.Forward())
		c.lookingAt = c.Position.Add(forward)
	}

	c.lastCameraMatrix = math3d.PointAt(c.Position, c.lookingAt, math3d.Up()).Inverse()
}

func wrapDegrees(d float32) float32 {
	for d < 0 {
		d += 360
	}
	for d >= 360 {
		d -= 360
	}
	return d
}

// ViewMatrix returns the cached inverse camera matrix from the most
// recent UpdateViewMatrix call.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	return c.lastCameraMatrix
}

// ProjectionMatrix builds the camera's projection matrix for the
// given viewport dimensions.
func (c *Camera) ProjectionMatrix(screenWidth, screenHeight int) math3d.Mat4 {
	return math3d.ProjectionMatrix(screenWidth, screenHeight, c.Projection.FovDeg, c.Projection.Near, c.Projection.Far)
}

// Towards returns the unit vector from Position to the current
// look-at point.
func (c *Camera) Towards() math3d.Vec3 {
	return c.lookingAt.Sub(c.Position).Normalize()
}

// Forward returns the camera's local forward axis in world space.
func (c *Camera) Forward() math3d.Vec3 {
	return c.rotationCached.ToMatrix4x4().MulVec3Dir(math3d.Forward())
}

// Up returns the camera's local up axis in world space.
func (c *Camera) Up() math3d.Vec3 {
	return c.rotationCached.ToMatrix4x4().MulVec3Dir(math3d.Up())
}

// Left returns the camera's local left axis in world space.
func (c *Camera) Left() math3d.Vec3 {
	return c.rotationCached.ToMatrix4x4().MulVec3Dir(math3d.Right()).Negate()
}
