package math3d

import "github.com/chewxy/math32"

// Quaternion is (x, y, z, w), used by Camera to accumulate orientation
// from Euler angles without gimbal-locking the rotation builders.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionFromEuler builds a quaternion from roll, pitch, yaw degrees
// using the half-angle formula and the trig LUT.
func QuaternionFromEuler(roll, pitch, yaw float32) Quaternion {
	cy := lookupCosine(yaw * 0.5)
	cp := lookupCosine(pitch * 0.5)
	cr := lookupCosine(roll * 0.5)
	sy := lookupSine(yaw * 0.5)
	sp := lookupSine(pitch * 0.5)
	sr := lookupSine(roll * 0.5)

	return Quaternion{
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
		W: cr*cp*cy + sr*sp*sy,
	}
}

// RotateX returns q incrementally rotated around the local X axis by
// angleDegrees, via the half-angle formula.
func (q Quaternion) RotateX(angleDegrees float32) Quaternion {
	halfAngle := angleDegrees * math32.Pi / 180 * 0.5
	s, c := math32.Sin(halfAngle), math32.Cos(halfAngle)
	return Quaternion{
		X: c*q.X + s*q.W,
		Y: c*q.Y + s*q.Z,
		Z: c*q.Z - s*q.Y,
		W: c*q.W - s*q.X,
	}
}

// RotateY returns q incrementally rotated around the local Y axis by
// angleDegrees, via the half-angle formula.
func (q Quaternion) RotateY(angleDegrees float32) Quaternion {
	halfAngle := angleDegrees * math32.Pi / 180 * 0.5
	s, c := math32.Sin(halfAngle), math32.Cos(halfAngle)
	return Quaternion{
		X: c*q.X - s*q.Z,
		Y: c*q.Y + s*q.W,
		Z: c*q.Z + s*q.X,
		W: c*q.W - s*q.Y,
	}
}

// RotateZ returns q incrementally rotated around the local Z axis by
// angleDegrees, via the half-angle formula.
func (q Quaternion) RotateZ(angleDegrees float32) Quaternion {
	halfAngle := angleDegrees * math32.Pi / 180 * 0.5
	s, c := math32.Sin(halfAngle), math32.Cos(halfAngle)
	return Quaternion{
		X: c*q.X + s*q.Y,
		Y: c*q.Y - s*q.X,
		Z: c*q.Z + s*q.W,
		W: c*q.W - s*q.Z,
	}
}

// ToMatrix4x4 converts the quaternion to a rotation matrix.
func (q Quaternion) ToMatrix4x4() Mat4 {
	xx := q.X * q.X
	yy := q.Y * q.Y
	zz := q.Z * q.Z
	xy := q.X * q.Y
	xz := q.X * q.Z
	yz := q.Y * q.Z
	wx := q.W * q.X
	wy := q.W * q.Y
	wz := q.W * q.Z

	return Mat4{
		{1 - 2*(yy+zz), 2 * (xy + wz), 2 * (xz - wy), 0},
		{2 * (xy - wz), 1 - 2*(xx+zz), 2 * (yz + wx), 0},
		{2 * (xz + wy), 2 * (yz - wx), 1 - 2*(xx+yy), 0},
		{0, 0, 0, 1},
	}
}
