package math3d

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix of 32-bit floats in row-major storage: m[row][col].
// Vectors are row vectors post-multiplied through the matrix (v' = v * M),
// which is why translation lives in row 3 rather than column 3 — see
// Translate and ViewPortMatrix below.
type Mat4 [4][4]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate creates a translation matrix.
func Translate(x, y, z float32) Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{x, y, z, 1},
	}
}

// Scale creates a scaling matrix.
func Scale(x, y, z float32) Mat4 {
	return Mat4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// RotateX creates a rotation matrix around the X axis, angle in degrees,
// built from the trig LUT.
func RotateX(angleDeg float32) Mat4 {
	c, s := lookupCosine(angleDeg), lookupSine(angleDeg)
	out := Identity()
	out[1][1] = c
	out[1][2] = s
	out[2][1] = -s
	out[2][2] = c
	return out
}

// RotateY creates a rotation matrix around the Y axis, angle in degrees.
func RotateY(angleDeg float32) Mat4 {
	c, s := lookupCosine(angleDeg), lookupSine(angleDeg)
	out := Identity()
	out[0][0] = c
	out[0][2] = s
	out[2][0] = -s
	out[2][2] = c
	return out
}

// RotateZ creates a rotation matrix around the Z axis, angle in degrees.
func RotateZ(angleDeg float32) Mat4 {
	c, s := lookupCosine(angleDeg), lookupSine(angleDeg)
	out := Identity()
	out[0][0] = c
	out[0][1] = s
	out[1][0] = -s
	out[1][1] = c
	return out
}

// Rotate builds the composed Z*Y*X rotation (yaw around Z, pitch around
// Y, roll around X) as a single closed form, all angles in degrees.
func Rotate(yawZ, pitchY, rollX float32) Mat4 {
	sa, sb, sg := lookupSine(yawZ), lookupSine(pitchY), lookupSine(rollX)
	ca, cb, cg := lookupCosine(yawZ), lookupCosine(pitchY), lookupCosine(rollX)

	return Mat4{
		{cb * cg, -(sa*sb*cg - ca*sg), ca*sb*cg + sa*sg, 0},
		{-(cb * sg), sa*sb*sg + ca*cg, -(ca*sb*sg - sa*cg), 0},
		{-sb, -(sa * cb), ca * cb, 0},
		{0, 0, 0, 1},
	}
}

// SRT composes scale, rotation, translation in that order: S * R * T,
// consistent with row-vector post-multiplication.
func SRT(scale, rotation, translate Mat4) Mat4 {
	return scale.Mul(rotation).Mul(translate)
}

// ProjectionMatrix builds a left-handed, post-multiplied, normalized-depth
// projection matrix producing homogeneous coordinates whose w = z.
func ProjectionMatrix(screenWidth, screenHeight int, fovDeg, near, far float32) Mat4 {
	aspect := float32(screenHeight) / float32(screenWidth)
	f := 1.0 / math32.Tan(fovDeg*0.5*math32.Pi/180)

	out := Mat4{}
	out[0][0] = aspect * f
	out[1][1] = f
	out[2][2] = far / (far - near)
	out[3][2] = (-far * near) / (far - near)
	out[2][3] = 1
	out[3][3] = 0
	return out
}

// PointAt builds an object-to-world camera basis looking from pos towards
// target, with the given up hint. The view matrix used by rendering is
// PointAt(...).Inverse().
func PointAt(pos, target, up Vec3) Mat4 {
	forward := target.Sub(pos).Normalize()
	upPrime := up.Sub(forward.Scale(up.Dot(forward))).Normalize()
	right := upPrime.Cross(forward)

	return Mat4{
		{right.X, right.Y, right.Z, 0},
		{upPrime.X, upPrime.Y, upPrime.Z, 0},
		{forward.X, forward.Y, forward.Z, 0},
		{pos.X, pos.Y, pos.Z, 1},
	}
}

// ViewPortMatrix maps NDC into canvas pixel coordinates, flipping Y.
func ViewPortMatrix(width, height int) Mat4 {
	wd2 := float32(width / 2)
	hd2 := float32(height / 2)
	return Mat4{
		{wd2, 0, 0, 0},
		{0, -hd2, 0, 0},
		{0, 0, 1, 0},
		{wd2, hd2, 0, 1},
	}
}

// Mul multiplies two matrices: a * b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r][c] = a[r][0]*b[0][c] + a[r][1]*b[1][c] + a[r][2]*b[2][c] + a[r][3]*b[3][c]
		}
	}
	return out
}

// MulVec3 transforms a Vec3 as a point (w=1), applying the perspective
// divide when the resulting w != 0.
func (m Mat4) MulVec3(in Vec3) Vec3 {
	x := in.X*m[0][0] + in.Y*m[1][0] + in.Z*m[2][0] + m[3][0]
	y := in.X*m[0][1] + in.Y*m[1][1] + in.Z*m[2][1] + m[3][1]
	z := in.X*m[0][2] + in.Y*m[1][2] + in.Z*m[2][2] + m[3][2]
	w := in.X*m[0][3] + in.Y*m[1][3] + in.Z*m[2][3] + m[3][3]

	if w != 0 {
		x /= w
		y /= w
		z /= w
	}
	return Vec3{x, y, z}
}

// MulVec3Dir transforms a Vec3 as a direction (w=0, no translation, no
// perspective divide).
func (m Mat4) MulVec3Dir(in Vec3) Vec3 {
	return Vec3{
		in.X*m[0][0] + in.Y*m[1][0] + in.Z*m[2][0],
		in.X*m[0][1] + in.Y*m[1][1] + in.Z*m[2][1],
		in.X*m[0][2] + in.Y*m[1][2] + in.Z*m[2][2],
	}
}

// MulVec4 transforms a Vec4, applying the perspective divide to x,y,z
// when the resulting w != 0.
func (m Mat4) MulVec4(in Vec4) Vec4 {
	out := Vec4{
		in.X*m[0][0] + in.Y*m[1][0] + in.Z*m[2][0] + in.W*m[3][0],
		in.X*m[0][1] + in.Y*m[1][1] + in.Z*m[2][1] + in.W*m[3][1],
		in.X*m[0][2] + in.Y*m[1][2] + in.Z*m[2][2] + in.W*m[3][2],
		in.X*m[0][3] + in.Y*m[1][3] + in.Z*m[2][3] + in.W*m[3][3],
	}
	if out.W != 0 {
		out.X /= out.W
		out.Y /= out.W
		out.Z /= out.W
	}
	return out
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[c][r] = m[r][c]
		}
	}
	return out
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float32 {
	return m[row][col]
}

// Inverse returns the exact inverse of the matrix by cofactor expansion
// (Laplace). Invert assumes the matrix is invertible; a degenerate
// (singular) input produces an undefined but finite result rather than
// panicking or dividing cleanly by zero.
//
// The cofactor algebra below is easiest to state against a flat,
// column-major working copy (mirroring the classic closed-form layout);
// a is filled from m and the result is converted back to row-major on
// return, so the public contract stays m[row][col].
func (m Mat4) Inverse() Mat4 {
	a := [16]float32{
		m[0][0], m[1][0], m[2][0], m[3][0],
		m[0][1], m[1][1], m[2][1], m[3][1],
		m[0][2], m[1][2], m[2][2], m[3][2],
		m[0][3], m[1][3], m[2][3], m[3][3],
	}

	det := a[0]*(a[5]*(a[10]*a[15]-a[14]*a[11])-a[9]*(a[6]*a[15]-a[14]*a[7])+a[13]*(a[6]*a[11]-a[10]*a[7])) -
		a[4]*(a[1]*(a[10]*a[15]-a[14]*a[11])-a[9]*(a[2]*a[15]-a[14]*a[3])+a[13]*(a[2]*a[11]-a[10]*a[3])) +
		a[8]*(a[1]*(a[6]*a[15]-a[14]*a[7])-a[5]*(a[2]*a[15]-a[14]*a[3])+a[13]*(a[2]*a[7]-a[6]*a[3])) -
		a[12]*(a[1]*(a[6]*a[11]-a[10]*a[7])-a[5]*(a[2]*a[11]-a[10]*a[3])+a[9]*(a[2]*a[7]-a[6]*a[3]))

	if det == 0 {
		return Identity()
	}
	invDet := 1.0 / det

	var inv [16]float32
	inv[0] = (a[5]*(a[10]*a[15]-a[14]*a[11]) - a[9]*(a[6]*a[15]-a[14]*a[7]) + a[13]*(a[6]*a[11]-a[10]*a[7])) * invDet
	inv[1] = -(a[1]*(a[10]*a[15]-a[14]*a[11]) - a[9]*(a[2]*a[15]-a[14]*a[3]) + a[13]*(a[2]*a[11]-a[10]*a[3])) * invDet
	inv[2] = (a[1]*(a[6]*a[15]-a[14]*a[7]) - a[5]*(a[2]*a[15]-a[14]*a[3]) + a[13]*(a[2]*a[7]-a[6]*a[3])) * invDet
	inv[3] = -(a[1]*(a[6]*a[11]-a[10]*a[7]) - a[5]*(a[2]*a[11]-a[10]*a[3]) + a[9]*(a[2]*a[7]-a[6]*a[3])) * invDet

	inv[4] = -(a[4]*(a[10]*a[15]-a[14]*a[11]) - a[8]*(a[6]*a[15]-a[14]*a[7]) + a[12]*(a[6]*a[11]-a[10]*a[7])) * invDet
	inv[5] = (a[0]*(a[10]*a[15]-a[14]*a[11]) - a[8]*(a[2]*a[15]-a[14]*a[3]) + a[12]*(a[2]*a[11]-a[10]*a[3])) * invDet
	inv[6] = -(a[0]*(a[6]*a[15]-a[14]*a[7]) - a[4]*(a[2]*a[15]-a[14]*a[3]) + a[12]*(a[2]*a[7]-a[6]*a[3])) * invDet
	inv[7] = (a[0]*(a[6]*a[11]-a[10]*a[7]) - a[4]*(a[2]*a[11]-a[10]*a[3]) + a[8]*(a[2]*a[7]-a[6]*a[3])) * invDet

	inv[8] = (a[4]*(a[9]*a[15]-a[13]*a[11]) - a[8]*(a[5]*a[15]-a[13]*a[7]) + a[12]*(a[5]*a[11]-a[9]*a[7])) * invDet
	inv[9] = -(a[0]*(a[9]*a[15]-a[13]*a[11]) - a[8]*(a[1]*a[15]-a[13]*a[3]) + a[12]*(a[1]*a[11]-a[9]*a[3])) * invDet
	inv[10] = (a[0]*(a[5]*a[15]-a[13]*a[7]) - a[4]*(a[1]*a[15]-a[13]*a[3]) + a[12]*(a[1]*a[7]-a[5]*a[3])) * invDet
	inv[11] = -(a[0]*(a[5]*a[11]-a[9]*a[7]) - a[4]*(a[1]*a[11]-a[9]*a[3]) + a[8]*(a[1]*a[7]-a[5]*a[3])) * invDet

	inv[12] = -(a[4]*(a[9]*a[14]-a[13]*a[10]) - a[8]*(a[5]*a[14]-a[13]*a[6]) + a[12]*(a[5]*a[10]-a[9]*a[6])) * invDet
	inv[13] = (a[0]*(a[9]*a[14]-a[13]*a[10]) - a[8]*(a[1]*a[14]-a[13]*a[2]) + a[12]*(a[1]*a[10]-a[9]*a[2])) * invDet
	inv[14] = -(a[0]*(a[5]*a[14]-a[13]*a[6]) - a[4]*(a[1]*a[14]-a[13]*a[2]) + a[12]*(a[1]*a[6]-a[5]*a[2])) * invDet
	inv[15] = (a[0]*(a[5]*a[10]-a[9]*a[6]) - a[4]*(a[1]*a[10]-a[9]*a[2]) + a[8]*(a[1]*a[6]-a[5]*a[2])) * invDet

	var out Mat4
	for i := 0; i < 16; i++ {
		out[i%4][i/4] = inv[i]
	}
	return out
}
