package math3d

import (
	"math"
	"testing"
)

func closeF(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func matClose(a, b Mat4, eps float32) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if !closeF(a[r][c], b[r][c], eps) {
				return false
			}
		}
	}
	return true
}

func TestMat4IdentityMul(t *testing.T) {
	m := SRT(Scale(2, 3, 4), RotateY(37), Translate(1, -2, 5))
	id := Identity()

	if !matClose(m.Mul(id), m, 1e-5) {
		t.Errorf("M * Identity != M")
	}
	if !matClose(id.Mul(m), m, 1e-5) {
		t.Errorf("Identity * M != M")
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := SRT(Scale(2, 3, 4), RotateY(37), Translate(1, -2, 5))
	inv := m.Inverse()

	if !matClose(m.Mul(inv), Identity(), 1e-4) {
		t.Errorf("M * Invert(M) != Identity")
	}
}

func TestMat4TransposeTwice(t *testing.T) {
	m := Rotate(12, 34, 56)
	if !matClose(m.Transpose().Transpose(), m, 1e-6) {
		t.Errorf("Transposed(Transposed(M)) != M")
	}
}

func TestVec3CrossOrthogonal(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(-4, 0, 7)
	c := a.Cross(b)

	if !closeF(c.Dot(a), 0, 1e-5) {
		t.Errorf("cross(a,b).a = %v, want 0", c.Dot(a))
	}
	if !closeF(c.Dot(b), 0, 1e-5) {
		t.Errorf("cross(a,b).b = %v, want 0", c.Dot(b))
	}
}

func TestVec3NormalizeUnitLength(t *testing.T) {
	for _, v := range []Vec3{V3(3, 4, 0), V3(1, 1, 1), V3(-2, 5, -9)} {
		n := v.Normalize()
		if !closeF(n.Len(), 1, 1e-5) {
			t.Errorf("normalize(%v).Len() = %v, want 1", v, n.Len())
		}
	}
}

func TestTrigLUTAccuracy(t *testing.T) {
	for deg := -720; deg <= 720; deg++ {
		d := float32(deg)
		want := math32sincos(d)
		gotSin := lookupSine(d)
		gotCos := lookupCosine(d)
		if !closeF(gotSin, want.sin, 1e-3) {
			t.Errorf("lookupSine(%v) = %v, want %v", d, gotSin, want.sin)
		}
		if !closeF(gotCos, want.cos, 1e-3) {
			t.Errorf("lookupCosine(%v) = %v, want %v", d, gotCos, want.cos)
		}
	}
}

type sinCos struct{ sin, cos float32 }

func math32sincos(deg float32) sinCos {
	rad := float64(deg) * math.Pi / 180
	return sinCos{sin: float32(math.Sin(rad)), cos: float32(math.Cos(rad))}
}
