package render

import "github.com/taigrr/rasterkit/pkg/math3d"

// ClippedTriangle holds the 0, 1, or 2 triangles produced by clipping
// a single triangle against one plane.
type ClippedTriangle struct {
	Count     int
	Triangles [2]Triangle
}

// intersectPlane returns the parametric t along lineStart->lineEnd at
// which the segment crosses the plane (planeP, planeN). planeN must
// already be normalized.
func intersectPlane(planeP, planeN, lineStart, lineEnd math3d.Vec3) float32 {
	planeD := -planeN.Dot(planeP)
	ad := lineStart.Dot(planeN)
	bd := lineEnd.Dot(planeN)
	return (-planeD - ad) / (bd - ad)
}

// ClipAgainstPlane splits in against the half-space with boundary
// plane (planeP, planeN), keeping the side the normal planeN points
// into (signed distance >= 0). Produces 0 triangles if in lies entirely
// outside, 1 unchanged triangle if entirely inside, 1 triangle if a
// single vertex survives, or 2 triangles forming the surviving quad
// if two vertices survive.
func ClipAgainstPlane(planeP, planeN math3d.Vec3, in Triangle) ClippedTriangle {
	dist := func(p math3d.Vec3) float32 {
		return planeN.X*p.X + planeN.Y*p.Y + planeN.Z*p.Z - planeN.Dot(planeP)
	}

	var insidePoints, outsidePoints [3]*Vertex
	nInside, nOutside := 0, 0

	dA := dist(in.A.Position)
	dB := dist(in.B.Position)
	dC := dist(in.C.Position)

	classify := func(v *Vertex, d float32) {
		if d >= 0 {
			insidePoints[nInside] = v
			nInside++
		} else {
			outsidePoints[nOutside] = v
			nOutside++
		}
	}
	classify(&in.A, dA)
	classify(&in.B, dB)
	classify(&in.C, dC)

	switch {
	case nInside == 0:
		return ClippedTriangle{Count: 0}

	case nInside == 3:
		return ClippedTriangle{Count: 1, Triangles: [2]Triangle{in}}

	case nInside == 1 && nOutside == 2:
		var out Triangle
		out.A = *insidePoints[0]

		t := intersectPlane(planeP, planeN, insidePoints[0].Position, outsidePoints[0].Position)
		out.B = LerpVertex(*insidePoints[0], *outsidePoints[0], t)

		t = intersectPlane(planeP, planeN, insidePoints[0].Position, outsidePoints[1].Position)
		out.C = LerpVertex(*insidePoints[0], *outsidePoints[1], t)

		return ClippedTriangle{Count: 1, Triangles: [2]Triangle{out}}

	case nInside == 2 && nOutside == 1:
		var out1, out2 Triangle
		out1.A = *insidePoints[0]
		out1.B = *insidePoints[1]

		t := intersectPlane(planeP, planeN, insidePoints[0].Position, outsidePoints[0].Position)
		out1.C = LerpVertex(*insidePoints[0], *outsidePoints[0], t)

		out2.A = *insidePoints[1]
		out2.B = out1.C
		t = intersectPlane(planeP, planeN, insidePoints[1].Position, outsidePoints[0].Position)
		out2.C = LerpVertex(*insidePoints[1], *outsidePoints[0], t)

		return ClippedTriangle{Count: 2, Triangles: [2]Triangle{out1, out2}}
	}

	return ClippedTriangle{Count: 0}
}
