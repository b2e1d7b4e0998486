package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taigrr/rasterkit/pkg/math3d"
)

func TestClipAgainstPlaneAllInside(t *testing.T) {
	tri := Triangle{
		A: Vertex{Position: math3d.V3(0, 0, 1)},
		B: Vertex{Position: math3d.V3(1, 0, 1)},
		C: Vertex{Position: math3d.V3(0, 1, 1)},
	}
	res := ClipAgainstPlane(math3d.V3(0, 0, 0), math3d.V3(0, 0, 1), tri)
	require.Equal(t, 1, res.Count)
	require.Equal(t, tri, res.Triangles[0])
}

func TestClipAgainstPlaneAllOutside(t *testing.T) {
	tri := Triangle{
		A: Vertex{Position: math3d.V3(0, 0, -1)},
		B: Vertex{Position: math3d.V3(1, 0, -1)},
		C: Vertex{Position: math3d.V3(0, 1, -1)},
	}
	res := ClipAgainstPlane(math3d.V3(0, 0, 0), math3d.V3(0, 0, 1), tri)
	require.Equal(t, 0, res.Count)
}

func TestClipAgainstPlaneOneInside(t *testing.T) {
	tri := Triangle{
		A: Vertex{Position: math3d.V3(0, 0, 1), UV: math3d.V2(0, 0)},
		B: Vertex{Position: math3d.V3(1, 0, -1), UV: math3d.V2(1, 0)},
		C: Vertex{Position: math3d.V3(0, 1, -1), UV: math3d.V2(0, 1)},
	}
	res := ClipAgainstPlane(math3d.V3(0, 0, 0), math3d.V3(0, 0, 1), tri)
	require.Equal(t, 1, res.Count)
	require.InDelta(t, 1.0, res.Triangles[0].A.Position.Z, 1e-5)
	require.InDelta(t, 0.0, res.Triangles[0].B.Position.Z, 1e-5)
	require.InDelta(t, 0.0, res.Triangles[0].C.Position.Z, 1e-5)
}

func TestClipAgainstPlaneTwoInside(t *testing.T) {
	tri := Triangle{
		A: Vertex{Position: math3d.V3(0, 0, 1)},
		B: Vertex{Position: math3d.V3(1, 0, 1)},
		C: Vertex{Position: math3d.V3(0, 1, -1)},
	}
	res := ClipAgainstPlane(math3d.V3(0, 0, 0), math3d.V3(0, 0, 1), tri)
	require.Equal(t, 2, res.Count)
	for _, out := range res.Triangles[:res.Count] {
		require.GreaterOrEqual(t, out.A.Position.Z, float32(-1e-5))
		require.GreaterOrEqual(t, out.B.Position.Z, float32(-1e-5))
		require.GreaterOrEqual(t, out.C.Position.Z, float32(-1e-5))
	}
}

func TestIntersectPlaneMidpoint(t *testing.T) {
	t1 := intersectPlane(math3d.V3(0, 0, 0), math3d.V3(0, 0, 1), math3d.V3(0, 0, -1), math3d.V3(0, 0, 1))
	require.InDelta(t, 0.5, t1, 1e-5)
}
