package cvboot

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMeshCounts(t *testing.T) {
	m := BuildMesh(DefaultParams())

	assert.Len(t, m.Vertices, 2*200*80)
	assert.Len(t, m.Indices, 3*(2*199*80*2+2*80*2))
	assert.Equal(t, DefaultResolution.VertexCount(), len(m.Vertices))
	assert.Equal(t, DefaultResolution.IndexCount(), len(m.Indices))
	assert.Equal(t, len(m.Indices)/3, m.TriangleCount())
	assert.Len(t, m.OuterRings, 200)
	assert.Len(t, m.InnerRings, 200)
}

func TestBuildMeshResolutionMinimum(t *testing.T) {
	m := BuildMeshWithResolution(DefaultParams(), Resolution{NZ: 0, NTheta: 1})

	assert.Len(t, m.Vertices, 2*2*3)
	assert.Len(t, m.Indices, Resolution{NZ: 2, NTheta: 3}.IndexCount())
}

func TestBuildMeshVertexLayout(t *testing.T) {
	p := DefaultParams()
	res := Resolution{NZ: 7, NTheta: 8}
	m := BuildMeshWithResolution(p, res)
	samples := SampleProfile(p, res)

	for i, s := range samples {
		for j := 0; j < res.NTheta; j++ {
			// outer and inner alternate around each ring
			o, in := m.OuterRings[i][j], m.InnerRings[i][j]
			assert.Equal(t, uint32(2*(i*res.NTheta+j)), o)
			assert.Equal(t, o+1, in)

			theta := 2 * math.Pi * float64(j) / float64(res.NTheta)
			want := mgl32.Vec3{
				float32(s.Outer * math.Cos(theta)),
				float32(s.Height),
				float32(s.Outer * math.Sin(theta)),
			}
			assert.True(t, m.Vertices[o].ApproxEqualThreshold(want, 1e-4), "outer %d/%d: %v != %v", i, j, m.Vertices[o], want)

			got := m.Vertices[in]
			assert.InDelta(t, s.Inner, math.Hypot(float64(got[0]), float64(got[2])), 1e-4)
			assert.InDelta(t, s.Height, float64(got[1]), 1e-4)
		}
	}
}

func TestBuildMeshEndRings(t *testing.T) {
	p := DefaultParams()
	m := BuildMesh(p)
	last := DefaultResolution.NZ - 1

	// cup end sits on y=0, shaft end at y=BootLength
	cupOuter := m.Vertices[m.OuterRings[last][0]]
	cupInner := m.Vertices[m.InnerRings[last][0]]
	assert.InDelta(t, 0, cupOuter[1], 1e-4)
	assert.InDelta(t, 54.025, cupOuter[0], 1e-4)
	assert.InDelta(t, 47.025, cupInner[0], 1e-4)

	shaftOuter := m.Vertices[m.OuterRings[0][0]]
	shaftInner := m.Vertices[m.InnerRings[0][0]]
	assert.InDelta(t, p.BootLength, shaftOuter[1], 1e-4)
	assert.InDelta(t, 10.25, shaftOuter[0], 1e-4)
	assert.InDelta(t, 4.75, shaftInner[0], 1e-4)
}

type edge [2]uint32

func directedEdges(indices []uint32) map[edge]int {
	edges := make(map[edge]int)
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		edges[edge{a, b}]++
		edges[edge{b, c}]++
		edges[edge{c, a}]++
	}
	return edges
}

// Every edge is shared by exactly two triangles which traverse it in
// opposite directions, so the shell is closed and consistently wound.
func assertClosedShell(t *testing.T, m *Mesh) {
	t.Helper()
	edges := directedEdges(m.Indices)
	for e, n := range edges {
		if !assert.Equal(t, 1, n, "edge %v used %d times in one direction", e, n) {
			return
		}
		if !assert.Equal(t, 1, edges[edge{e[1], e[0]}], "edge %v has no opposite", e) {
			return
		}
	}
}

func TestBuildMeshClosedShell(t *testing.T) {
	zeroMid := DefaultParams()
	zeroMid.FlatSmallLen = 60
	zeroMid.FlatBigLen = 60

	testCases := []struct {
		name string
		p    Params
		res  Resolution
	}{
		{"default", DefaultParams(), DefaultResolution},
		{"coarse", DefaultParams(), Resolution{NZ: 4, NTheta: 5}},
		{"minimum", DefaultParams(), Resolution{NZ: 2, NTheta: 3}},
		{"zero midsection", zeroMid, Resolution{NZ: 30, NTheta: 12}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assertClosedShell(t, BuildMeshWithResolution(tc.p, tc.res))
		})
	}
}

func TestBuildMeshDegenerateInputs(t *testing.T) {
	zeroMid := DefaultParams()
	zeroMid.NRibs = 1
	zeroMid.RibAmp = 0
	zeroMid.FlatSmallLen = 40
	zeroMid.FlatBigLen = zeroMid.BootLength - zeroMid.FlatSmallLen

	overlapping := DefaultParams()
	overlapping.FlatSmallLen = 100
	overlapping.FlatBigLen = 100

	noRibs := DefaultParams()
	noRibs.NRibs = 0

	for name, p := range map[string]Params{
		"zero midsection":     zeroMid,
		"overlapping clamps":  overlapping,
		"zero rib count":      noRibs,
		"all zero":            {},
		"negative dimensions": {BootLength: -10, ShaftD: -5, CupD: -50, WallThickness: -1, NRibs: 3},
	} {
		t.Run(name, func(t *testing.T) {
			m := BuildMesh(p)
			require.Len(t, m.Vertices, DefaultResolution.VertexCount())
			require.Len(t, m.Indices, DefaultResolution.IndexCount())
			for i, v := range m.Vertices {
				for _, c := range v {
					if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
						t.Fatalf("vertex %d is not finite: %v", i, v)
					}
				}
			}
		})
	}
}

func TestBuildMeshIndicesInRange(t *testing.T) {
	m := BuildMeshWithResolution(DefaultParams(), Resolution{NZ: 10, NTheta: 6})
	for i, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices), "index %d", i)
	}
}

func TestBuildMeshWindingOrder(t *testing.T) {
	res := Resolution{NZ: 3, NTheta: 4}
	m := BuildMeshWithResolution(DefaultParams(), res)
	o, in := m.OuterRings, m.InnerRings

	// first quad: outer skin then bore
	assert.Equal(t, []uint32{
		o[0][0], o[1][0], o[1][1],
		o[0][0], o[1][1], o[0][1],
		in[0][0], in[1][1], in[1][0],
		in[0][0], in[0][1], in[1][1],
	}, m.Indices[:12])

	// caps follow the lateral triangles
	caps := m.Indices[3*2*(res.NZ-1)*res.NTheta*2:]
	last := res.NZ - 1
	assert.Equal(t, []uint32{
		o[0][0], in[0][1], in[0][0],
		o[0][0], o[0][1], in[0][1],
		o[last][0], in[last][0], in[last][1],
		o[last][0], in[last][1], o[last][1],
	}, caps[:12])
}

func TestFlipWindingPointsOuterSkinAwayFromAxis(t *testing.T) {
	m := BuildMeshWithResolution(DefaultParams(), Resolution{NZ: 10, NTheta: 16})
	flipped := m.FlipWinding()

	require.Equal(t, len(m.Indices), len(flipped.Indices))
	assertClosedShell(t, flipped)

	// triangle 0 lies on the outer skin at theta=0, facing -X as built
	tri := m.Triangle(0)
	assert.Less(t, FacetNormal(tri[0], tri[1], tri[2]).X(), 0.0)

	tri = flipped.Triangle(0)
	assert.Greater(t, FacetNormal(tri[0], tri[1], tri[2]).X(), 0.0)

	// m keeps its own index buffer
	assert.Equal(t, m.OuterRings[1][0], m.Indices[1])
}
