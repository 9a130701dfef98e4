package cvboot

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Resolution is the sampling grid of a mesh.
type Resolution struct {
	NZ     int // axial samples
	NTheta int // angular samples per ring
}

// DefaultResolution gives smooth ribs at interactive build times. Raising it
// costs O(NZ*NTheta) in both time and memory.
var DefaultResolution = Resolution{NZ: 200, NTheta: 80}

func (r Resolution) normalize() Resolution {
	if r.NZ < 2 {
		r.NZ = 2
	}
	if r.NTheta < 3 {
		r.NTheta = 3
	}
	return r
}

// VertexCount is the number of positions a mesh at this resolution holds.
func (r Resolution) VertexCount() int {
	r = r.normalize()
	return 2 * r.NZ * r.NTheta
}

// IndexCount is the length of the triangle index buffer at this resolution:
// two lateral skins of (NZ-1)*NTheta quads plus two annular caps of NTheta
// quads, two triangles per quad.
func (r Resolution) IndexCount() int {
	r = r.normalize()
	return 3 * (2*(r.NZ-1)*r.NTheta*2 + 2*r.NTheta*2)
}

// Mesh is an indexed triangle list. Vertices of one axial sample are emitted
// outer, inner, outer, inner... around the ring; OuterRings and InnerRings
// record which indices belong to which ring.
type Mesh struct {
	Vertices []mgl32.Vec3
	Indices  []uint32

	OuterRings [][]uint32
	InnerRings [][]uint32
}

func newMesh(res Resolution) *Mesh {
	return &Mesh{
		Vertices:   make([]mgl32.Vec3, 0, res.VertexCount()),
		Indices:    make([]uint32, 0, res.IndexCount()),
		OuterRings: make([][]uint32, 0, res.NZ),
		InnerRings: make([][]uint32, 0, res.NZ),
	}
}

// AddPoint appends a vertex and returns its index. Unlike a welded mesh no
// lookup is done: coincident points keep their own index so buffer sizes
// depend only on the resolution.
func (m *Mesh) AddPoint(x, y, z float64) uint32 {
	m.Vertices = append(m.Vertices, mgl32.Vec3{float32(x), float32(y), float32(z)})
	return uint32(len(m.Vertices) - 1)
}

func (m *Mesh) addTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Triangle returns the three corners of triangle i.
func (m *Mesh) Triangle(i int) [3]mgl32.Vec3 {
	return [3]mgl32.Vec3{
		m.Vertices[m.Indices[3*i]],
		m.Vertices[m.Indices[3*i+1]],
		m.Vertices[m.Indices[3*i+2]],
	}
}

// FlipWinding returns a copy of m with every triangle reversed.
func (m *Mesh) FlipWinding() *Mesh {
	flipped := &Mesh{
		Vertices:   m.Vertices,
		Indices:    make([]uint32, len(m.Indices)),
		OuterRings: m.OuterRings,
		InnerRings: m.InnerRings,
	}
	copy(flipped.Indices, m.Indices)
	for i := 0; i+2 < len(flipped.Indices); i += 3 {
		flipped.Indices[i+1], flipped.Indices[i+2] = flipped.Indices[i+2], flipped.Indices[i+1]
	}
	return flipped
}

// BuildMesh builds the boot wall at DefaultResolution.
func BuildMesh(p Params) *Mesh {
	return BuildMeshWithResolution(p, DefaultResolution)
}

// BuildMeshWithResolution sweeps the radius profile of p around the Y axis
// and closes the wall with annular caps at both ends. It has no failure
// path: degenerate parameters give degenerate but complete buffers.
func BuildMeshWithResolution(p Params, res Resolution) *Mesh {
	res = res.normalize()
	pr := NewProfile(p)
	m := newMesh(res)

	cos := make([]float64, res.NTheta)
	sin := make([]float64, res.NTheta)
	for j := range cos {
		theta := 2 * math.Pi * float64(j) / float64(res.NTheta)
		cos[j], sin[j] = math.Cos(theta), math.Sin(theta)
	}

	for i := 0; i < res.NZ; i++ {
		s := pr.At(AxialPosition(p.BootLength, i, res.NZ))

		outer := make([]uint32, res.NTheta)
		inner := make([]uint32, res.NTheta)
		for j := range outer {
			outer[j] = m.AddPoint(s.Outer*cos[j], s.Height, s.Outer*sin[j])
			inner[j] = m.AddPoint(s.Inner*cos[j], s.Height, s.Inner*sin[j])
		}
		m.OuterRings = append(m.OuterRings, outer)
		m.InnerRings = append(m.InnerRings, inner)
	}

	for i := 0; i < res.NZ-1; i++ {
		o0, o1 := m.OuterRings[i], m.OuterRings[i+1]
		in0, in1 := m.InnerRings[i], m.InnerRings[i+1]
		for j := 0; j < res.NTheta; j++ {
			jNext := (j + 1) % res.NTheta

			m.addTriangle(o0[j], o1[j], o1[jNext])
			m.addTriangle(o0[j], o1[jNext], o0[jNext])

			// reversed so the bore faces the other way from the outer skin
			m.addTriangle(in0[j], in1[jNext], in1[j])
			m.addTriangle(in0[j], in0[jNext], in1[jNext])
		}
	}

	first, last := 0, res.NZ-1
	for j := 0; j < res.NTheta; j++ {
		jNext := (j + 1) % res.NTheta

		vo0, vo1 := m.OuterRings[first][j], m.OuterRings[first][jNext]
		vi0, vi1 := m.InnerRings[first][j], m.InnerRings[first][jNext]
		m.addTriangle(vo0, vi1, vi0)
		m.addTriangle(vo0, vo1, vi1)

		vo0, vo1 = m.OuterRings[last][j], m.OuterRings[last][jNext]
		vi0, vi1 = m.InnerRings[last][j], m.InnerRings[last][jNext]
		m.addTriangle(vo0, vi0, vi1)
		m.addTriangle(vo0, vi1, vo1)
	}

	Logger().Debug("built boot mesh",
		"nz", res.NZ, "ntheta", res.NTheta,
		"vertices", len(m.Vertices), "triangles", m.TriangleCount())
	return m
}
