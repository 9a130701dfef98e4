package cvboot

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// DefaultSolidName is the solid name used when none is given.
const DefaultSolidName = "cv_boot"

// ErrIndexOutOfRange is returned when a triangle refers to a missing vertex.
var ErrIndexOutOfRange = errors.New("vertex index out of range")

// facet is one triangle ready for output.
type facet struct {
	Normal mgl64.Vec3
	V      [3]mgl32.Vec3
}

// eachFacet calls fn for every complete triangle of the index buffer. A
// trailing partial triangle is ignored.
func eachFacet(vertices []mgl32.Vec3, indices []uint32, fn func(f facet) error) error {
	for i := 0; i+2 < len(indices); i += 3 {
		var f facet
		for k := 0; k < 3; k++ {
			idx := indices[i+k]
			if int(idx) >= len(vertices) {
				return fmt.Errorf("triangle %d: %w: %d >= %d", i/3, ErrIndexOutOfRange, idx, len(vertices))
			}
			f.V[k] = vertices[idx]
		}
		f.Normal = FacetNormal(f.V[0], f.V[1], f.V[2])
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// exp formats v with six fractional digits in exponent form. Adding zero
// turns -0 into 0.
func exp(v float64) string {
	return fmt.Sprintf("%.6e", v+0)
}

// WriteTriangles writes vertices and indices as an ASCII STL solid. The
// winding is written exactly as given.
func WriteTriangles(w io.Writer, vertices []mgl32.Vec3, indices []uint32, name string) error {
	if name == "" {
		name = DefaultSolidName
	}
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintf(writer, "solid %s\n", name)
	err := eachFacet(vertices, indices, func(f facet) error {
		_, _ = fmt.Fprintf(writer, "  facet normal %s %s %s\n", exp(f.Normal[0]), exp(f.Normal[1]), exp(f.Normal[2]))
		_, _ = fmt.Fprintln(writer, "    outer loop")
		for _, v := range f.V {
			_, _ = fmt.Fprintf(writer, "      vertex %s %s %s\n",
				exp(float64(v[0])), exp(float64(v[1])), exp(float64(v[2])))
		}
		_, _ = fmt.Fprintln(writer, "    endloop")
		_, err := fmt.Fprintln(writer, "  endfacet")
		return err
	})
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(writer, "endsolid %s\n", name)

	return writer.Flush()
}

// WriteASCII writes m as an ASCII STL solid.
func WriteASCII(w io.Writer, m *Mesh, name string) error {
	return WriteTriangles(w, m.Vertices, m.Indices, name)
}

// MarshalASCII returns m as ASCII STL text.
func MarshalASCII(m *Mesh, name string) (string, error) {
	var sb strings.Builder
	if err := WriteASCII(&sb, m, name); err != nil {
		return "", err
	}
	return sb.String(), nil
}

const binaryHeaderSize = 80

// binaryTri is the 50 byte record of a binary STL file.
type binaryTri struct {
	N, V1, V2, V3 [3]float32
	_             uint16 // attribute byte count, unused
}

// WriteBinary writes m as a binary STL file. header is truncated to 80 bytes.
func WriteBinary(w io.Writer, m *Mesh, header string) error {
	writer := bufio.NewWriter(w)

	var head [binaryHeaderSize]byte
	copy(head[:], header)
	if _, err := writer.Write(head[:]); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}
	if err := binary.Write(writer, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return fmt.Errorf("error writing triangle count: %w", err)
	}

	err := eachFacet(m.Vertices, m.Indices, func(f facet) error {
		t := binaryTri{
			N:  [3]float32{float32(f.Normal[0]), float32(f.Normal[1]), float32(f.Normal[2])},
			V1: f.V[0],
			V2: f.V[1],
			V3: f.V[2],
		}
		if err := binary.Write(writer, binary.LittleEndian, &t); err != nil {
			return fmt.Errorf("write triangle %#v: %w", t, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return writer.Flush()
}
