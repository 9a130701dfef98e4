package cvboot

import (
	"bufio"
	"fmt"
	"io"
)

// WritePLY writes m as an ASCII PLY file with one triangle per face.
func WritePLY(w io.Writer, m *Mesh) error {
	writer := bufio.NewWriter(w)

	_, _ = fmt.Fprintln(writer, "ply")
	_, _ = fmt.Fprintln(writer, "format ascii 1.0")
	_, _ = fmt.Fprintln(writer, "comment Generated by cvboot")
	_, _ = fmt.Fprintf(writer, "element vertex %d\n", len(m.Vertices))
	_, _ = fmt.Fprintln(writer, "property float x")
	_, _ = fmt.Fprintln(writer, "property float y")
	_, _ = fmt.Fprintln(writer, "property float z")
	_, _ = fmt.Fprintf(writer, "element face %d\n", m.TriangleCount())
	_, _ = fmt.Fprintln(writer, "property list uchar uint vertex_indices")
	_, _ = fmt.Fprintln(writer, "end_header")

	for _, v := range m.Vertices {
		_, _ = fmt.Fprintf(writer, "%f %f %f\n", v[0], v[1], v[2])
	}

	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]
		if _, err := fmt.Fprintf(writer, "3 %d %d %d\n", a, b, c); err != nil {
			return err
		}
	}

	return writer.Flush()
}
