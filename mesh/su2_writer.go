package mesh

import (
	"bufio"
	"fmt"
	"os"
)

// su2TypeCode maps element and face types to the SU2 VTK-style type codes,
// matching https://su2code.github.io/docs_v7/Mesh-File/
func su2TypeCode(etype ElementType) int {
	switch etype {
	case Triangle:
		return 5
	case Quad:
		return 9
	case Tet:
		return 10
	case Hex:
		return 12
	case Prism:
		return 13
	case Pyramid:
		return 14
	default:
		return 0
	}
}

// WriteSU2 writes the mesh to an SU2 native format file. Patches become
// boundary markers. SU2 has no cell zone concept, so zones are not written.
func WriteSU2(m *Mesh, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)

	fmt.Fprintf(w, "NDIME= 3\n")

	fmt.Fprintf(w, "NELEM= %d\n", m.NumElements)
	for i := 0; i < m.NumElements; i++ {
		code := su2TypeCode(m.ElementTypes[i])
		if code == 0 {
			return fmt.Errorf("element %d has unsupported type %v", i, m.ElementTypes[i])
		}
		fmt.Fprintf(w, "%d", code)
		for _, v := range m.EtoV[i] {
			fmt.Fprintf(w, " %d", v)
		}
		fmt.Fprintf(w, " %d\n", i)
	}

	fmt.Fprintf(w, "NPOIN= %d\n", m.NumVertices)
	for i, v := range m.Vertices {
		fmt.Fprintf(w, "%.17g %.17g %.17g %d\n", v[0], v[1], v[2], i)
	}

	fmt.Fprintf(w, "NMARK= %d\n", len(m.Patches))
	for _, p := range m.Patches {
		fmt.Fprintf(w, "MARKER_TAG= %s\n", p.Name)
		fmt.Fprintf(w, "MARKER_ELEMS= %d\n", len(p.Faces))
		for _, f := range p.Faces {
			var code int
			switch len(f) {
			case 3:
				code = su2TypeCode(Triangle)
			case 4:
				code = su2TypeCode(Quad)
			default:
				return fmt.Errorf("patch %s has a face with %d vertices", p.Name, len(f))
			}
			fmt.Fprintf(w, "%d", code)
			for _, v := range f {
				fmt.Fprintf(w, " %d", v)
			}
			fmt.Fprintf(w, "\n")
		}
	}

	return w.Flush()
}
