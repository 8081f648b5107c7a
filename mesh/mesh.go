package mesh

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// ElementType represents different element types
type ElementType int

const (
	Triangle ElementType = iota
	Quad
	Tet
	Hex
	Prism
	Pyramid
)

func (e ElementType) String() string {
	return [...]string{"Triangle", "Quad", "Tet", "Hex", "Prism", "Pyramid"}[e]
}

// NumVerts returns the vertex count for the element type
func (e ElementType) NumVerts() int {
	return [...]int{3, 4, 4, 8, 6, 5}[e]
}

// Face represents a face of an element
type Face struct {
	Vertices []int // Sorted vertex indices
	Element  int   // Parent element
	LocalID  int   // Local face ID within element
}

// Patch is a named group of boundary faces. Each face is an ordered list of
// 3 or 4 vertex indices.
type Patch struct {
	Name  string
	Faces [][]int
}

// CellZone is a named group of elements, stored as element indices
type CellZone struct {
	Name  string
	Cells []int
}

// Mesh represents a complete unstructured mesh with all connectivity
type Mesh struct {
	// Geometry
	Vertices [][]float64 // Vertex coordinates [nvertices][3]

	// Element data
	EtoV         [][]int       // Element to vertex connectivity [nelems][nverts_per_elem]
	ElementTypes []ElementType // Element type for each element
	ElementTags  []int         // Physical group/tag for each element

	// Named groups
	Patches   []Patch
	CellZones []CellZone

	// Connectivity (built during initialization)
	EToE [][]int // Element to element connectivity [nelems][nfaces_per_elem]
	EToF [][]int // Element to face connectivity [nelems][nfaces_per_elem]

	// Face data
	Faces   []Face         // All unique faces in mesh
	FaceMap map[string]int // Map from sorted vertex string to face ID

	// Mesh statistics
	NumElements int
	NumVertices int
	NumFaces    int
}

// NewMesh creates a new empty mesh
func NewMesh() *Mesh {
	return &Mesh{
		FaceMap: make(map[string]int),
	}
}

// AddElement appends one element and keeps the counters in sync
func (m *Mesh) AddElement(etype ElementType, verts []int, tag int) {
	m.EtoV = append(m.EtoV, verts)
	m.ElementTypes = append(m.ElementTypes, etype)
	m.ElementTags = append(m.ElementTags, tag)
	m.NumElements = len(m.EtoV)
}

// AddVertex appends one vertex coordinate
func (m *Mesh) AddVertex(xyz []float64) {
	m.Vertices = append(m.Vertices, xyz)
	m.NumVertices = len(m.Vertices)
}

// Scale multiplies all vertex coordinates by factor, used for unit conversion
func (m *Mesh) Scale(factor float64) {
	for _, v := range m.Vertices {
		for i := range v {
			v[i] *= factor
		}
	}
}

// BuildConnectivity builds element-to-element and face connectivity
func (m *Mesh) BuildConnectivity() {
	m.EToE = make([][]int, m.NumElements)
	m.EToF = make([][]int, m.NumElements)

	// Build face connectivity
	for elemID := 0; elemID < m.NumElements; elemID++ {
		elemType := m.ElementTypes[elemID]
		vertices := m.EtoV[elemID]

		// Get faces for this element type
		faceVertices := ElementFaces(elemType, vertices)

		m.EToE[elemID] = make([]int, len(faceVertices))
		m.EToF[elemID] = make([]int, len(faceVertices))

		// Initialize to -1 (boundary)
		for i := range m.EToE[elemID] {
			m.EToE[elemID][i] = -1
			m.EToF[elemID][i] = -1
		}

		// Process each face
		for localFaceID, faceVerts := range faceVertices {
			// Create sorted vertex key for face
			sorted := make([]int, len(faceVerts))
			copy(sorted, faceVerts)
			sort.Ints(sorted)

			key := fmt.Sprintf("%v", sorted)

			if faceID, exists := m.FaceMap[key]; exists {
				// Face already exists - this is an interior face
				face := &m.Faces[faceID]
				neighborElem := face.Element
				neighborLocalID := face.LocalID

				// Set connectivity
				m.EToE[elemID][localFaceID] = neighborElem
				m.EToE[neighborElem][neighborLocalID] = elemID

				m.EToF[elemID][localFaceID] = faceID
				m.EToF[neighborElem][neighborLocalID] = faceID
			} else {
				// New face
				face := Face{
					Vertices: sorted,
					Element:  elemID,
					LocalID:  localFaceID,
				}

				faceID := len(m.Faces)
				m.Faces = append(m.Faces, face)
				m.FaceMap[key] = faceID
				m.EToF[elemID][localFaceID] = faceID
			}
		}
	}

	m.NumFaces = len(m.Faces)
}

// ElementFaces returns the face vertices for each element type
func ElementFaces(elemType ElementType, vertices []int) [][]int {
	switch elemType {
	case Tet:
		return [][]int{
			{vertices[0], vertices[2], vertices[1]}, // Face 0
			{vertices[0], vertices[1], vertices[3]}, // Face 1
			{vertices[1], vertices[2], vertices[3]}, // Face 2
			{vertices[0], vertices[3], vertices[2]}, // Face 3
		}
	case Hex:
		return [][]int{
			{vertices[0], vertices[3], vertices[2], vertices[1]}, // Face 0 (bottom)
			{vertices[4], vertices[5], vertices[6], vertices[7]}, // Face 1 (top)
			{vertices[0], vertices[1], vertices[5], vertices[4]}, // Face 2
			{vertices[1], vertices[2], vertices[6], vertices[5]}, // Face 3
			{vertices[2], vertices[3], vertices[7], vertices[6]}, // Face 4
			{vertices[3], vertices[0], vertices[4], vertices[7]}, // Face 5
		}
	case Prism:
		return [][]int{
			{vertices[0], vertices[2], vertices[1]},              // Face 0 (bottom tri)
			{vertices[3], vertices[4], vertices[5]},              // Face 1 (top tri)
			{vertices[0], vertices[1], vertices[4], vertices[3]}, // Face 2 (quad)
			{vertices[1], vertices[2], vertices[5], vertices[4]}, // Face 3 (quad)
			{vertices[2], vertices[0], vertices[3], vertices[5]}, // Face 4 (quad)
		}
	case Pyramid:
		return [][]int{
			{vertices[0], vertices[3], vertices[2], vertices[1]}, // Face 0 (base quad)
			{vertices[0], vertices[1], vertices[4]},              // Face 1 (tri)
			{vertices[1], vertices[2], vertices[4]},              // Face 2 (tri)
			{vertices[2], vertices[3], vertices[4]},              // Face 3 (tri)
			{vertices[3], vertices[0], vertices[4]},              // Face 4 (tri)
		}
	default:
		return [][]int{}
	}
}

// BoundingBox returns the min and max coordinates over all vertices
func (m *Mesh) BoundingBox() (lo, hi [3]float64) {
	if m.NumVertices == 0 {
		return
	}
	coord := make([]float64, m.NumVertices)
	for d := 0; d < 3; d++ {
		for i, v := range m.Vertices {
			coord[i] = v[d]
		}
		lo[d] = floats.Min(coord)
		hi[d] = floats.Max(coord)
	}
	return
}

// PrintStatistics prints mesh statistics
func (m *Mesh) PrintStatistics() {
	fmt.Printf("Mesh Statistics:\n")
	fmt.Printf("  Vertices: %d\n", m.NumVertices)
	fmt.Printf("  Elements: %d\n", m.NumElements)
	fmt.Printf("  Faces: %d\n", m.NumFaces)

	// Count element types
	typeCounts := make(map[ElementType]int)
	for _, t := range m.ElementTypes {
		typeCounts[t]++
	}

	fmt.Printf("  Element types:\n")
	for t, count := range typeCounts {
		fmt.Printf("    %s: %d\n", t, count)
	}

	// Count boundary faces
	boundaryFaces := 0
	for i := 0; i < m.NumElements; i++ {
		for _, neighbor := range m.EToE[i] {
			if neighbor < 0 {
				boundaryFaces++
			}
		}
	}
	patchFaces := 0
	for _, p := range m.Patches {
		patchFaces += len(p.Faces)
	}
	fmt.Printf("  Boundary faces: %d (%d covered by patches)\n", boundaryFaces, patchFaces)

	fmt.Printf("  Patches:\n")
	for _, p := range m.Patches {
		fmt.Printf("    %s: %d faces\n", p.Name, len(p.Faces))
	}
	fmt.Printf("  Cell zones:\n")
	for _, z := range m.CellZones {
		fmt.Printf("    %s: %d cells\n", z.Name, len(z.Cells))
	}

	if m.NumVertices > 0 {
		lo, hi := m.BoundingBox()
		fmt.Printf("Bounding Box:\nXMin/XMax = %5.3f, %5.3f\nYMin/YMax = %5.3f, %5.3f\nZMin/ZMax = %5.3f, %5.3f\n",
			lo[0], hi[0], lo[1], hi[1], lo[2], hi[2])
	}
}
