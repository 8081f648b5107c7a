package nastran

import (
	"github.com/notargets/nastomesh/mesh"
)

// cell is one volumetric element: topology, dense vertex indices and the
// property ID it was tagged with
type cell struct {
	etype  mesh.ElementType
	verts  []int
	propID int
}

// boundaryFace is an ordered list of 3 or 4 dense vertex indices tagged with
// a property ID
type boundaryFace struct {
	verts  []int
	propID int
}

// geometryBuilder accumulates points, cells and boundary faces during the
// single pass over the deck. Cells and faces are kept in read order; the
// property groups hold indices into those lists and are created lazily, in
// first-reference order. It makes no output ordering decisions beyond that.
type geometryBuilder struct {
	points   [][]float64
	pointIDs []int
	remap    []int // sparse grid ID -> dense index, -1 when absent

	cells      []cell
	cellGroups map[int][]int // property ID -> cell indices
	cellOrder  []int         // property IDs in group creation order

	faces      []boundaryFace
	faceGroups map[int][]int // property ID -> face indices
	faceOrder  []int
}

func newGeometryBuilder() *geometryBuilder {
	return &geometryBuilder{
		cellGroups: make(map[int][]int),
		faceGroups: make(map[int][]int),
	}
}

// addPoint appends a point and binds its grid ID to the next dense index.
// The remap table grows on demand; a grid ID issued twice overwrites the
// earlier binding, leaving the earlier point in place but unreferenced.
func (g *geometryBuilder) addPoint(id int, xyz []float64) {
	for id >= len(g.remap) {
		grown := make([]int, 2*len(g.remap)+id+1)
		for i := range grown {
			grown[i] = -1
		}
		copy(grown, g.remap)
		g.remap = grown
	}
	g.remap[id] = len(g.points)
	g.points = append(g.points, xyz)
	g.pointIDs = append(g.pointIDs, id)
}

// lookup translates a sparse grid ID to its dense point index
func (g *geometryBuilder) lookup(id int) (int, bool) {
	if id < 0 || id >= len(g.remap) || g.remap[id] < 0 {
		return -1, false
	}
	return g.remap[id], true
}

func (g *geometryBuilder) addCell(propID int, etype mesh.ElementType, verts []int) {
	if _, ok := g.cellGroups[propID]; !ok {
		g.cellOrder = append(g.cellOrder, propID)
	}
	g.cellGroups[propID] = append(g.cellGroups[propID], len(g.cells))
	g.cells = append(g.cells, cell{etype: etype, verts: verts, propID: propID})
}

func (g *geometryBuilder) addFace(propID int, verts []int) {
	if _, ok := g.faceGroups[propID]; !ok {
		g.faceOrder = append(g.faceOrder, propID)
	}
	g.faceGroups[propID] = append(g.faceGroups[propID], len(g.faces))
	g.faces = append(g.faces, boundaryFace{verts: verts, propID: propID})
}
