package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// twoTetMesh builds two tets sharing the face {1,2,3}
func twoTetMesh() *Mesh {
	m := NewMesh()
	m.AddVertex([]float64{0, 0, 0})
	m.AddVertex([]float64{1, 0, 0})
	m.AddVertex([]float64{0, 1, 0})
	m.AddVertex([]float64{0, 0, 1})
	m.AddVertex([]float64{1, 1, 1})
	m.AddElement(Tet, []int{0, 1, 2, 3}, 1)
	m.AddElement(Tet, []int{1, 2, 3, 4}, 1)
	return m
}

func TestBuildConnectivity(t *testing.T) {
	m := twoTetMesh()
	m.BuildConnectivity()

	// 4 faces per tet, one shared
	assert.Equal(t, 7, m.NumFaces)

	// Exactly one interior face pairing the two elements
	interior := 0
	for e := 0; e < m.NumElements; e++ {
		for _, nbr := range m.EToE[e] {
			if nbr >= 0 {
				interior++
			}
		}
	}
	assert.Equal(t, 2, interior) // seen once from each side
	assert.Contains(t, m.EToE[0], 1)
	assert.Contains(t, m.EToE[1], 0)
}

func TestElementFaces(t *testing.T) {
	verts := []int{10, 11, 12, 13, 14, 15, 16, 17}

	tet := ElementFaces(Tet, verts[:4])
	assert.Len(t, tet, 4)
	for _, f := range tet {
		assert.Len(t, f, 3)
	}

	hex := ElementFaces(Hex, verts)
	assert.Len(t, hex, 6)
	for _, f := range hex {
		assert.Len(t, f, 4)
	}

	pyr := ElementFaces(Pyramid, verts[:5])
	assert.Len(t, pyr, 5)
	assert.Len(t, pyr[0], 4) // base quad
	for _, f := range pyr[1:] {
		assert.Len(t, f, 3)
	}
}

func TestNumVerts(t *testing.T) {
	assert.Equal(t, 3, Triangle.NumVerts())
	assert.Equal(t, 4, Quad.NumVerts())
	assert.Equal(t, 4, Tet.NumVerts())
	assert.Equal(t, 5, Pyramid.NumVerts())
	assert.Equal(t, 8, Hex.NumVerts())
}

func TestScaleAndBoundingBox(t *testing.T) {
	m := twoTetMesh()
	m.Scale(0.001)
	lo, hi := m.BoundingBox()
	assert.Equal(t, [3]float64{0, 0, 0}, lo)
	assert.Equal(t, [3]float64{0.001, 0.001, 0.001}, hi)
}
