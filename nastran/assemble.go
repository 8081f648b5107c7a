package nastran

import (
	"fmt"

	"github.com/notargets/nastomesh/mesh"
)

// assemble turns the accumulated property groups into the final mesh.
//
// Patches are emitted for property IDs with a non-empty face group, in group
// creation order; unnamed patches fall back to patch_<k> with k counting
// unnamed patches only. Zones are emitted for every property ID present in
// the cell group mapping, in creation order, regardless of member count.
// That asymmetry with patch emission (which filters empties) is a deliberate
// contract.
func (p *Parser) assemble() *mesh.Mesh {
	m := mesh.NewMesh()

	for _, xyz := range p.geom.points {
		m.AddVertex(xyz)
	}
	for _, c := range p.geom.cells {
		m.AddElement(c.etype, c.verts, c.propID)
	}

	unnamed := 0
	for _, propID := range p.geom.faceOrder {
		group := p.geom.faceGroups[propID]
		if len(group) == 0 {
			continue
		}
		name := p.props.name(propID)
		if name == "" {
			name = fmt.Sprintf("patch_%d", unnamed)
			unnamed++
		}
		faces := make([][]int, len(group))
		for i, fi := range group {
			faces[i] = p.geom.faces[fi].verts
		}
		m.Patches = append(m.Patches, mesh.Patch{Name: name, Faces: faces})
	}

	unnamed = 0
	for _, propID := range p.geom.cellOrder {
		name := p.props.name(propID)
		if name == "" {
			name = fmt.Sprintf("cellZone_%d", unnamed)
			unnamed++
		}
		group := p.geom.cellGroups[propID]
		cells := make([]int, len(group))
		copy(cells, group)
		m.CellZones = append(m.CellZones, mesh.CellZone{Name: name, Cells: cells})
	}

	return m
}
