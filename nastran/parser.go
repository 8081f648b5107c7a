package nastran

import (
	"fmt"
	"io"
	"os"

	"github.com/notargets/nastomesh/mesh"
)

// Options control a single conversion pass
type Options struct {
	Format Format
	// DefaultNames ignores comment-derived patch and zone names and always
	// uses the generated fallback names
	DefaultNames bool
	Verbose      bool
}

type cardKind int

const (
	cardGrid cardKind = iota
	cardCell
	cardFace
	cardProperty
	cardEnd
)

type cardDef struct {
	kind     cardKind
	etype    mesh.ElementType // cell topology, cardCell only
	nverts   int              // vertex count, cardCell and cardFace
	propKind propertyKind     // cardProperty only
}

// cardTable is the closed set of supported keywords. Any keyword outside it
// is fatal.
var cardTable = map[string]cardDef{
	"GRID":    {kind: cardGrid},
	"CTETRA":  {kind: cardCell, etype: mesh.Tet, nverts: 4},
	"CPYRAM":  {kind: cardCell, etype: mesh.Pyramid, nverts: 5},
	"CHEXA":   {kind: cardCell, etype: mesh.Hex, nverts: 8},
	"CTRIA3":  {kind: cardFace, nverts: 3},
	"CQUAD4":  {kind: cardFace, nverts: 4},
	"PSOLID":  {kind: cardProperty, propKind: solidProperty},
	"PSHELL":  {kind: cardProperty, propKind: shellProperty},
	"ENDDATA": {kind: cardEnd},
}

// Parser holds the state of one pass over a deck
type Parser struct {
	lx    *lexer
	opts  Options
	geom  *geometryBuilder
	props *propertyTable

	keyword     string
	keywordLine int
}

// ReadBulkData opens and converts a NASTRAN bulk data file
func ReadBulkData(filename string, opts Options) (*mesh.Mesh, error) {
	if opts.Verbose {
		fmt.Printf("Reading NASTRAN bulk data file named: %s\n", filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to open file %s: %w", filename, err)
	}
	defer file.Close()
	return ParseBulkData(file, opts)
}

// ParseBulkData converts a NASTRAN bulk data deck read from r. The header up
// to the BEGIN BULK marker is skipped, then cards are consumed in a single
// forward pass until ENDDATA, and the accumulated geometry is assembled into
// a mesh.
func ParseBulkData(r io.Reader, opts Options) (*mesh.Mesh, error) {
	p := &Parser{
		lx:    newLexer(r, opts.Format),
		opts:  opts,
		geom:  newGeometryBuilder(),
		props: newPropertyTable(),
	}
	if err := p.lx.findBulk(); err != nil {
		return nil, err
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	if opts.Verbose {
		fmt.Printf("Finished reading file: %d points, %d cells, %d boundary faces\n",
			len(p.geom.points), len(p.geom.cells), len(p.geom.faces))
	}
	return p.assemble(), nil
}

func (p *Parser) run() error {
	for {
		if err := p.advance(); err != nil {
			return err
		}
		def, ok := cardTable[p.keyword]
		if !ok {
			return fmt.Errorf("cannot process keyword %q on line %d", p.keyword, p.keywordLine)
		}
		var err error
		switch def.kind {
		case cardGrid:
			err = p.readPoint()
		case cardCell:
			err = p.readCell(def)
		case cardFace:
			err = p.readFace(def)
		case cardProperty:
			err = p.readProperty(def)
		case cardEnd:
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (p *Parser) advance() error {
	kw, line, err := p.lx.nextKeyword()
	if err == io.EOF {
		return fmt.Errorf("unexpected end of file: missing ENDDATA")
	}
	if err != nil {
		return err
	}
	p.keyword, p.keywordLine = kw, line
	return nil
}

func (p *Parser) readInt() (int, error) {
	field, err := p.lx.nextField(p.lx.fieldWidth())
	if err != nil {
		return 0, err
	}
	n, err := parseInt(field)
	if err != nil {
		return 0, fmt.Errorf("bad integer field %q on line %d", field, p.lx.line)
	}
	return n, nil
}

func (p *Parser) readFloat() (float64, error) {
	field, err := p.lx.nextField(p.lx.fieldWidth())
	if err != nil {
		return 0, err
	}
	v, err := parseFloat(field)
	if err != nil {
		return 0, fmt.Errorf("bad float field %q on line %d", field, p.lx.line)
	}
	return v, nil
}

// skipField discards one field without decoding it, so blank fields pass
func (p *Parser) skipField() error {
	_, err := p.lx.nextField(p.lx.fieldWidth())
	return err
}

// readPoint handles a GRID card: point ID, ignored coordinate system, and
// the three coordinates
func (p *Parser) readPoint() error {
	id, err := p.readInt()
	if err != nil {
		return err
	}
	if err := p.skipField(); err != nil {
		return err
	}
	xyz := make([]float64, 3)
	for i := range xyz {
		if xyz[i], err = p.readFloat(); err != nil {
			return err
		}
	}
	p.geom.addPoint(id, xyz)
	return nil
}

// readVerts reads n grid IDs, translating each through the remap table
func (p *Parser) readVerts(n int) ([]int, error) {
	verts := make([]int, n)
	for i := range verts {
		id, err := p.readInt()
		if err != nil {
			return nil, err
		}
		dense, ok := p.geom.lookup(id)
		if !ok {
			return nil, fmt.Errorf("undefined grid point %d referenced on line %d", id, p.keywordLine)
		}
		verts[i] = dense
	}
	return verts, nil
}

// readCell handles CTETRA, CPYRAM and CHEXA cards: ignored element ID,
// property ID, then the topology's vertex IDs
func (p *Parser) readCell(def cardDef) error {
	if err := p.skipField(); err != nil {
		return err
	}
	propID, err := p.readInt()
	if err != nil {
		return err
	}
	verts, err := p.readVerts(def.nverts)
	if err != nil {
		return err
	}
	p.geom.addCell(propID, def.etype, verts)
	return nil
}

// readFace handles CTRIA3 and CQUAD4 cards, the boundary face analogue of
// readCell
func (p *Parser) readFace(def cardDef) error {
	if err := p.skipField(); err != nil {
		return err
	}
	propID, err := p.readInt()
	if err != nil {
		return err
	}
	verts, err := p.readVerts(def.nverts)
	if err != nil {
		return err
	}
	p.geom.addFace(propID, verts)
	return nil
}

// readProperty handles PSOLID and PSHELL cards. The property name is the
// last word of a comment on the line immediately preceding the card, unless
// name derivation is disabled.
func (p *Parser) readProperty(def cardDef) error {
	propID, err := p.readInt()
	if err != nil {
		return err
	}
	var name string
	if !p.opts.DefaultNames && p.lx.commentLine == p.keywordLine-1 {
		name = p.lx.commentWord
	}
	if err := p.props.insert(propID, def.propKind, name); err != nil {
		return fmt.Errorf("%w (line %d)", err, p.keywordLine)
	}
	return nil
}
