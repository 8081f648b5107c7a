package nastran

import (
	"fmt"
)

type propertyKind int

const (
	solidProperty propertyKind = iota
	shellProperty
)

func (k propertyKind) String() string {
	return [...]string{"PSOLID", "PSHELL"}[k]
}

// property is one entry of the shared property namespace: the defining card
// kind plus an optional display name scraped from a preceding comment
type property struct {
	kind propertyKind
	name string
}

// propertyTable owns the single property ID namespace shared by solid and
// shell definitions. Binding an ID twice, by either card type, is an error.
type propertyTable struct {
	entries map[int]property
}

func newPropertyTable() *propertyTable {
	return &propertyTable{entries: make(map[int]property)}
}

func (t *propertyTable) insert(id int, kind propertyKind, name string) error {
	if prev, ok := t.entries[id]; ok {
		return fmt.Errorf("property ID %d already defined by a %s card", id, prev.kind)
	}
	t.entries[id] = property{kind: kind, name: name}
	return nil
}

// name returns the bound display name for a property ID, empty when the ID
// is unknown or was defined without one
func (t *propertyTable) name(id int) string {
	return t.entries[id].name
}
