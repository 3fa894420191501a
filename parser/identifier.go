package parser

import (
	"github.com/neuronlabs/jsonapi/schema"
)

// ResourceIdentifier is the parsed element that could be written as the resource identifier object.
// It's either *Resource or *Identifier.
type ResourceIdentifier interface {
	Position() schema.Position
	Type() string
	ID() string
	HasID() bool
	IdentifierMeta() (interface{}, bool)
}

// compile time check for the ResourceIdentifier interface.
var (
	_ ResourceIdentifier = &Identifier{}
	_ ResourceIdentifier = &Resource{}
)

// Identifier is the schema.Identifier found at given position of the graph.
type Identifier struct {
	position   schema.Position
	identifier *schema.Identifier
}

func newIdentifier(position schema.Position, identifier *schema.Identifier) *Identifier {
	return &Identifier{position: position, identifier: identifier}
}

// Position gets the identifier position.
func (i *Identifier) Position() schema.Position {
	return i.position
}

// Type gets the identifier resource type.
func (i *Identifier) Type() string {
	return i.identifier.Type
}

// ID gets the identifier resource id.
func (i *Identifier) ID() string {
	return i.identifier.ID
}

// HasID checks if the identifier has non empty id.
func (i *Identifier) HasID() bool {
	return i.identifier.ID != ""
}

// IdentifierMeta gets the identifier meta.
func (i *Identifier) IdentifierMeta() (interface{}, bool) {
	return i.identifier.Meta, i.identifier.HasMeta
}
