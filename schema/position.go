package schema

import (
	"github.com/neuronlabs/jsonapi/annotation"
)

// Position is the place of the resource within the parsed resources graph.
// The root resources are at level 0 with an empty path and no parent.
type Position struct {
	// Level is the number of relationships traversed from the root.
	Level int
	// Path is the dot separated chain of relationship names from the root.
	Path string
	// ParentType is the type of the resource that contains the relationship.
	ParentType string
	// ParentRelationship is the name of the relationship the resource was reached by.
	ParentRelationship string
}

// HasParent checks if the position is not at the root level.
func (p Position) HasParent() bool {
	return p.Level > 0
}

// Child gets the position of the resources reached by the relationship 'name'
// of the 'parentType' resource at position 'p'.
func (p Position) Child(parentType, name string) Position {
	path := name
	if p.Level > 0 {
		path = p.Path + annotation.NestedSeparator + name
	}
	return Position{
		Level:              p.Level + 1,
		Path:               path,
		ParentType:         parentType,
		ParentRelationship: name,
	}
}

// Context is the encoding context provided to the schema while getting
// the resource attributes and relationships.
type Context interface {
	// Position gets the position of currently encoded resource.
	Position() Position
	// FieldSets gets the requested sparse field sets.
	FieldSets() map[string][]string
	// IncludePaths gets the normalized requested include paths.
	IncludePaths() []string
}
