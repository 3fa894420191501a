package parser

import (
	"github.com/neuronlabs/jsonapi/schema"
)

// compile time check for the schema.Context interface.
var _ schema.Context = &parseContext{}

// parseContext is the schema.Context of the resource at given position.
type parseContext struct {
	fieldSets    map[string][]string
	includePaths []string
	position     schema.Position
}

func (c *parseContext) at(position schema.Position) *parseContext {
	return &parseContext{fieldSets: c.fieldSets, includePaths: c.includePaths, position: position}
}

// Position implements schema.Context interface.
func (c *parseContext) Position() schema.Position {
	return c.position
}

// FieldSets implements schema.Context interface.
func (c *parseContext) FieldSets() map[string][]string {
	return c.fieldSets
}

// IncludePaths implements schema.Context interface.
func (c *parseContext) IncludePaths() []string {
	return c.includePaths
}
