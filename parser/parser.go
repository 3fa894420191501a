package parser

import (
	"github.com/neuronlabs/jsonapi/log"
	"github.com/neuronlabs/jsonapi/schema"
)

var logger = log.NewModuleLogger("parser")

// Parser parses the domain objects into the sequence of events.
// The parser keeps no state between the Parse calls.
type Parser struct {
	container *schema.Container
	fieldSets map[string][]string
}

// New creates new parser for the schemas registered in the 'container'.
// The 'fieldSets' are provided to the schemas within the schema.Context.
func New(container *schema.Container, fieldSets map[string][]string) *Parser {
	return &Parser{container: container, fieldSets: fieldSets}
}

// Parse creates the lazy sequence of the events for the 'data' and requested 'includePaths'.
// The 'data' is either a resource with registered schema, a schema.Identifier,
// a slice, array or schema.Iterator of these, or nil.
func (p *Parser) Parse(data interface{}, includePaths []string) *Events {
	paths := NormalizePaths(includePaths)
	logger.Debug3f("Parsing: '%T' with include paths: %v", data, paths.List())
	return &Events{
		container: p.container,
		ctx:       &parseContext{fieldSets: p.fieldSets, includePaths: paths.List()},
		paths:     paths,
		data:      data,
		visited:   map[resourceKey]struct{}{},
	}
}
