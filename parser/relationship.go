package parser

import (
	"github.com/neuronlabs/jsonapi/schema"
)

// Relationship is the named edge from the parent resource to the related resources or identifiers.
type Relationship struct {
	container   *schema.Container
	ctx         *parseContext
	name        string
	position    schema.Position
	description *schema.RelationshipDescription
	links       schema.Links

	data     *RelationshipData
	dataErr  error
	resolved bool

	meta         interface{}
	metaResolved bool
}

// Name gets the relationship name.
func (r *Relationship) Name() string {
	return r.name
}

// Position gets the position of the related resources.
func (r *Relationship) Position() schema.Position {
	return r.position
}

// HasData checks if the relationship contains the 'data' member.
func (r *Relationship) HasData() bool {
	return r.description.HasData
}

// Data resolves the relationship data. The deferred data is evaluated only once,
// on the first call, and the result is reused afterwards.
func (r *Relationship) Data() (*RelationshipData, error) {
	if !r.resolved {
		r.resolved = true
		if r.description.HasData {
			r.data, r.dataErr = resolveData(r.container, r.ctx, r.position, r.description.Data)
		} else {
			r.data = &RelationshipData{kind: DataNull}
		}
	}
	return r.data, r.dataErr
}

// HasLinks checks if the relationship has any links.
func (r *Relationship) HasLinks() bool {
	return len(r.links) > 0
}

// Links gets the relationship links.
func (r *Relationship) Links() schema.Links {
	return r.links
}

// HasMeta checks if the relationship contains the 'meta' member.
func (r *Relationship) HasMeta() bool {
	return r.description.HasMeta
}

// Meta gets the relationship meta. The deferred meta is evaluated once.
func (r *Relationship) Meta() interface{} {
	if !r.metaResolved {
		r.meta = schema.Resolve(r.description.Meta)
		r.metaResolved = true
	}
	return r.meta
}
