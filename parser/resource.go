package parser

import (
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/schema"
)

// Resource is the view of the domain object through its schema at given position of the graph.
// The resource doesn't own the domain object.
type Resource struct {
	container *schema.Container
	ctx       *parseContext
	schema    schema.Schema
	value     interface{}

	resourceType string
	id           string
	hasID        bool

	relationships       []*Relationship
	relationshipsParsed bool
	links               schema.Links
	linksParsed         bool
}

func newResource(container *schema.Container, ctx *parseContext, position schema.Position, value interface{}) (*Resource, error) {
	s, err := container.Schema(value)
	if err != nil {
		return nil, err
	}
	r := &Resource{
		container:    container,
		ctx:          ctx.at(position),
		schema:       s,
		value:        value,
		resourceType: s.Type(),
	}
	r.id, r.hasID = s.ID(value)
	return r, nil
}

// Position gets the resource position.
func (r *Resource) Position() schema.Position {
	return r.ctx.position
}

// Type gets the resource type.
func (r *Resource) Type() string {
	return r.resourceType
}

// ID gets the resource id.
func (r *Resource) ID() string {
	return r.id
}

// HasID checks if the resource has the id.
func (r *Resource) HasID() bool {
	return r.hasID
}

// Schema gets the resource schema.
func (r *Resource) Schema() schema.Schema {
	return r.schema
}

// Value gets the domain object of the resource.
func (r *Resource) Value() interface{} {
	return r.value
}

// Attributes gets the resource attributes in the schema order.
func (r *Resource) Attributes() schema.Attributes {
	return r.schema.Attributes(r.value, r.ctx)
}

// IdentifierMeta gets the meta of the resource identifier.
func (r *Resource) IdentifierMeta() (interface{}, bool) {
	return schema.IdentifierMeta(r.schema, r.value)
}

// ResourceMeta gets the meta of the resource object.
func (r *Resource) ResourceMeta() (interface{}, bool) {
	return schema.ResourceMeta(r.schema, r.value)
}

// HasLinks checks if the resource has any links.
func (r *Resource) HasLinks() bool {
	return len(r.Links()) > 0
}

// Links gets the resource links.
func (r *Resource) Links() schema.Links {
	if !r.linksParsed {
		r.links = schema.ResourceLinks(r.schema, r.value)
		r.linksParsed = true
	}
	return r.links
}

// Relationships gets the resource relationships in the schema order.
// The relationship data is not resolved until Relationship.Data is called.
func (r *Resource) Relationships() ([]*Relationship, error) {
	if r.relationshipsParsed {
		return r.relationships, nil
	}

	descriptions := r.schema.Relationships(r.value, r.ctx)
	relationships := make([]*Relationship, 0, len(descriptions))
	for _, desc := range descriptions {
		if desc == nil {
			continue
		}
		if desc.Name == "" {
			return nil, errors.Newf(class.EncodingStructureRelationship, "resource: '%s' relationship with empty name", r.resourceType)
		}
		rel := &Relationship{
			container:   r.container,
			ctx:         r.ctx,
			name:        desc.Name,
			position:    r.Position().Child(r.resourceType, desc.Name),
			description: desc,
			links:       r.relationshipLinks(desc),
		}
		if !desc.HasData && !desc.HasMeta && len(rel.links) == 0 {
			return nil, errors.Newf(class.EncodingStructureRelationship,
				"relationship: '%s' for type: '%s' must contain at least one of the following: links, data or meta", desc.Name, r.resourceType)
		}
		relationships = append(relationships, rel)
	}
	r.relationships = relationships
	r.relationshipsParsed = true
	return relationships, nil
}

// relationshipLinks gets the links of the relationship. The links set explicitly
// come first, the default 'self' and 'related' links are appended if not set.
func (r *Resource) relationshipLinks(desc *schema.RelationshipDescription) schema.Links {
	var links schema.Links
	if desc.SelfLink != nil && desc.Self != schema.LinkHide {
		links.Set(schema.LinkSelf, desc.SelfLink)
	}
	if desc.RelatedLink != nil && desc.Related != schema.LinkHide {
		links.Set(schema.LinkRelated, desc.RelatedLink)
	}
	for _, named := range desc.Links {
		if named.Link != nil {
			links.Set(named.Name, named.Link)
		}
	}

	if _, ok := links.Get(schema.LinkSelf); !ok && r.addLink(desc.Self, schema.IsAddSelfLinkByDefault(r.schema, desc.Name)) {
		links.Set(schema.LinkSelf, schema.RelationshipSelfLink(r.schema, r.value, desc.Name))
	}
	if _, ok := links.Get(schema.LinkRelated); !ok && r.addLink(desc.Related, schema.IsAddRelatedLinkByDefault(r.schema, desc.Name)) {
		links.Set(schema.LinkRelated, schema.RelationshipRelatedLink(r.schema, r.value, desc.Name))
	}
	return links
}

func (r *Resource) addLink(mode schema.LinkMode, byDefault bool) bool {
	switch mode {
	case schema.LinkShow:
		return true
	case schema.LinkHide:
		return false
	default:
		return byDefault
	}
}
