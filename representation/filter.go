package representation

import (
	"github.com/neuronlabs/jsonapi/parser"
	"github.com/neuronlabs/jsonapi/schema"
)

// Filter filters the resource fields written into the document.
type Filter interface {
	// Attributes gets the resource attributes to write.
	Attributes(resource *parser.Resource) schema.Attributes
	// Relationships gets the resource relationships to write.
	Relationships(resource *parser.Resource) ([]*parser.Relationship, error)
	// ShouldOutputRelationship checks if the resource at the 'position' reached by
	// a relationship should be added to the included resources.
	ShouldOutputRelationship(position schema.Position) bool
}

// compile time check for the Filter interface.
var _ Filter = &FieldSetFilter{}

// FieldSetFilter is the Filter of the sparse field sets. The types not present
// in the field sets are not filtered at all, whereas the types with an empty
// field set have neither attributes nor relationships.
type FieldSetFilter struct {
	fieldSets map[string]map[string]struct{}
}

// NewFieldSetFilter creates new filter for the 'fieldSets' - the mapping of the resource
// type to its allowed field names.
func NewFieldSetFilter(fieldSets map[string][]string) *FieldSetFilter {
	f := &FieldSetFilter{fieldSets: make(map[string]map[string]struct{}, len(fieldSets))}
	for resourceType, fields := range fieldSets {
		allowed := make(map[string]struct{}, len(fields))
		for _, field := range fields {
			allowed[field] = struct{}{}
		}
		f.fieldSets[resourceType] = allowed
	}
	return f
}

// Attributes implements Filter interface.
func (f *FieldSetFilter) Attributes(resource *parser.Resource) schema.Attributes {
	attributes := resource.Attributes()
	if !f.HasFilter(resource.Type()) {
		return attributes
	}
	filtered := make(schema.Attributes, 0, len(attributes))
	for _, attr := range attributes {
		if f.IsAllowed(resource.Type(), attr.Name) {
			filtered = append(filtered, attr)
		}
	}
	return filtered
}

// Relationships implements Filter interface.
func (f *FieldSetFilter) Relationships(resource *parser.Resource) ([]*parser.Relationship, error) {
	if f.HasFilter(resource.Type()) && len(f.fieldSets[resource.Type()]) == 0 {
		return nil, nil
	}
	relationships, err := resource.Relationships()
	if err != nil {
		return nil, err
	}
	if !f.HasFilter(resource.Type()) {
		return relationships, nil
	}
	filtered := make([]*parser.Relationship, 0, len(relationships))
	for _, rel := range relationships {
		if f.IsAllowed(resource.Type(), rel.Name()) {
			filtered = append(filtered, rel)
		}
	}
	return filtered, nil
}

// ShouldOutputRelationship implements Filter interface. The resource is included
// if its parent type has no field set or the parent field set contains the relationship.
func (f *FieldSetFilter) ShouldOutputRelationship(position schema.Position) bool {
	if !f.HasFilter(position.ParentType) {
		return true
	}
	return f.IsAllowed(position.ParentType, position.ParentRelationship)
}

// HasFilter checks if the 'resourceType' has a field set.
func (f *FieldSetFilter) HasFilter(resourceType string) bool {
	_, ok := f.fieldSets[resourceType]
	return ok
}

// AllowedFields gets the field set of the 'resourceType'.
func (f *FieldSetFilter) AllowedFields(resourceType string) map[string]struct{} {
	return f.fieldSets[resourceType]
}

// IsAllowed checks if the 'field' of the 'resourceType' passes the filter.
func (f *FieldSetFilter) IsAllowed(resourceType, field string) bool {
	allowed, ok := f.fieldSets[resourceType]
	if !ok {
		return true
	}
	_, ok = allowed[field]
	return ok
}
