// Package annotation contains the struct tag annotations used by the struct schemas
// and the symbols used in the include paths and query parameters.
package annotation

// JSONAPI is the root struct field annotation tag.
const JSONAPI = "jsonapi"

// Struct field type annotation values.
const (
	Primary      = "primary"
	PrimaryShort = "pk"
	ID           = "id"
)

// Attribute field annotation values.
const (
	Attribute     = "attr"
	AttributeFull = "attribute"
)

// Relationship field annotation values.
const (
	Relation     = "relation"
	RelationFull = "relationship"
)

// Meta defines the field that contains the resource meta.
const Meta = "meta"

const (
	// Name is the struct field's tag used to set the member name.
	// Example: `jsonapi:"type=attr;name=first_name"`
	Name = "name"
	// FieldType is the struct field's tag used to set the field type.
	// Example: `jsonapi:"type=relation"`
	FieldType = "type"
	// Collection is the primary field's tag used to set the resource type.
	// Example: `jsonapi:"type=primary;collection=people"`
	Collection = "collection"
)
