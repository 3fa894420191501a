package parser

import (
	"reflect"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/schema"
)

// DataKind is the kind of the relationship data.
type DataKind int

// Relationship data kinds.
const (
	DataNull DataKind = iota
	DataResource
	DataIdentifier
	DataCollection
)

// String implements fmt.Stringer interface.
func (k DataKind) String() string {
	switch k {
	case DataNull:
		return "null"
	case DataResource:
		return "resource"
	case DataIdentifier:
		return "identifier"
	case DataCollection:
		return "collection"
	}
	return "unknown"
}

// RelationshipData is the resolved relationship data. Exactly one of the kinds is set.
type RelationshipData struct {
	kind       DataKind
	resource   *Resource
	identifier *Identifier
	elements   []ResourceIdentifier
}

// Kind gets the data kind.
func (d *RelationshipData) Kind() DataKind {
	return d.kind
}

// IsNull checks if the data is null.
func (d *RelationshipData) IsNull() bool {
	return d.kind == DataNull
}

// IsResource checks if the data is a single resource.
func (d *RelationshipData) IsResource() bool {
	return d.kind == DataResource
}

// IsIdentifier checks if the data is a single identifier.
func (d *RelationshipData) IsIdentifier() bool {
	return d.kind == DataIdentifier
}

// IsCollection checks if the data is a collection of resources and identifiers.
func (d *RelationshipData) IsCollection() bool {
	return d.kind == DataCollection
}

// Resource gets the single resource. Returns nil for other kinds.
func (d *RelationshipData) Resource() *Resource {
	return d.resource
}

// Identifier gets the single identifier. Returns nil for other kinds.
func (d *RelationshipData) Identifier() *Identifier {
	return d.identifier
}

// Elements gets the collection elements in order.
func (d *RelationshipData) Elements() []ResourceIdentifier {
	return d.elements
}

// Resources gets the resources of the collection, skipping the identifiers.
func (d *RelationshipData) Resources() []*Resource {
	var resources []*Resource
	for _, element := range d.elements {
		if r, ok := element.(*Resource); ok {
			resources = append(resources, r)
		}
	}
	return resources
}

func resolveData(container *schema.Container, ctx *parseContext, position schema.Position, value interface{}) (*RelationshipData, error) {
	value = schema.Resolve(value)

	if container.HasSchema(value) {
		r, err := newResource(container, ctx, position, value)
		if err != nil {
			return nil, err
		}
		return &RelationshipData{kind: DataResource, resource: r}, nil
	}
	if id, ok := schema.AsIdentifier(value); ok {
		return &RelationshipData{kind: DataIdentifier, identifier: newIdentifier(position, id)}, nil
	}
	if next, ok := sequence(value); ok {
		data := &RelationshipData{kind: DataCollection, elements: []ResourceIdentifier{}}
		for {
			elem, ok := next()
			if !ok {
				break
			}
			element, err := resolveElement(container, ctx, position, elem)
			if err != nil {
				return nil, err
			}
			data.elements = append(data.elements, element)
		}
		return data, nil
	}
	if isNil(value) {
		return &RelationshipData{kind: DataNull}, nil
	}
	return nil, errors.Newf(class.EncodingSchemaMismatch, "no schema found for: '%T'", value).SetPath(position.Path)
}

func resolveElement(container *schema.Container, ctx *parseContext, position schema.Position, value interface{}) (ResourceIdentifier, error) {
	if container.HasSchema(value) {
		return newResource(container, ctx, position, value)
	}
	if id, ok := schema.AsIdentifier(value); ok {
		return newIdentifier(position, id), nil
	}
	return nil, errors.Newf(class.EncodingSchemaMismatch, "collection element: '%T' is neither a resource nor an identifier", value).SetPath(position.Path)
}

// sequence gets the function iterating over the slice, array or schema.Iterator 'value'.
func sequence(value interface{}) (func() (interface{}, bool), bool) {
	if value == nil {
		return nil, false
	}
	if it, ok := value.(schema.Iterator); ok {
		if v := reflect.ValueOf(it); v.Kind() == reflect.Ptr && v.IsNil() {
			return nil, false
		}
		return func() (interface{}, bool) {
			if !it.Next() {
				return nil, false
			}
			return it.Value(), true
		}, true
	}

	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr && !v.IsNil() {
		if elem := v.Elem(); elem.Kind() == reflect.Slice || elem.Kind() == reflect.Array {
			v = elem
		}
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, false
	}
	var i int
	return func() (interface{}, bool) {
		if i >= v.Len() {
			return nil, false
		}
		i++
		return v.Index(i - 1).Interface(), true
	}, true
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
