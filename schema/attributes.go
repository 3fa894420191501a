package schema

import (
	"encoding/json"

	"github.com/neuronlabs/jsonapi/internal/ordered"
)

// Attribute is the named resource attribute value.
type Attribute struct {
	Name  string
	Value interface{}
}

// Attributes is the ordered collection of the resource attributes.
// The json encoding keeps the order of the attributes.
type Attributes []Attribute

// Get gets the attribute value.
func (a Attributes) Get(name string) (interface{}, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Set sets the attribute value. An existing attribute keeps its position.
func (a *Attributes) Set(name string, value interface{}) {
	for i, attr := range *a {
		if attr.Name == name {
			(*a)[i].Value = value
			return
		}
	}
	*a = append(*a, Attribute{Name: name, Value: value})
}

// Names gets the attribute names in order.
func (a Attributes) Names() []string {
	names := make([]string, len(a))
	for i, attr := range a {
		names[i] = attr.Name
	}
	return names
}

// Object gets the attributes as the ordered output object.
func (a Attributes) Object() *ordered.Map {
	obj := ordered.New()
	for _, attr := range a {
		obj.Set(attr.Name, attr.Value)
	}
	return obj
}

// MarshalJSON implements json.Marshaler interface.
func (a Attributes) MarshalJSON() ([]byte, error) {
	return ordered.Marshal(a.Object())
}

// UnmarshalJSON implements json.Unmarshaler interface.
// Nested object values keep their order as well.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	obj := ordered.New()
	if err := json.Unmarshal(data, obj); err != nil {
		return err
	}
	attrs := make(Attributes, 0, obj.Len())
	for _, key := range obj.Keys() {
		v, _ := obj.Get(key)
		attrs = append(attrs, Attribute{Name: key, Value: v})
	}
	*a = attrs
	return nil
}
