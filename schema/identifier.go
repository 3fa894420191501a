package schema

// Identifier is the resource identifier object. It could be encoded directly
// or used as the relationship data instead of the full resource.
type Identifier struct {
	Type    string
	ID      string
	Meta    interface{}
	HasMeta bool
}

// NewIdentifier creates new resource identifier.
func NewIdentifier(resourceType, id string) *Identifier {
	return &Identifier{Type: resourceType, ID: id}
}

// SetMeta sets the identifier meta and returns itself.
func (i *Identifier) SetMeta(meta interface{}) *Identifier {
	i.Meta = meta
	i.HasMeta = true
	return i
}

// AsIdentifier gets the identifier from the 'value' if it is an Identifier or *Identifier.
func AsIdentifier(value interface{}) (*Identifier, bool) {
	switch id := value.(type) {
	case *Identifier:
		if id == nil {
			return nil, false
		}
		return id, true
	case Identifier:
		return &id, true
	}
	return nil, false
}
