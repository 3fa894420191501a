package schema

// Deferred is the relationship data or meta computed only when needed.
// Plain 'func() interface{}' values are treated the same way.
type Deferred func() interface{}

// Iterator is the sequence of resources or identifiers used as a collection.
type Iterator interface {
	Next() bool
	Value() interface{}
}

// Resolve evaluates the deferred 'value'. Other values are returned as they are.
func Resolve(value interface{}) interface{} {
	switch fn := value.(type) {
	case Deferred:
		return fn()
	case func() interface{}:
		return fn()
	}
	return value
}

// LinkMode defines if the default relationship link is shown.
type LinkMode int

const (
	// LinkDefault uses the schema RelationshipLinkPolicy.
	LinkDefault LinkMode = iota
	// LinkShow always shows the link.
	LinkShow
	// LinkHide never shows the link.
	LinkHide
)

// RelationshipDescription describes the resource relationship.
// A relationship must have at least one of: data, links or meta.
type RelationshipDescription struct {
	// Name is the relationship name.
	Name string
	// Data is the relationship data: a resource with registered schema, an Identifier,
	// a slice, array or Iterator of these, a nil or a Deferred computing one of these.
	Data interface{}
	// HasData defines if the relationship contains the 'data' member.
	HasData bool
	// Links are the relationship links other than the 'self' and 'related'.
	Links Links
	// Meta is the relationship meta. It might be a Deferred value.
	Meta interface{}
	// HasMeta defines if the relationship contains the 'meta' member.
	HasMeta bool
	// Self defines if the relationship 'self' link is shown.
	Self LinkMode
	// SelfLink if set replaces the default 'self' link.
	SelfLink *Link
	// Related defines if the relationship 'related' link is shown.
	Related LinkMode
	// RelatedLink if set replaces the default 'related' link.
	RelatedLink *Link
}

// NewRelationship creates new relationship description with given 'name'.
func NewRelationship(name string) *RelationshipDescription {
	return &RelationshipDescription{Name: name}
}

// WithData sets the relationship data.
func (r *RelationshipDescription) WithData(data interface{}) *RelationshipDescription {
	r.Data = data
	r.HasData = true
	return r
}

// WithMeta sets the relationship meta.
func (r *RelationshipDescription) WithMeta(meta interface{}) *RelationshipDescription {
	r.Meta = meta
	r.HasMeta = true
	return r
}

// WithLink sets the relationship link.
func (r *RelationshipDescription) WithLink(name string, link *Link) *RelationshipDescription {
	switch name {
	case LinkSelf:
		r.SelfLink = link
	case LinkRelated:
		r.RelatedLink = link
	default:
		r.Links.Set(name, link)
	}
	return r
}

// ShowSelf forces showing the default 'self' link.
func (r *RelationshipDescription) ShowSelf() *RelationshipDescription {
	r.Self = LinkShow
	return r
}

// HideSelf hides the 'self' link.
func (r *RelationshipDescription) HideSelf() *RelationshipDescription {
	r.Self = LinkHide
	r.SelfLink = nil
	return r
}

// ShowRelated forces showing the default 'related' link.
func (r *RelationshipDescription) ShowRelated() *RelationshipDescription {
	r.Related = LinkShow
	return r
}

// HideRelated hides the 'related' link.
func (r *RelationshipDescription) HideRelated() *RelationshipDescription {
	r.Related = LinkHide
	r.RelatedLink = nil
	return r
}
