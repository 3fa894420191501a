package schema

// Schema is the capability of getting the jsonapi resource data from the domain object.
type Schema interface {
	// Type gets the resource type.
	Type() string
	// ID gets the resource identifier. The 'ok' is false for the resources without an id.
	ID(resource interface{}) (id string, ok bool)
	// Attributes gets the resource attributes in the output order.
	Attributes(resource interface{}, ctx Context) Attributes
	// Relationships gets the resource relationship descriptions in the output order.
	Relationships(resource interface{}, ctx Context) []*RelationshipDescription
}

// ResourceLinker is the optional Schema capability that sets the resource links.
// By default the resource has the 'self' link with the sub url '/{type}/{id}'.
type ResourceLinker interface {
	Links(resource interface{}) Links
}

// RelationshipLinker is the optional Schema capability that sets the relationship links.
// The default 'self' link is '/{type}/{id}/relationships/{name}' and the 'related' is '/{type}/{id}/{name}'.
type RelationshipLinker interface {
	RelationshipSelfLink(resource interface{}, name string) *Link
	RelationshipRelatedLink(resource interface{}, name string) *Link
}

// RelationshipLinkPolicy is the optional Schema capability that decides if the relationship
// links are added for the relationships which don't set them explicitly. The default is true.
type RelationshipLinkPolicy interface {
	IsAddSelfLinkInRelationshipByDefault(name string) bool
	IsAddRelatedLinkInRelationshipByDefault(name string) bool
}

// IdentifierMetaProvider is the optional Schema capability that adds the meta
// to the resource identifiers.
type IdentifierMetaProvider interface {
	IdentifierMeta(resource interface{}) (meta interface{}, ok bool)
}

// ResourceMetaProvider is the optional Schema capability that adds the meta
// to the resource objects.
type ResourceMetaProvider interface {
	ResourceMeta(resource interface{}) (meta interface{}, ok bool)
}

// SelfSubURL gets the '/{type}/{id}' resource sub url.
func SelfSubURL(s Schema, resource interface{}) string {
	id, _ := s.ID(resource)
	return "/" + s.Type() + "/" + id
}

// ResourceLinks gets the links of the 'resource'.
func ResourceLinks(s Schema, resource interface{}) Links {
	if linker, ok := s.(ResourceLinker); ok {
		return linker.Links(resource)
	}
	return Links{{Name: LinkSelf, Link: NewLink(true, SelfSubURL(s, resource))}}
}

// RelationshipSelfLink gets the 'self' link of the 'resource' relationship 'name'.
func RelationshipSelfLink(s Schema, resource interface{}, name string) *Link {
	if linker, ok := s.(RelationshipLinker); ok {
		return linker.RelationshipSelfLink(resource, name)
	}
	return NewLink(true, SelfSubURL(s, resource)+"/relationships/"+name)
}

// RelationshipRelatedLink gets the 'related' link of the 'resource' relationship 'name'.
func RelationshipRelatedLink(s Schema, resource interface{}, name string) *Link {
	if linker, ok := s.(RelationshipLinker); ok {
		return linker.RelationshipRelatedLink(resource, name)
	}
	return NewLink(true, SelfSubURL(s, resource)+"/"+name)
}

// IsAddSelfLinkByDefault checks if the relationship 'name' gets the 'self' link by default.
func IsAddSelfLinkByDefault(s Schema, name string) bool {
	if policy, ok := s.(RelationshipLinkPolicy); ok {
		return policy.IsAddSelfLinkInRelationshipByDefault(name)
	}
	return true
}

// IsAddRelatedLinkByDefault checks if the relationship 'name' gets the 'related' link by default.
func IsAddRelatedLinkByDefault(s Schema, name string) bool {
	if policy, ok := s.(RelationshipLinkPolicy); ok {
		return policy.IsAddRelatedLinkInRelationshipByDefault(name)
	}
	return true
}

// IdentifierMeta gets the identifier meta of the 'resource'.
func IdentifierMeta(s Schema, resource interface{}) (interface{}, bool) {
	if provider, ok := s.(IdentifierMetaProvider); ok {
		return provider.IdentifierMeta(resource)
	}
	return nil, false
}

// ResourceMeta gets the resource meta of the 'resource'.
func ResourceMeta(s Schema, resource interface{}) (interface{}, bool) {
	if provider, ok := s.(ResourceMetaProvider); ok {
		return provider.ResourceMeta(resource)
	}
	return nil, false
}
