package schema

import (
	"sort"

	"github.com/neuronlabs/jsonapi/internal/ordered"
)

// Link names.
const (
	LinkSelf    = "self"
	LinkRelated = "related"
	LinkFirst   = "first"
	LinkLast    = "last"
	LinkNext    = "next"
	LinkPrev    = "prev"
	LinkAbout   = "about"
	LinkType    = "type"
	LinkProfile = "profile"
)

// Link is the jsonapi link. The SubURL link value is prefixed with the encoder url prefix.
// A link without the meta and aliases is shown as a string, otherwise it is an object
// with the 'href', 'aliases' and 'meta' members.
type Link struct {
	SubURL  bool
	Value   string
	Meta    interface{}
	HasMeta bool
	// Aliases are the profile link keyword aliases.
	Aliases map[string]string
}

// NewLink creates new link.
func NewLink(subURL bool, value string) *Link {
	return &Link{SubURL: subURL, Value: value}
}

// NewLinkWithMeta creates new link with the 'meta'.
func NewLinkWithMeta(subURL bool, value string, meta interface{}) *Link {
	return &Link{SubURL: subURL, Value: value, Meta: meta, HasMeta: true}
}

// NewLinkWithAliases creates new profile link with keyword 'aliases'.
func NewLinkWithAliases(subURL bool, value string, aliases map[string]string) *Link {
	return &Link{SubURL: subURL, Value: value, Aliases: aliases}
}

// CanBeShownAsString checks if the link is represented as a string.
func (l *Link) CanBeShownAsString() bool {
	return !l.HasMeta && len(l.Aliases) == 0
}

// StringRepresentation gets the link 'href' value.
func (l *Link) StringRepresentation(prefix string) string {
	if l.SubURL {
		return prefix + l.Value
	}
	return l.Value
}

// Representation gets the link output value. It's either a string or an object.
func (l *Link) Representation(prefix string) interface{} {
	if l.CanBeShownAsString() {
		return l.StringRepresentation(prefix)
	}
	obj := ordered.New()
	obj.Set("href", l.StringRepresentation(prefix))
	if len(l.Aliases) > 0 {
		names := make([]string, 0, len(l.Aliases))
		for name := range l.Aliases {
			names = append(names, name)
		}
		sort.Strings(names)
		aliases := ordered.New()
		for _, name := range names {
			aliases.Set(name, l.Aliases[name])
		}
		obj.Set("aliases", aliases)
	}
	if l.HasMeta {
		obj.Set("meta", l.Meta)
	}
	return obj
}

// NamedLink is the link with its name.
type NamedLink struct {
	Name string
	Link *Link
}

// Links is the ordered collection of named links.
type Links []NamedLink

// Get gets the link with given 'name'.
func (l Links) Get(name string) (*Link, bool) {
	for _, named := range l {
		if named.Name == name {
			return named.Link, true
		}
	}
	return nil, false
}

// Set sets the 'link' with given 'name'. An existing link keeps its position.
func (l *Links) Set(name string, link *Link) {
	for i, named := range *l {
		if named.Name == name {
			(*l)[i].Link = link
			return
		}
	}
	*l = append(*l, NamedLink{Name: name, Link: link})
}

// Merge gets the copy of 'l' links with the 'other' links set on it.
func (l Links) Merge(other Links) Links {
	merged := make(Links, len(l), len(l)+len(other))
	copy(merged, l)
	for _, named := range other {
		merged.Set(named.Name, named.Link)
	}
	return merged
}

// Representation gets the links output object.
func (l Links) Representation(prefix string) *ordered.Map {
	obj := ordered.New()
	for _, named := range l {
		if named.Link == nil {
			continue
		}
		obj.Set(named.Name, named.Link.Representation(prefix))
	}
	return obj
}
