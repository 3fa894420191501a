package jsonapi

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"strconv"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/internal/ordered"
	"github.com/neuronlabs/jsonapi/representation"
	"github.com/neuronlabs/jsonapi/schema"
)

var (
	documentMembers = map[string]struct{}{
		representation.KeywordData:     {},
		representation.KeywordIncluded: {},
		representation.KeywordErrors:   {},
		representation.KeywordMeta:     {},
		representation.KeywordLinks:    {},
		representation.KeywordJSONAPI:  {},
	}
	resourceMembers = map[string]struct{}{
		representation.KeywordType:          {},
		representation.KeywordID:            {},
		representation.KeywordAttributes:    {},
		representation.KeywordRelationships: {},
		representation.KeywordLinks:         {},
		representation.KeywordMeta:          {},
	}
)

// Document is the decoded jsonapi document.
type Document struct {
	// Data are the primary data resources.
	Data []*ResourceObject
	// HasData defines if the document contains the 'data' member.
	HasData bool
	// IsCollection defines if the primary data is an array.
	IsCollection bool
	// IsNull defines if the primary data is null.
	IsNull bool
	// Included are the included resources.
	Included []*ResourceObject
	// Errors are the error objects.
	Errors schema.ErrorCollection
	// Links are the top-level links without the profile.
	Links schema.Links
	// Profile are the top-level 'profile' links.
	Profile []*schema.Link
	// Meta is the top-level meta.
	Meta    interface{}
	HasMeta bool
	// JSONAPI is the 'jsonapi' object.
	JSONAPI *JSONAPIObject
}

// JSONAPIObject is the top-level 'jsonapi' object.
type JSONAPIObject struct {
	Version string
	Meta    interface{}
	HasMeta bool
}

// Lookup finds the resource object with given 'resourceType' and 'id'
// within the primary data and included resources.
func (d *Document) Lookup(resourceType, id string) (*ResourceObject, bool) {
	for _, objects := range [][]*ResourceObject{d.Data, d.Included} {
		for _, o := range objects {
			if o.Type == resourceType && o.HasID && o.ID == id {
				return o, true
			}
		}
	}
	return nil, false
}

// ResourceObject is the decoded resource object. Attribute values keep the
// json types: string, json.Number, bool, nil, []interface{} and objects as *ordered.Map.
type ResourceObject struct {
	Type          string
	ID            string
	HasID         bool
	Attributes    schema.Attributes
	Relationships []*RelationshipObject
	Links         schema.Links
	Meta          interface{}
	HasMeta       bool
}

// Identifier gets the resource identifier of the object. The object without
// the attributes, relationships and links is an identifier object, so its meta
// is the identifier meta and it is kept.
func (o *ResourceObject) Identifier() *schema.Identifier {
	id := schema.NewIdentifier(o.Type, o.ID)
	if o.HasMeta && o.IsIdentifier() {
		id.SetMeta(o.Meta)
	}
	return id
}

// IsIdentifier checks if the object contains only the identifier members:
// 'type', 'id' and 'meta'.
func (o *ResourceObject) IsIdentifier() bool {
	return len(o.Attributes) == 0 && len(o.Relationships) == 0 && len(o.Links) == 0
}

// Relationship gets the relationship object with given 'name'.
func (o *ResourceObject) Relationship(name string) (*RelationshipObject, bool) {
	for _, rel := range o.Relationships {
		if rel.Name == name {
			return rel, true
		}
	}
	return nil, false
}

// RelationshipObject is the decoded relationship object.
type RelationshipObject struct {
	Name string
	// Data are the resource identifiers of the relationship linkage.
	Data         []*schema.Identifier
	HasData      bool
	IsCollection bool
	Links        schema.Links
	Meta         interface{}
	HasMeta      bool
}

// IsNull checks if the relationship data is null.
func (r *RelationshipObject) IsNull() bool {
	return r.HasData && !r.IsCollection && len(r.Data) == 0
}

// Decode reads and decodes the jsonapi document from the reader 'r'.
// The 'strict' decoding fails on unknown document and resource members.
func Decode(r io.Reader, strict bool) (*Document, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Newf(class.EncodingUnmarshalInvalidFormat, "reading document failed: %v", err)
	}
	return DecodeBytes(data, strict)
}

// DecodeBytes decodes the jsonapi document 'data'.
func DecodeBytes(data []byte, strict bool) (*Document, error) {
	root := ordered.New()
	if err := json.Unmarshal(data, root); err != nil {
		return nil, errors.Newf(class.EncodingUnmarshalInvalidFormat, "invalid json document: %v", err)
	}
	d := &decoder{strict: strict}
	return d.document(root)
}

type decoder struct {
	strict bool
}

func (d *decoder) document(root *ordered.Map) (*Document, error) {
	if err := d.checkMembers(root, documentMembers, ""); err != nil {
		return nil, err
	}
	doc := &Document{}

	if value, ok := root.Get(representation.KeywordData); ok {
		doc.HasData = true
		switch data := value.(type) {
		case nil:
			doc.IsNull = true
		case []interface{}:
			doc.IsCollection = true
			doc.Data = []*ResourceObject{}
			for i, elem := range data {
				o, err := d.resourceObject(elem, "/data/"+itoa(i))
				if err != nil {
					return nil, err
				}
				doc.Data = append(doc.Data, o)
			}
		default:
			o, err := d.resourceObject(data, "/data")
			if err != nil {
				return nil, err
			}
			doc.Data = []*ResourceObject{o}
		}
	}

	if value, ok := root.Get(representation.KeywordIncluded); ok {
		if !doc.HasData {
			return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "document with 'included' must contain 'data'")
		}
		included, ok := value.([]interface{})
		if !ok {
			return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "'included' must be an array")
		}
		for i, elem := range included {
			o, err := d.resourceObject(elem, "/included/"+itoa(i))
			if err != nil {
				return nil, err
			}
			doc.Included = append(doc.Included, o)
		}
	}

	if value, ok := root.Get(representation.KeywordErrors); ok {
		if doc.HasData {
			return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "document must not contain both 'data' and 'errors'")
		}
		errs, ok := value.([]interface{})
		if !ok {
			return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "'errors' must be an array")
		}
		doc.Errors = schema.ErrorCollection{}
		for i, elem := range errs {
			e, err := d.errorObject(elem, "/errors/"+itoa(i))
			if err != nil {
				return nil, err
			}
			doc.Errors = append(doc.Errors, e)
		}
	}

	doc.Meta, doc.HasMeta = root.Get(representation.KeywordMeta)
	if !doc.HasData && doc.Errors == nil && !doc.HasMeta {
		return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "document must contain at least one of: 'data', 'errors' or 'meta'")
	}

	if value, ok := root.Get(representation.KeywordLinks); ok {
		links, err := d.links(value, "/links")
		if err != nil {
			return nil, err
		}
		if profile, ok := links.Get(schema.LinkProfile); ok && profile == nil {
			doc.Profile, err = d.profile(value.(*ordered.Map))
			if err != nil {
				return nil, err
			}
			links = removeLink(links, schema.LinkProfile)
		}
		doc.Links = links
	}

	if value, ok := root.Get(representation.KeywordJSONAPI); ok {
		obj, ok := value.(*ordered.Map)
		if !ok {
			return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "'jsonapi' must be an object")
		}
		doc.JSONAPI = &JSONAPIObject{}
		if version, ok := obj.Get(representation.KeywordVersion); ok {
			if doc.JSONAPI.Version, ok = version.(string); !ok {
				return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "'jsonapi' version must be a string")
			}
		}
		doc.JSONAPI.Meta, doc.JSONAPI.HasMeta = obj.Get(representation.KeywordMeta)
	}
	return doc, nil
}

func (d *decoder) resourceObject(value interface{}, pointer string) (*ResourceObject, error) {
	obj, ok := value.(*ordered.Map)
	if !ok {
		return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "resource must be an object").SetPath(pointer)
	}
	if err := d.checkMembers(obj, resourceMembers, pointer); err != nil {
		return nil, err
	}

	o := &ResourceObject{}
	var err error
	if o.Type, o.ID, o.HasID, err = identity(obj, pointer); err != nil {
		return nil, err
	}

	if value, ok := obj.Get(representation.KeywordAttributes); ok {
		attrs, ok := value.(*ordered.Map)
		if !ok {
			return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "attributes must be an object").SetPath(pointer)
		}
		for _, name := range attrs.Keys() {
			v, _ := attrs.Get(name)
			o.Attributes = append(o.Attributes, schema.Attribute{Name: name, Value: v})
		}
	}

	if value, ok := obj.Get(representation.KeywordRelationships); ok {
		rels, ok := value.(*ordered.Map)
		if !ok {
			return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "relationships must be an object").SetPath(pointer)
		}
		for _, name := range rels.Keys() {
			v, _ := rels.Get(name)
			rel, err := d.relationshipObject(name, v, pointer+"/relationships/"+name)
			if err != nil {
				return nil, err
			}
			o.Relationships = append(o.Relationships, rel)
		}
	}

	if value, ok := obj.Get(representation.KeywordLinks); ok {
		if o.Links, err = d.links(value, pointer+"/links"); err != nil {
			return nil, err
		}
	}
	o.Meta, o.HasMeta = obj.Get(representation.KeywordMeta)
	return o, nil
}

func (d *decoder) relationshipObject(name string, value interface{}, pointer string) (*RelationshipObject, error) {
	obj, ok := value.(*ordered.Map)
	if !ok {
		return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "relationship must be an object").SetPath(pointer)
	}
	rel := &RelationshipObject{Name: name}

	if value, ok := obj.Get(representation.KeywordData); ok {
		rel.HasData = true
		switch data := value.(type) {
		case nil:
		case []interface{}:
			rel.IsCollection = true
			rel.Data = []*schema.Identifier{}
			for i, elem := range data {
				id, err := identifier(elem, pointer+"/data/"+itoa(i))
				if err != nil {
					return nil, err
				}
				rel.Data = append(rel.Data, id)
			}
		default:
			id, err := identifier(data, pointer+"/data")
			if err != nil {
				return nil, err
			}
			rel.Data = []*schema.Identifier{id}
		}
	}
	if value, ok := obj.Get(representation.KeywordLinks); ok {
		var err error
		if rel.Links, err = d.links(value, pointer+"/links"); err != nil {
			return nil, err
		}
	}
	rel.Meta, rel.HasMeta = obj.Get(representation.KeywordMeta)

	if !rel.HasData && len(rel.Links) == 0 && !rel.HasMeta {
		return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "relationship must contain at least one of: 'links', 'data' or 'meta'").SetPath(pointer)
	}
	return rel, nil
}

func (d *decoder) errorObject(value interface{}, pointer string) (*schema.Error, error) {
	obj, ok := value.(*ordered.Map)
	if !ok {
		return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "error must be an object").SetPath(pointer)
	}
	e := &schema.Error{}
	for key, field := range map[string]*string{
		representation.KeywordID:     &e.ID,
		representation.KeywordStatus: &e.Status,
		representation.KeywordCode:   &e.Code,
		representation.KeywordTitle:  &e.Title,
		representation.KeywordDetail: &e.Detail,
	} {
		if err := stringMember(obj, key, field, pointer); err != nil {
			return nil, err
		}
	}

	if value, ok := obj.Get(representation.KeywordLinks); ok {
		linksObj, ok := value.(*ordered.Map)
		if !ok {
			return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "links must be an object").SetPath(pointer)
		}
		if about, ok := linksObj.Get(schema.LinkAbout); ok {
			link, err := d.link(about, pointer+"/links/about")
			if err != nil {
				return nil, err
			}
			e.AboutLink = link
		}
		if types, ok := linksObj.Get(schema.LinkType); ok {
			list, ok := types.([]interface{})
			if !ok {
				return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "type links must be an array").SetPath(pointer)
			}
			for i, elem := range list {
				link, err := d.link(elem, pointer+"/links/type/"+itoa(i))
				if err != nil {
					return nil, err
				}
				e.TypeLinks = append(e.TypeLinks, link)
			}
		}
	}

	if value, ok := obj.Get(representation.KeywordSource); ok {
		sourceObj, ok := value.(*ordered.Map)
		if !ok {
			return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "source must be an object").SetPath(pointer)
		}
		e.Source = &schema.ErrorSource{}
		for key, field := range map[string]*string{
			schema.SourcePointer:   &e.Source.Pointer,
			schema.SourceParameter: &e.Source.Parameter,
			schema.SourceHeader:    &e.Source.Header,
		} {
			if err := stringMember(sourceObj, key, field, pointer+"/source"); err != nil {
				return nil, err
			}
		}
	}
	e.Meta, e.HasMeta = obj.Get(representation.KeywordMeta)
	return e, nil
}

// links decodes the links object. The 'profile' member is set with a nil link.
func (d *decoder) links(value interface{}, pointer string) (schema.Links, error) {
	obj, ok := value.(*ordered.Map)
	if !ok {
		return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "links must be an object").SetPath(pointer)
	}
	links := schema.Links{}
	for _, name := range obj.Keys() {
		v, _ := obj.Get(name)
		if _, isList := v.([]interface{}); isList && name == schema.LinkProfile {
			links.Set(name, nil)
			continue
		}
		link, err := d.link(v, pointer+"/"+name)
		if err != nil {
			return nil, err
		}
		links.Set(name, link)
	}
	return links, nil
}

func (d *decoder) profile(obj *ordered.Map) ([]*schema.Link, error) {
	v, _ := obj.Get(schema.LinkProfile)
	var profile []*schema.Link
	for i, elem := range v.([]interface{}) {
		link, err := d.link(elem, "/links/profile/"+itoa(i))
		if err != nil {
			return nil, err
		}
		profile = append(profile, link)
	}
	return profile, nil
}

func (d *decoder) link(value interface{}, pointer string) (*schema.Link, error) {
	switch v := value.(type) {
	case string:
		return schema.NewLink(false, v), nil
	case *ordered.Map:
		href, ok := v.Get("href")
		hrefString, isString := href.(string)
		if !ok || !isString {
			return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "link object must contain string 'href'").SetPath(pointer)
		}
		link := schema.NewLink(false, hrefString)
		if meta, ok := v.Get(representation.KeywordMeta); ok {
			link.Meta, link.HasMeta = meta, true
		}
		if aliases, ok := v.Get("aliases"); ok {
			aliasesObj, ok := aliases.(*ordered.Map)
			if !ok {
				return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "link aliases must be an object").SetPath(pointer)
			}
			link.Aliases = map[string]string{}
			for _, key := range aliasesObj.Keys() {
				alias, _ := aliasesObj.Get(key)
				if s, ok := alias.(string); ok {
					link.Aliases[key] = s
				}
			}
		}
		return link, nil
	}
	return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "link must be a string or an object").SetPath(pointer)
}

func (d *decoder) checkMembers(obj *ordered.Map, allowed map[string]struct{}, pointer string) error {
	if !d.strict {
		return nil
	}
	for _, key := range obj.Keys() {
		if _, ok := allowed[key]; !ok {
			return errors.Newf(class.EncodingUnmarshalUnknownField, "unknown member: '%s'", key).SetPath(pointer + "/" + key)
		}
	}
	return nil
}

// identifier decodes the resource identifier object.
func identifier(value interface{}, pointer string) (*schema.Identifier, error) {
	obj, ok := value.(*ordered.Map)
	if !ok {
		return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "resource identifier must be an object").SetPath(pointer)
	}
	resourceType, id, hasID, err := identity(obj, pointer)
	if err != nil {
		return nil, err
	}
	if !hasID {
		return nil, errors.New(class.EncodingUnmarshalInvalidDocument, "resource identifier must contain 'id'").SetPath(pointer)
	}
	identifier := schema.NewIdentifier(resourceType, id)
	if meta, ok := obj.Get(representation.KeywordMeta); ok {
		identifier.SetMeta(meta)
	}
	return identifier, nil
}

func identity(obj *ordered.Map, pointer string) (resourceType, id string, hasID bool, err error) {
	typeValue, ok := obj.Get(representation.KeywordType)
	if resourceType, _ = typeValue.(string); !ok || resourceType == "" {
		return "", "", false, errors.New(class.EncodingUnmarshalInvalidDocument, "object must contain non empty string 'type'").SetPath(pointer)
	}
	if idValue, ok := obj.Get(representation.KeywordID); ok {
		if id, hasID = idValue.(string); !hasID {
			return "", "", false, errors.New(class.EncodingUnmarshalInvalidDocument, "object 'id' must be a string").SetPath(pointer)
		}
	}
	return resourceType, id, hasID, nil
}

func stringMember(obj *ordered.Map, key string, field *string, pointer string) error {
	value, ok := obj.Get(key)
	if !ok {
		return nil
	}
	s, ok := value.(string)
	if !ok {
		return errors.Newf(class.EncodingUnmarshalInvalidDocument, "member: '%s' must be a string", key).SetPath(pointer)
	}
	*field = s
	return nil
}

func removeLink(links schema.Links, name string) schema.Links {
	result := make(schema.Links, 0, len(links))
	for _, named := range links {
		if named.Name != name {
			result = append(result, named)
		}
	}
	return result
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
