package jsonapi

import (
	"github.com/neuronlabs/jsonapi/internal/ordered"
	"github.com/neuronlabs/jsonapi/representation"
	"github.com/neuronlabs/jsonapi/schema"
)

// MarshalJSON implements json.Marshaler interface. The document members are
// written in the same order as the Encoder writes them.
func (d *Document) MarshalJSON() ([]byte, error) {
	return ordered.Marshal(d.object())
}

func (d *Document) object() *ordered.Map {
	if d.Errors != nil {
		writer := representation.NewErrorWriter()
		d.writeHeader(&writer.BaseWriter)
		for _, err := range d.Errors {
			writer.AddError(err)
		}
		return writer.Document()
	}

	writer := representation.NewDocumentWriter()
	d.writeHeader(&writer.BaseWriter)
	doc := writer.Document()
	if d.HasData {
		switch {
		case d.IsCollection:
			data := make([]interface{}, len(d.Data))
			for i, o := range d.Data {
				data[i] = o.object()
			}
			doc.Set(representation.KeywordData, data)
		case d.IsNull || len(d.Data) == 0:
			doc.Set(representation.KeywordData, nil)
		default:
			doc.Set(representation.KeywordData, d.Data[0].object())
		}
	}
	if len(d.Included) > 0 {
		included := make([]interface{}, len(d.Included))
		for i, o := range d.Included {
			included[i] = o.object()
		}
		doc.Set(representation.KeywordIncluded, included)
	}
	return doc
}

func (d *Document) writeHeader(w *representation.BaseWriter) {
	if d.HasMeta {
		w.SetMeta(d.Meta)
	}
	if d.JSONAPI != nil {
		w.SetJSONAPIVersion(d.JSONAPI.Version)
		if d.JSONAPI.HasMeta {
			w.SetJSONAPIMeta(d.JSONAPI.Meta)
		}
	}
	w.SetLinks(d.Links)
	w.SetProfile(d.Profile)
}

// MarshalJSON implements json.Marshaler interface.
func (o *ResourceObject) MarshalJSON() ([]byte, error) {
	return ordered.Marshal(o.object())
}

func (o *ResourceObject) object() *ordered.Map {
	obj := ordered.New()
	obj.Set(representation.KeywordType, o.Type)
	if o.HasID {
		obj.Set(representation.KeywordID, o.ID)
	}
	if len(o.Attributes) > 0 {
		obj.Set(representation.KeywordAttributes, o.Attributes.Object())
	}
	if len(o.Relationships) > 0 {
		relationships := ordered.New()
		for _, rel := range o.Relationships {
			relationships.Set(rel.Name, rel.object())
		}
		obj.Set(representation.KeywordRelationships, relationships)
	}
	if len(o.Links) > 0 {
		obj.Set(representation.KeywordLinks, o.Links.Representation(""))
	}
	if o.HasMeta {
		obj.Set(representation.KeywordMeta, o.Meta)
	}
	return obj
}

func (r *RelationshipObject) object() *ordered.Map {
	obj := ordered.New()
	if len(r.Links) > 0 {
		obj.Set(representation.KeywordLinks, r.Links.Representation(""))
	}
	if r.HasData {
		switch {
		case r.IsCollection:
			data := make([]interface{}, len(r.Data))
			for i, id := range r.Data {
				data[i] = identifierObject(id)
			}
			obj.Set(representation.KeywordData, data)
		case len(r.Data) == 0:
			obj.Set(representation.KeywordData, nil)
		default:
			obj.Set(representation.KeywordData, identifierObject(r.Data[0]))
		}
	}
	if r.HasMeta {
		obj.Set(representation.KeywordMeta, r.Meta)
	}
	return obj
}

func identifierObject(id *schema.Identifier) *ordered.Map {
	obj := ordered.New()
	obj.Set(representation.KeywordType, id.Type)
	obj.Set(representation.KeywordID, id.ID)
	if id.HasMeta {
		obj.Set(representation.KeywordMeta, id.Meta)
	}
	return obj
}
