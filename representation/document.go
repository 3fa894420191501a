package representation

import (
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/internal/ordered"
	"github.com/neuronlabs/jsonapi/parser"
)

type resourceKey struct {
	resourceType string
	id           string
}

// DocumentWriter writes the resources and identifiers into the data document.
// The primary data is either set once or, after SetDataAsArray, appended.
// The included resources are written once per type and id; the first written wins.
type DocumentWriter struct {
	BaseWriter

	data    interface{}
	dataSet bool
	isArray bool

	included []interface{}
	added    map[resourceKey]struct{}
}

// NewDocumentWriter creates new document writer.
func NewDocumentWriter() *DocumentWriter {
	return &DocumentWriter{added: map[resourceKey]struct{}{}}
}

// SetNullToData sets the primary data to null.
func (w *DocumentWriter) SetNullToData() error {
	if w.dataSet {
		return errors.New(class.EncodingStructureDataRewrite, "document data is already set")
	}
	w.data = nil
	w.dataSet = true
	return nil
}

// SetDataAsArray sets the primary data to an empty array. The following resources
// and identifiers are appended to it.
func (w *DocumentWriter) SetDataAsArray() error {
	if w.isArray {
		return errors.New(class.EncodingStructureDataMode, "document data is already an array")
	}
	if w.dataSet {
		return errors.New(class.EncodingStructureDataRewrite, "document data is already set")
	}
	w.data = []interface{}{}
	w.dataSet = true
	w.isArray = true
	return nil
}

// IsDataAnArray checks if the primary data is an array.
func (w *DocumentWriter) IsDataAnArray() bool {
	return w.isArray
}

// AddIdentifierToData writes the resource identifier object of 'identifier' into primary data.
func (w *DocumentWriter) AddIdentifierToData(identifier parser.ResourceIdentifier) error {
	return w.addToData(identifierRepresentation(identifier))
}

// AddResourceToData writes the 'resource' object filtered with the 'filter' into primary data.
func (w *DocumentWriter) AddResourceToData(resource *parser.Resource, filter Filter) error {
	representation, err := w.resourceRepresentation(resource, filter)
	if err != nil {
		return err
	}
	return w.addToData(representation)
}

// AddResourceToIncluded writes the 'resource' object filtered with the 'filter' into the
// included resources if the resource with the same type and id was not included yet.
func (w *DocumentWriter) AddResourceToIncluded(resource *parser.Resource, filter Filter) error {
	key := resourceKey{resourceType: resource.Type(), id: resource.ID()}
	if _, ok := w.added[key]; ok {
		return nil
	}
	representation, err := w.resourceRepresentation(resource, filter)
	if err != nil {
		return err
	}
	w.added[key] = struct{}{}
	w.included = append(w.included, representation)
	return nil
}

// Document gets the document structure. The members are in order:
// 'meta', 'jsonapi', 'links', 'data', 'included'.
func (w *DocumentWriter) Document() *ordered.Map {
	doc := ordered.New()
	w.writeHeader(doc)
	if w.dataSet {
		doc.Set(KeywordData, w.data)
	}
	if len(w.included) > 0 {
		doc.Set(KeywordIncluded, w.included)
	}
	return doc
}

func (w *DocumentWriter) addToData(representation *ordered.Map) error {
	if w.isArray {
		w.data = append(w.data.([]interface{}), representation)
		return nil
	}
	if w.dataSet {
		return errors.New(class.EncodingStructureDataRewrite, "document data is already set")
	}
	w.data = representation
	w.dataSet = true
	return nil
}

// resourceRepresentation gets the resource object with the members in order:
// 'type', 'id', 'attributes', 'relationships', 'links' and 'meta'. The empty members are omitted.
func (w *DocumentWriter) resourceRepresentation(resource *parser.Resource, filter Filter) (*ordered.Map, error) {
	obj := ordered.New()
	obj.Set(KeywordType, resource.Type())
	if resource.HasID() {
		obj.Set(KeywordID, resource.ID())
	}

	if attributes := filter.Attributes(resource); len(attributes) > 0 {
		obj.Set(KeywordAttributes, attributes.Object())
	}

	relationships, err := filter.Relationships(resource)
	if err != nil {
		return nil, err
	}
	if len(relationships) > 0 {
		relationshipsObj := ordered.New()
		for _, rel := range relationships {
			relObj, err := w.relationshipRepresentation(rel)
			if err != nil {
				return nil, err
			}
			relationshipsObj.Set(rel.Name(), relObj)
		}
		obj.Set(KeywordRelationships, relationshipsObj)
	}

	if resource.HasLinks() {
		obj.Set(KeywordLinks, resource.Links().Representation(w.urlPrefix))
	}
	if meta, ok := resource.ResourceMeta(); ok {
		obj.Set(KeywordMeta, meta)
	}
	return obj, nil
}

// relationshipRepresentation gets the relationship object with the members in order: 'links', 'data', 'meta'.
func (w *DocumentWriter) relationshipRepresentation(rel *parser.Relationship) (*ordered.Map, error) {
	obj := ordered.New()
	if rel.HasLinks() {
		obj.Set(KeywordLinks, rel.Links().Representation(w.urlPrefix))
	}
	if rel.HasData() {
		data, err := rel.Data()
		if err != nil {
			return nil, err
		}
		obj.Set(KeywordData, relationshipDataRepresentation(data))
	}
	if rel.HasMeta() {
		obj.Set(KeywordMeta, rel.Meta())
	}
	return obj, nil
}

func relationshipDataRepresentation(data *parser.RelationshipData) interface{} {
	switch data.Kind() {
	case parser.DataResource:
		return identifierRepresentation(data.Resource())
	case parser.DataIdentifier:
		return identifierRepresentation(data.Identifier())
	case parser.DataCollection:
		elements := make([]interface{}, 0, len(data.Elements()))
		for _, element := range data.Elements() {
			elements = append(elements, identifierRepresentation(element))
		}
		return elements
	}
	return nil
}

// identifierRepresentation gets the resource identifier object: 'type', 'id' and 'meta'.
func identifierRepresentation(identifier parser.ResourceIdentifier) *ordered.Map {
	obj := ordered.New()
	obj.Set(KeywordType, identifier.Type())
	if identifier.HasID() {
		obj.Set(KeywordID, identifier.ID())
	}
	if meta, ok := identifier.IdentifierMeta(); ok {
		obj.Set(KeywordMeta, meta)
	}
	return obj
}
