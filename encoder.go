package jsonapi

import (
	"bytes"
	"encoding/json"

	"github.com/neuronlabs/jsonapi/config"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/internal/ordered"
	"github.com/neuronlabs/jsonapi/log"
	"github.com/neuronlabs/jsonapi/parser"
	"github.com/neuronlabs/jsonapi/representation"
	"github.com/neuronlabs/jsonapi/schema"
)

var encoderLogger = log.NewModuleLogger("encoder")

// Encoder encodes the domain objects into the jsonapi documents.
// The With... methods set the values used only by the next encoding. After each
// encoding the encoder restores the values from its config.
// The Encoder is not safe for concurrent use. The schema container could be shared.
type Encoder struct {
	container *schema.Container
	config    *config.Encoder
	logger    *log.ModuleLogger

	urlPrefix      string
	includePaths   []string
	fieldSets      map[string][]string
	filter         representation.Filter
	links          schema.Links
	profile        []*schema.Link
	meta           interface{}
	hasMeta        bool
	jsonAPIVersion string
	jsonAPIMeta    interface{}
	hasJSONAPIMeta bool
	prettyPrint    bool
	indent         string
	depth          int
}

// NewEncoder creates new encoder for the schemas registered in the 'container'.
func NewEncoder(container *schema.Container, options ...Option) *Encoder {
	e := &Encoder{
		container: container,
		config:    config.DefaultEncoder(),
		logger:    encoderLogger,
	}
	for _, option := range options {
		option(e)
	}
	return e.Reset()
}

// Container gets the encoder schema container.
func (e *Encoder) Container() *schema.Container {
	return e.container
}

// Reset restores the encoding values from the encoder config.
func (e *Encoder) Reset() *Encoder {
	e.urlPrefix = e.config.URLPrefix
	e.includePaths = e.config.IncludePaths
	e.fieldSets = e.config.FieldSets
	e.filter = nil
	e.links = nil
	e.profile = nil
	e.meta, e.hasMeta = nil, false
	e.jsonAPIVersion = e.config.JSONAPIVersion
	e.jsonAPIMeta, e.hasJSONAPIMeta = nil, false
	e.prettyPrint = e.config.PrettyPrint
	e.indent = e.config.Indent
	e.depth = e.config.Depth
	if e.depth <= 0 {
		e.depth = config.DefaultDepth
	}
	return e
}

// WithURLPrefix sets the prefix of the sub url links.
func (e *Encoder) WithURLPrefix(prefix string) *Encoder {
	e.urlPrefix = prefix
	return e
}

// WithIncludedPaths sets the relationship paths of the included resources.
func (e *Encoder) WithIncludedPaths(paths ...string) *Encoder {
	e.includePaths = paths
	return e
}

// WithFieldSets sets the sparse field sets. The key is the resource type.
func (e *Encoder) WithFieldSets(fieldSets map[string][]string) *Encoder {
	e.fieldSets = fieldSets
	return e
}

// WithFieldSetFilter sets the custom filter of the resource fields.
// By default the representation.FieldSetFilter of the field sets is used.
func (e *Encoder) WithFieldSetFilter(filter representation.Filter) *Encoder {
	e.filter = filter
	return e
}

// WithLinks adds the top-level links. The links with the same names are replaced.
func (e *Encoder) WithLinks(links schema.Links) *Encoder {
	e.links = e.links.Merge(links)
	return e
}

// WithProfile sets the top-level 'profile' links.
func (e *Encoder) WithProfile(links ...*schema.Link) *Encoder {
	e.profile = links
	return e
}

// WithMeta sets the top-level meta.
func (e *Encoder) WithMeta(meta interface{}) *Encoder {
	e.meta = meta
	e.hasMeta = true
	return e
}

// WithJSONAPIVersion sets the 'jsonapi' object version.
func (e *Encoder) WithJSONAPIVersion(version string) *Encoder {
	e.jsonAPIVersion = version
	return e
}

// WithJSONAPIMeta sets the 'jsonapi' object meta.
func (e *Encoder) WithJSONAPIMeta(meta interface{}) *Encoder {
	e.jsonAPIMeta = meta
	e.hasJSONAPIMeta = true
	return e
}

// WithEncodeOptions sets the output formatting. The 'indent' is used only if 'prettyPrint' is set.
func (e *Encoder) WithEncodeOptions(prettyPrint bool, indent string) *Encoder {
	e.prettyPrint = prettyPrint
	e.indent = indent
	return e
}

// WithEncodeDepth sets the maximum nesting depth of the output document.
// Non positive values are ignored.
func (e *Encoder) WithEncodeDepth(depth int) *Encoder {
	if depth <= 0 {
		e.logger.Warningf("Invalid encode depth: %d. Using: %d", depth, e.depth)
		return e
	}
	e.depth = depth
	return e
}

// WithRelationshipSelfLink adds the top-level 'self' link of the 'resource' relationship 'name'.
func (e *Encoder) WithRelationshipSelfLink(resource interface{}, name string) error {
	s, err := e.container.Schema(resource)
	if err != nil {
		return err
	}
	e.WithLinks(schema.Links{{Name: schema.LinkSelf, Link: schema.RelationshipSelfLink(s, resource, name)}})
	return nil
}

// WithRelationshipRelatedLink adds the top-level 'related' link of the 'resource' relationship 'name'.
func (e *Encoder) WithRelationshipRelatedLink(resource interface{}, name string) error {
	s, err := e.container.Schema(resource)
	if err != nil {
		return err
	}
	e.WithLinks(schema.Links{{Name: schema.LinkRelated, Link: schema.RelationshipRelatedLink(s, resource, name)}})
	return nil
}

// EncodeData encodes the 'data' into the jsonapi document. The 'data' is either a resource
// with registered schema, a schema.Identifier, a slice, array or schema.Iterator of these, or nil.
func (e *Encoder) EncodeData(data interface{}) ([]byte, error) {
	defer e.Reset()

	doc, err := e.dataDocument(data, false)
	if err != nil {
		return nil, err
	}
	return e.marshal(doc)
}

// EncodeIdentifiers encodes the 'data' resources as the resource identifiers.
// If any include paths are set the resources are also added to the included resources.
func (e *Encoder) EncodeIdentifiers(data interface{}) ([]byte, error) {
	defer e.Reset()

	doc, err := e.dataDocument(data, true)
	if err != nil {
		return nil, err
	}
	return e.marshal(doc)
}

// EncodeError encodes the single error into the errors document.
func (e *Encoder) EncodeError(err *schema.Error) ([]byte, error) {
	return e.EncodeErrors(err)
}

// EncodeErrors encodes the errors into the errors document.
func (e *Encoder) EncodeErrors(errs ...*schema.Error) ([]byte, error) {
	defer e.Reset()

	writer := representation.NewErrorWriter()
	e.writeHeader(&writer.BaseWriter)
	for _, err := range errs {
		writer.AddError(err)
	}
	e.logger.Debug2f("Encoding: %d errors", len(errs))
	return e.marshal(writer.Document())
}

// EncodeMeta encodes the meta only document.
func (e *Encoder) EncodeMeta(meta interface{}) ([]byte, error) {
	defer e.Reset()

	e.WithMeta(meta)
	writer := representation.NewDocumentWriter()
	e.writeHeader(&writer.BaseWriter)
	return e.marshal(writer.Document())
}

func (e *Encoder) dataDocument(data interface{}, identifiers bool) (*ordered.Map, error) {
	filter := e.filter
	if filter == nil {
		filter = representation.NewFieldSetFilter(e.fieldSets)
	}
	writer := representation.NewDocumentWriter()
	e.writeHeader(&writer.BaseWriter)

	expectIncluded := len(e.includePaths) > 0
	events := parser.New(e.container, e.fieldSets).Parse(data, e.includePaths)
	for events.Next() {
		var err error
		event := events.Event()

		switch event.Kind {
		case parser.EventCollection:
			err = writer.SetDataAsArray()
		case parser.EventNull:
			err = writer.SetNullToData()
		case parser.EventIdentifier:
			err = writer.AddIdentifierToData(event.Identifier)
		case parser.EventResource:
			resource := event.Resource
			switch {
			case resource.Position().HasParent():
				if filter.ShouldOutputRelationship(resource.Position()) {
					err = writer.AddResourceToIncluded(resource, filter)
				}
			case identifiers:
				if err = writer.AddIdentifierToData(resource); err == nil && expectIncluded {
					err = writer.AddResourceToIncluded(resource, filter)
				}
			default:
				err = writer.AddResourceToData(resource, filter)
			}
		}
		if err != nil {
			e.logger.Debugf("Writing event: '%s' failed: %v", event.Kind, err)
			return nil, err
		}
	}
	if err := events.Err(); err != nil {
		return nil, err
	}
	return writer.Document(), nil
}

func (e *Encoder) writeHeader(writer *representation.BaseWriter) {
	writer.SetURLPrefix(e.urlPrefix)
	if e.hasMeta {
		writer.SetMeta(e.meta)
	}
	if e.jsonAPIVersion != "" {
		writer.SetJSONAPIVersion(e.jsonAPIVersion)
	}
	if e.hasJSONAPIMeta {
		writer.SetJSONAPIMeta(e.jsonAPIMeta)
	}
	if len(e.links) > 0 {
		writer.SetLinks(e.links)
	}
	if len(e.profile) > 0 {
		writer.SetProfile(e.profile)
	}
}

func (e *Encoder) marshal(doc *ordered.Map) ([]byte, error) {
	data, err := ordered.Marshal(doc)
	if err != nil {
		return nil, errors.Newf(class.EncodingOutput, "marshaling document failed: %v", err)
	}
	if depth := ordered.Depth(data); depth > e.depth {
		return nil, errors.Newf(class.EncodingDepthExceeded, "document depth: %d exceeds the limit: %d", depth, e.depth)
	}
	if !e.prettyPrint {
		return data, nil
	}
	buf := &bytes.Buffer{}
	if err = json.Indent(buf, data, "", e.indent); err != nil {
		return nil, errors.Newf(class.EncodingOutput, "indenting document failed: %v", err)
	}
	return buf.Bytes(), nil
}
