package representation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/internal/ordered"
	"github.com/neuronlabs/jsonapi/schema"
)

func marshal(t *testing.T, doc *ordered.Map) string {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	return string(data)
}

// TestDocumentWriterData tests writing the primary data.
func TestDocumentWriterData(t *testing.T) {
	resources := parseResources(t, authorWithComment(), "comments")
	require.Len(t, resources, 2)
	filter := NewFieldSetFilter(nil)

	t.Run("Single", func(t *testing.T) {
		w := NewDocumentWriter()
		require.NoError(t, w.AddResourceToData(resources[0], filter))
		assert.Equal(t, `{"data":{"type":"people","id":"9","attributes":{"first_name":"Dan","last_name":"Gebhardt"},`+
			`"relationships":{"comments":{"data":[{"type":"comments","id":"1","meta":"comment-meta"}]}},`+
			`"links":{"self":"/people/9"}}}`, marshal(t, w.Document()))

		err := w.AddResourceToData(resources[0], filter)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.EncodingStructureDataRewrite))
	})

	t.Run("Array", func(t *testing.T) {
		w := NewDocumentWriter()
		w.SetURLPrefix("http://example.com")
		require.NoError(t, w.SetDataAsArray())
		assert.True(t, w.IsDataAnArray())
		assert.Equal(t, `{"data":[]}`, marshal(t, w.Document()))

		require.NoError(t, w.AddResourceToData(resources[1], filter))
		require.NoError(t, w.AddIdentifierToData(resources[1]))
		assert.Equal(t, `{"data":[{"type":"comments","id":"1","attributes":{"body":"First!"},`+
			`"relationships":{"author":{"links":{"self":"http://example.com/comments/1/relationships/author"},"data":{"type":"people","id":"9"},"meta":{"total":1}}},`+
			`"links":{"self":"http://example.com/comments/1"}},`+
			`{"type":"comments","id":"1","meta":"comment-meta"}]}`, marshal(t, w.Document()))

		err := w.SetDataAsArray()
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.EncodingStructureDataMode))
	})

	t.Run("Null", func(t *testing.T) {
		w := NewDocumentWriter()
		require.NoError(t, w.SetNullToData())
		assert.Equal(t, `{"data":null}`, marshal(t, w.Document()))

		err := w.SetNullToData()
		assert.True(t, errors.IsClass(err, class.EncodingStructureDataRewrite))
		err = w.SetDataAsArray()
		assert.True(t, errors.IsClass(err, class.EncodingStructureDataRewrite))
		err = w.AddResourceToData(resources[0], filter)
		assert.True(t, errors.IsClass(err, class.EncodingStructureDataRewrite))
	})

	t.Run("Identifier", func(t *testing.T) {
		w := NewDocumentWriter()
		require.NoError(t, w.AddIdentifierToData(resources[0]))
		assert.Equal(t, `{"data":{"type":"people","id":"9"}}`, marshal(t, w.Document()))
	})

	t.Run("ResourceMeta", func(t *testing.T) {
		a := &author{ID: "3", Meta: map[string]bool{"active": true}}
		w := NewDocumentWriter()
		r := parseResources(t, a)[0]
		require.NoError(t, w.AddResourceToData(r, NewFieldSetFilter(map[string][]string{"people": {}})))
		assert.Equal(t, `{"data":{"type":"people","id":"3","links":{"self":"/people/3"},"meta":{"active":true}}}`, marshal(t, w.Document()))
	})
}

// TestDocumentWriterIncluded tests the included resources deduplication.
func TestDocumentWriterIncluded(t *testing.T) {
	resources := parseResources(t, authorWithComment(), "comments")
	filter := NewFieldSetFilter(map[string][]string{"comments": {"body"}})

	w := NewDocumentWriter()
	require.NoError(t, w.AddResourceToData(resources[0], filter))
	require.NoError(t, w.AddResourceToIncluded(resources[1], filter))
	require.NoError(t, w.AddResourceToIncluded(resources[1], NewFieldSetFilter(nil)))
	require.NoError(t, w.AddResourceToIncluded(resources[0], filter))

	doc := w.Document()
	assert.Equal(t, []string{"data", "included"}, doc.Keys())

	included, ok := doc.Get("included")
	require.True(t, ok)
	require.Len(t, included, 2)
	first := included.([]interface{})[0].(*ordered.Map)
	assert.Equal(t, []string{"type", "id", "attributes", "links"}, first.Keys())
}

// TestDocumentWriterHeader tests the top-level members.
func TestDocumentWriterHeader(t *testing.T) {
	w := NewDocumentWriter()
	w.SetURLPrefix("http://example.com")
	w.SetLinks(schema.Links{
		{Name: schema.LinkSelf, Link: schema.NewLink(true, "/people")},
		{Name: schema.LinkNext, Link: schema.NewLinkWithMeta(false, "http://other.com/next", "m")},
	})
	w.SetProfile([]*schema.Link{schema.NewLink(false, "http://example.com/profiles/flexible-pagination")})
	w.SetJSONAPIVersion("1.1")
	w.SetJSONAPIMeta("v")
	w.SetMeta(map[string]int{"total": 0})
	require.NoError(t, w.SetNullToData())

	assert.Equal(t, `{"meta":{"total":0},"jsonapi":{"version":"1.1","meta":"v"},`+
		`"links":{"self":"http://example.com/people","next":{"href":"http://other.com/next","meta":"m"},`+
		`"profile":["http://example.com/profiles/flexible-pagination"]},"data":null}`, marshal(t, w.Document()))
	assert.Equal(t, "http://example.com", w.URLPrefix())

	empty := NewDocumentWriter()
	empty.SetMeta("only")
	assert.Equal(t, `{"meta":"only"}`, marshal(t, empty.Document()))
}

// TestErrorWriter tests writing the error objects.
func TestErrorWriter(t *testing.T) {
	w := NewErrorWriter()
	w.SetURLPrefix("http://example.com")
	w.SetJSONAPIVersion("1.0")

	var errs schema.ErrorCollection
	errs.AddAttributeError("title", "Invalid title",
		schema.ErrID("e1"),
		schema.ErrStatus("422"),
		schema.ErrCode("T1"),
		schema.ErrDetail("title is too long"),
		schema.ErrAboutLink(schema.NewLink(true, "/errors/e1")),
		schema.ErrTypeLinks(schema.NewLink(false, "http://types.com/validation")),
		schema.ErrMeta(map[string]int{"max": 10}),
	)
	errs.AddQueryParameterError("include", "Invalid include")
	for _, err := range errs {
		w.AddError(err)
	}
	w.AddError(nil)

	assert.Equal(t, `{"jsonapi":{"version":"1.0"},"errors":[`+
		`{"id":"e1","links":{"about":"http://example.com/errors/e1","type":["http://types.com/validation"]},`+
		`"status":"422","code":"T1","title":"Invalid title","detail":"title is too long",`+
		`"source":{"pointer":"/data/attributes/title"},"meta":{"max":10}},`+
		`{"title":"Invalid include","source":{"parameter":"include"}}]}`, marshal(t, w.Document()))

	assert.Equal(t, `{"errors":[]}`, marshal(t, NewErrorWriter().Document()))
}
