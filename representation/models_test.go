package representation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/parser"
	"github.com/neuronlabs/jsonapi/schema"
)

type author struct {
	ID        string
	FirstName string
	LastName  string
	Comments  []*comment
	Meta      interface{}
}

type comment struct {
	ID     string
	Body   string
	Author *author
}

type authorSchema struct{}

func (authorSchema) Type() string {
	return "people"
}

func (authorSchema) ID(resource interface{}) (string, bool) {
	a := resource.(*author)
	return a.ID, a.ID != ""
}

func (authorSchema) Attributes(resource interface{}, _ schema.Context) schema.Attributes {
	a := resource.(*author)
	return schema.Attributes{
		{Name: "first_name", Value: a.FirstName},
		{Name: "last_name", Value: a.LastName},
	}
}

func (authorSchema) Relationships(resource interface{}, _ schema.Context) []*schema.RelationshipDescription {
	return []*schema.RelationshipDescription{
		schema.NewRelationship("comments").WithData(resource.(*author).Comments).HideSelf().HideRelated(),
	}
}

func (authorSchema) ResourceMeta(resource interface{}) (interface{}, bool) {
	a := resource.(*author)
	return a.Meta, a.Meta != nil
}

type commentSchema struct{}

func (commentSchema) Type() string {
	return "comments"
}

func (commentSchema) ID(resource interface{}) (string, bool) {
	c := resource.(*comment)
	return c.ID, c.ID != ""
}

func (commentSchema) Attributes(resource interface{}, _ schema.Context) schema.Attributes {
	return schema.Attributes{{Name: "body", Value: resource.(*comment).Body}}
}

func (commentSchema) Relationships(resource interface{}, _ schema.Context) []*schema.RelationshipDescription {
	return []*schema.RelationshipDescription{
		schema.NewRelationship("author").WithData(resource.(*comment).Author).HideRelated().WithMeta(map[string]int{"total": 1}),
	}
}

func (commentSchema) IdentifierMeta(interface{}) (interface{}, bool) {
	return "comment-meta", true
}

func testContainer() *schema.Container {
	c := schema.NewContainer()
	c.MustRegister(&author{}, authorSchema{})
	c.MustRegister(&comment{}, commentSchema{})
	return c
}

func authorWithComment() *author {
	a := &author{ID: "9", FirstName: "Dan", LastName: "Gebhardt"}
	a.Comments = []*comment{{ID: "1", Body: "First!", Author: a}}
	return a
}

// parseResources parses the 'data' and gets all the parsed resources.
func parseResources(t *testing.T, data interface{}, paths ...string) []*parser.Resource {
	t.Helper()
	events := parser.New(testContainer(), nil).Parse(data, paths)
	var resources []*parser.Resource
	for events.Next() {
		if r := events.Event().Resource; r != nil {
			resources = append(resources, r)
		}
	}
	require.NoError(t, events.Err())
	return resources
}
