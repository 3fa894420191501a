package parser

import (
	"github.com/neuronlabs/jsonapi/schema"
)

type author struct {
	ID        string
	FirstName string
	LastName  string
	Comments  interface{}
}

type comment struct {
	ID     string
	Body   string
	Author interface{}
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
		schema.NewRelationship("comments").WithData(resource.(*author).Comments),
	}
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
		schema.NewRelationship("author").WithData(resource.(*comment).Author).HideRelated(),
	}
}

func testContainer() *schema.Container {
	c := schema.NewContainer()
	c.MustRegister(&author{}, authorSchema{})
	c.MustRegister(&comment{}, commentSchema{})
	return c
}

// authorWithComment creates the author with id 9 having a single comment with id 1 pointing back to the author.
func authorWithComment() (*author, *comment) {
	a := &author{ID: "9", FirstName: "Dan", LastName: "Gebhardt"}
	c := &comment{ID: "1", Body: "Outside every fat man there was an even fatter man trying to close in", Author: a}
	a.Comments = []*comment{c}
	return a, c
}

type sliceIterator struct {
	values []interface{}
	index  int
}

func (s *sliceIterator) Next() bool {
	if s.index >= len(s.values) {
		return false
	}
	s.index++
	return true
}

func (s *sliceIterator) Value() interface{} {
	return s.values[s.index-1]
}
