package jsonapi

import (
	"github.com/neuronlabs/jsonapi/schema"
)

type author struct {
	ID        string
	FirstName string
	LastName  string
	Comments  []*comment
}

type comment struct {
	ID     string
	Body   string
	Author *author
}

// defaultLinksOff turns off the default relationship links.
type defaultLinksOff struct{}

func (defaultLinksOff) IsAddSelfLinkInRelationshipByDefault(string) bool {
	return false
}

func (defaultLinksOff) IsAddRelatedLinkInRelationshipByDefault(string) bool {
	return false
}

type authorSchema struct {
	defaultLinksOff
}

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
	a := resource.(*author)
	return []*schema.RelationshipDescription{
		schema.NewRelationship("comments").WithData(a.Comments),
	}
}

type commentSchema struct {
	defaultLinksOff
}

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
	c := resource.(*comment)
	desc := schema.NewRelationship("author")
	if c.Author == nil {
		return []*schema.RelationshipDescription{desc.WithData(nil)}
	}
	return []*schema.RelationshipDescription{desc.WithData(c.Author)}
}

func (commentSchema) Links(interface{}) schema.Links {
	return nil
}

type city struct {
	ID   int
	Name string `jsonapi:"type=attr"`
}

// citySchema is the struct schema without the resource links.
type citySchema struct {
	*schema.StructSchema
}

func (citySchema) Links(interface{}) schema.Links {
	return nil
}

func testContainer() *schema.Container {
	c := schema.NewContainer()
	c.MustRegister(&author{}, authorSchema{})
	c.MustRegister(&comment{}, commentSchema{})

	cities, err := schema.NewStructSchema(&city{}, schema.SnakeCase)
	if err != nil {
		panic(err)
	}
	c.MustRegister(&city{}, citySchema{StructSchema: cities})
	return c
}

// authorWithComment creates the author with id 9 having a single comment with id 1 pointing back to the author.
func authorWithComment() *author {
	a := &author{ID: "9", FirstName: "Dan", LastName: "Gebhardt"}
	a.Comments = []*comment{{ID: "1", Body: "First!", Author: a}}
	return a
}
