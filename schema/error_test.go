package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestErrorCollection tests adding the errors with their sources.
func TestErrorCollection(t *testing.T) {
	var errs ErrorCollection
	errs.AddDataError("invalid data", ErrStatus("422")).
		AddDataTypeError("invalid type").
		AddDataIDError("invalid id").
		AddAttributesError("invalid attributes").
		AddAttributeError("title", "invalid title", ErrDetail("too long"), ErrCode("T1")).
		AddRelationshipsError("invalid relationships").
		AddRelationshipError("author", "invalid author").
		AddRelationshipTypeError("author", "invalid author type").
		AddRelationshipIDError("author", "invalid author id").
		AddQueryParameterError("include", "invalid include")

	require.Len(t, errs, 10)

	pointers := []string{
		"/data",
		"/data/type",
		"/data/id",
		"/data/attributes",
		"/data/attributes/title",
		"/data/relationships",
		"/data/relationships/author",
		"/data/relationships/author/data/type",
		"/data/relationships/author/data/id",
	}
	for i, pointer := range pointers {
		assert.Equal(t, pointer, errs[i].Source.Pointer)
	}
	assert.Equal(t, "include", errs[9].Source.Parameter)
	assert.Empty(t, errs[9].Source.Pointer)

	assert.Equal(t, "422", errs[0].Status)
	assert.Equal(t, "too long", errs[4].Detail)
	assert.Equal(t, "T1", errs[4].Code)
	assert.Equal(t, "jsonapi error: invalid title too long", errs[4].Error())
}

// TestErrorOptions tests the optional error members.
func TestErrorOptions(t *testing.T) {
	var errs ErrorCollection
	errs.Add(&Error{Title: "first"})
	errs.AddDataError("second",
		ErrID("2"),
		ErrAboutLink(NewLink(false, "http://about")),
		ErrTypeLinks(NewLink(false, "http://type")),
		ErrMeta(map[string]int{"retry": 1}),
	)
	require.Len(t, errs, 2)

	e := errs[1]
	assert.Equal(t, "2", e.ID)
	assert.Equal(t, "http://about", e.AboutLink.Value)
	require.Len(t, e.TypeLinks, 1)
	assert.True(t, e.HasMeta)

	assert.True(t, errs[0].Source.IsEmpty())
	assert.False(t, e.Source.IsEmpty())
}
