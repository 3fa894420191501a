package representation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/schema"
)

// TestFieldSetFilter tests the sparse field sets filter.
func TestFieldSetFilter(t *testing.T) {
	resources := parseResources(t, authorWithComment(), "comments")
	require.Len(t, resources, 2)
	author, comment := resources[0], resources[1]

	t.Run("PassThrough", func(t *testing.T) {
		f := NewFieldSetFilter(map[string][]string{"comments": {"body"}})
		assert.Equal(t, []string{"first_name", "last_name"}, f.Attributes(author).Names())

		rels, err := f.Relationships(author)
		require.NoError(t, err)
		require.Len(t, rels, 1)
		assert.Equal(t, "comments", rels[0].Name())

		assert.False(t, f.HasFilter("people"))
		assert.True(t, f.ShouldOutputRelationship(comment.Position()))
	})

	t.Run("Allowed", func(t *testing.T) {
		f := NewFieldSetFilter(map[string][]string{"people": {"last_name", "first_name"}})
		assert.Equal(t, []string{"first_name", "last_name"}, f.Attributes(author).Names())

		rels, err := f.Relationships(author)
		require.NoError(t, err)
		assert.Empty(t, rels)
		assert.False(t, f.ShouldOutputRelationship(comment.Position()))
		assert.Len(t, f.AllowedFields("people"), 2)
	})

	t.Run("Relationship", func(t *testing.T) {
		f := NewFieldSetFilter(map[string][]string{"people": {"comments"}})
		assert.Empty(t, f.Attributes(author))

		rels, err := f.Relationships(author)
		require.NoError(t, err)
		assert.Len(t, rels, 1)
		assert.True(t, f.ShouldOutputRelationship(comment.Position()))
	})

	t.Run("Empty", func(t *testing.T) {
		f := NewFieldSetFilter(map[string][]string{"people": {}})
		assert.True(t, f.HasFilter("people"))
		assert.Empty(t, f.Attributes(author))

		rels, err := f.Relationships(author)
		require.NoError(t, err)
		assert.Empty(t, rels)
	})

	t.Run("Root", func(t *testing.T) {
		f := NewFieldSetFilter(map[string][]string{"people": {}})
		assert.True(t, f.ShouldOutputRelationship(schema.Position{}))
	})
}
