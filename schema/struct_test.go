package schema

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/config"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

type Timestamps struct {
	CreatedAt time.Time `jsonapi:"type=attr;flags=omitempty"`
}

type BlogPost struct {
	ID    int
	Title string
	Timestamps
	Author   *testAuthor    `jsonapi:"type=relation;flags=norelated"`
	Comments []*testAuthor  `jsonapi:"type=relation;name=replies"`
	Stats    map[string]int `jsonapi:"type=meta"`
	Secret   string         `jsonapi:"-"`
	internal string
}

type City struct {
	Code string `jsonapi:"type=primary;collection=cities"`
	Name string `jsonapi:"type=attr;name=city_name"`
}

// TestStructSchema tests the struct schema mapping.
func TestStructSchema(t *testing.T) {
	s, err := NewStructSchema(&BlogPost{}, SnakeCase)
	require.NoError(t, err)

	assert.Equal(t, "blog_posts", s.Type())

	post := &BlogPost{ID: 3, Title: "Hello", Author: &testAuthor{ID: "9"}, Secret: "x", internal: "y"}

	t.Run("ID", func(t *testing.T) {
		id, ok := s.ID(post)
		require.True(t, ok)
		assert.Equal(t, "3", id)

		_, ok = s.ID(&BlogPost{})
		assert.False(t, ok)
	})

	t.Run("Attributes", func(t *testing.T) {
		attrs := s.Attributes(post, nil)
		assert.Equal(t, []string{"title"}, attrs.Names())

		post.CreatedAt = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		attrs = s.Attributes(post, nil)
		assert.Equal(t, []string{"title", "created_at"}, attrs.Names())
	})

	t.Run("Relationships", func(t *testing.T) {
		rels := s.Relationships(post, nil)
		require.Len(t, rels, 2)

		assert.Equal(t, "author", rels[0].Name)
		assert.True(t, rels[0].HasData)
		assert.Equal(t, post.Author, rels[0].Data)
		assert.Equal(t, LinkHide, rels[0].Related)
		assert.Equal(t, LinkDefault, rels[0].Self)

		assert.Equal(t, "replies", rels[1].Name)
		assert.True(t, rels[1].HasData)

		post.Author = nil
		rels = s.Relationships(post, nil)
		assert.True(t, rels[0].HasData)
		assert.Nil(t, rels[0].Data)
	})

	t.Run("Meta", func(t *testing.T) {
		_, ok := s.ResourceMeta(post)
		assert.False(t, ok)

		post.Stats = map[string]int{"views": 10}
		meta, ok := s.ResourceMeta(post)
		require.True(t, ok)
		assert.Equal(t, post.Stats, meta)
	})

	t.Run("Collection", func(t *testing.T) {
		city, err := NewStructSchema(City{}, KebabCase)
		require.NoError(t, err)
		assert.Equal(t, "cities", city.Type())

		attrs := city.Attributes(City{Code: "WAW", Name: "Warsaw"}, nil)
		assert.Equal(t, Attributes{{Name: "city_name", Value: "Warsaw"}}, attrs)
	})

	t.Run("Container", func(t *testing.T) {
		c := NewContainer()
		require.NoError(t, c.RegisterStruct(&City{}, SnakeCase))
		registered, err := c.Schema(&City{})
		require.NoError(t, err)
		assert.Equal(t, "cities", registered.Type())
	})
}

// TestStructSchemaInvalid tests the struct schema mapping failures.
func TestStructSchemaInvalid(t *testing.T) {
	type noPrimary struct {
		Name string
	}
	type unknownFlag struct {
		ID   string
		Name string `jsonapi:"type=attr;flags=unknown"`
	}
	type doublePrimary struct {
		First  string `jsonapi:"type=primary"`
		Second string `jsonapi:"type=primary"`
	}
	type emptyRelation struct {
		ID     string
		Author *testAuthor `jsonapi:"type=relation;flags=nodata,noself,norelated"`
	}

	t.Run("NotStruct", func(t *testing.T) {
		_, err := NewStructSchema("text", SnakeCase)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.SchemaInvalidModel))
	})

	t.Run("NoPrimary", func(t *testing.T) {
		_, err := NewStructSchema(noPrimary{}, SnakeCase)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.SchemaInvalidModel))
	})

	for name, model := range map[string]interface{}{
		"UnknownFlag":   unknownFlag{},
		"DoublePrimary": doublePrimary{},
		"EmptyRelation": emptyRelation{},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewStructSchema(model, SnakeCase)
			require.Error(t, err)
			assert.True(t, errors.IsClass(err, class.SchemaInvalidTag))
		})
	}
}

// TestNamingConvention tests the naming conventions.
func TestNamingConvention(t *testing.T) {
	for name, expected := range map[string]string{
		"snake":       "first_name",
		"camel":       "FirstName",
		"lower_camel": "firstName",
		"kebab":       "first-name",
	} {
		t.Run(name, func(t *testing.T) {
			n, err := ParseNamingConvention(name)
			require.NoError(t, err)
			assert.Equal(t, name, n.String())
			assert.Equal(t, expected, n.Namer("FirstName"))
		})
	}

	_, err := ParseNamingConvention("pascal")
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.SchemaInvalidNaming))

	t.Run("Config", func(t *testing.T) {
		n, err := ConfigNamingConvention(nil)
		require.NoError(t, err)
		assert.Equal(t, SnakeCase, n)

		n, err = ConfigNamingConvention(&config.Schema{NamingConvention: "kebab"})
		require.NoError(t, err)
		assert.Equal(t, KebabCase, n)

		assert.Equal(t, "FirstName", NoConvention.Namer("FirstName"))
	})
}

// TestExtractFieldTags tests the struct field tag extraction.
func TestExtractFieldTags(t *testing.T) {
	type model struct {
		Field string `jsonapi:"type=attr;name=custom;flags=omitempty,noself"`
		Skip  string `jsonapi:"-"`
		None  string
	}
	typ := reflect.TypeOf(model{})

	tags := ExtractFieldTags(typ.Field(0))
	require.Len(t, tags, 3)
	assert.Equal(t, "type", tags[0].Key)
	assert.Equal(t, []string{"attr"}, tags[0].Values)
	assert.Equal(t, "name", tags[1].Key)
	assert.Equal(t, []string{"custom"}, tags[1].Values)
	assert.Equal(t, []string{"omitempty", "noself"}, tags[2].Values)

	tags = ExtractFieldTags(typ.Field(1))
	require.Len(t, tags, 1)
	assert.Equal(t, "-", tags[0].Key)

	assert.Nil(t, ExtractFieldTags(typ.Field(2)))
}
