package schema

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

type testAuthor struct {
	ID   string
	Name string
}

type testComment struct {
	ID string
}

type testAuthorSchema struct {
	created int
}

func (s *testAuthorSchema) Type() string {
	return "people"
}

func (s *testAuthorSchema) ID(resource interface{}) (string, bool) {
	return resource.(*testAuthor).ID, true
}

func (s *testAuthorSchema) Attributes(resource interface{}, _ Context) Attributes {
	return Attributes{{Name: "name", Value: resource.(*testAuthor).Name}}
}

func (s *testAuthorSchema) Relationships(interface{}, Context) []*RelationshipDescription {
	return nil
}

// TestContainerRegister tests registering the schema sources.
func TestContainerRegister(t *testing.T) {
	t.Run("Instance", func(t *testing.T) {
		c := NewContainer()
		instance := &testAuthorSchema{}
		require.NoError(t, c.Register(&testAuthor{}, instance))

		s, err := c.Schema(&testAuthor{})
		require.NoError(t, err)
		assert.True(t, s == Schema(instance))
	})

	t.Run("Factory", func(t *testing.T) {
		c := NewContainer()
		var calls int
		require.NoError(t, c.Register(testAuthor{}, func() Schema {
			calls++
			return &testAuthorSchema{}
		}))
		assert.Equal(t, 0, calls, "schemas are created lazily")

		first, err := c.Schema(&testAuthor{})
		require.NoError(t, err)
		second, err := c.Schema(testAuthor{})
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		assert.True(t, first == second)
	})

	t.Run("ContainerFactory", func(t *testing.T) {
		c := NewContainer()
		var provided *Container
		require.NoError(t, c.Register(&testAuthor{}, func(container *Container) Schema {
			provided = container
			return &testAuthorSchema{}
		}))
		_, err := c.Schema(&testAuthor{})
		require.NoError(t, err)
		assert.True(t, provided == c)
	})

	t.Run("Type", func(t *testing.T) {
		c := NewContainer()
		require.NoError(t, c.Register(reflect.TypeOf(testAuthor{}), reflect.TypeOf(testAuthorSchema{})))

		s, err := c.Schema(&testAuthor{})
		require.NoError(t, err)
		assert.IsType(t, &testAuthorSchema{}, s)
		assert.Equal(t, "people", s.Type())
	})

	t.Run("Duplicated", func(t *testing.T) {
		c := NewContainer()
		require.NoError(t, c.Register(&testAuthor{}, &testAuthorSchema{}))

		err := c.Register(testAuthor{}, &testAuthorSchema{})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.SchemaDuplicateRegistration))
		assert.Contains(t, err.Error(), "reused")
	})

	t.Run("InvalidSource", func(t *testing.T) {
		c := NewContainer()
		err := c.Register(&testAuthor{}, "people")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.SchemaInvalidSource))

		err = c.Register(&testAuthor{}, reflect.TypeOf(testAuthor{}))
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.SchemaInvalidSource))

		var nilSchema *testAuthorSchema
		err = c.Register(&testAuthor{}, nilSchema)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.SchemaInvalidSource))
	})

	t.Run("NilModel", func(t *testing.T) {
		err := NewContainer().Register(nil, &testAuthorSchema{})
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.SchemaInvalidModel))
	})
}

// TestContainerSchema tests getting the schemas for the resources.
func TestContainerSchema(t *testing.T) {
	c := NewContainer()
	c.MustRegister(&testAuthor{}, &testAuthorSchema{})

	assert.True(t, c.HasSchema(&testAuthor{}))
	assert.True(t, c.HasSchema(testAuthor{}))
	assert.False(t, c.HasSchema(nil))
	assert.False(t, c.HasSchema((*testAuthor)(nil)))
	assert.False(t, c.HasSchema("text"))
	assert.False(t, c.HasSchema(&Identifier{Type: "people", ID: "1"}))

	t.Run("NotRegistered", func(t *testing.T) {
		_, err := c.Schema(42)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.SchemaNotRegistered))
	})

	t.Run("NilFactoryResult", func(t *testing.T) {
		nilContainer := NewContainer()
		require.NoError(t, nilContainer.Register(&testAuthor{}, func() Schema { return nil }))
		require.NoError(t, nilContainer.Register(testComment{}, func(*Container) Schema { return (*testAuthorSchema)(nil) }))

		for _, model := range []interface{}{&testAuthor{}, testComment{}} {
			var err error
			require.NotPanics(t, func() { _, err = nilContainer.Schema(model) })
			require.Error(t, err)
			assert.True(t, errors.IsClass(err, class.SchemaInvalidSource))
		}
	})

	t.Run("Reset", func(t *testing.T) {
		c.Reset()
		assert.False(t, c.HasSchema(&testAuthor{}))
		require.NoError(t, c.Register(&testAuthor{}, &testAuthorSchema{}))
	})
}

// TestSchemaDefaults tests the default optional capabilities.
func TestSchemaDefaults(t *testing.T) {
	s := &testAuthorSchema{}
	author := &testAuthor{ID: "9"}

	assert.Equal(t, "/people/9", SelfSubURL(s, author))

	links := ResourceLinks(s, author)
	self, ok := links.Get(LinkSelf)
	require.True(t, ok)
	assert.Equal(t, "http://example.com/people/9", self.StringRepresentation("http://example.com"))

	assert.Equal(t, "/people/9/relationships/comments", RelationshipSelfLink(s, author, "comments").Value)
	assert.Equal(t, "/people/9/comments", RelationshipRelatedLink(s, author, "comments").Value)
	assert.True(t, IsAddSelfLinkByDefault(s, "comments"))
	assert.True(t, IsAddRelatedLinkByDefault(s, "comments"))

	_, ok = IdentifierMeta(s, author)
	assert.False(t, ok)
	_, ok = ResourceMeta(s, author)
	assert.False(t, ok)
}
