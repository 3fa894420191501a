package ordered

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMap tests the ordered map functions.
func TestMap(t *testing.T) {
	m := New()
	m.Set("type", "people")
	m.Set("id", "9")
	m.Set("attributes", map[string]interface{}{"name": "Dan"})

	assert.Equal(t, []string{"type", "id", "attributes"}, m.Keys())
	assert.Equal(t, 3, m.Len())

	t.Run("Overwrite", func(t *testing.T) {
		m.Set("type", "authors")
		assert.Equal(t, []string{"type", "id", "attributes"}, m.Keys())

		v, ok := m.Get("type")
		require.True(t, ok)
		assert.Equal(t, "authors", v)
	})

	t.Run("Marshal", func(t *testing.T) {
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.Equal(t, `{"type":"authors","id":"9","attributes":{"name":"Dan"}}`, string(data))
	})

	t.Run("Delete", func(t *testing.T) {
		m.Delete("id")
		assert.False(t, m.Has("id"))
		assert.Equal(t, []string{"type", "attributes"}, m.Keys())
	})

	t.Run("NoHTMLEscape", func(t *testing.T) {
		links := New()
		links.Set("self", "http://example.com/?a=1&b=2")
		attributes := New()
		attributes.Set("title", "<b>A&B</b>")
		links.Set("meta", attributes)

		data, err := Marshal(links)
		require.NoError(t, err)
		assert.Equal(t, `{"self":"http://example.com/?a=1&b=2","meta":{"title":"<b>A&B</b>"}}`, string(data))
	})
}

// TestMapUnmarshal tests decoding json objects with the key order.
func TestMapUnmarshal(t *testing.T) {
	m := New()
	err := json.Unmarshal([]byte(`{"z":1,"a":{"y":true,"b":null},"m":[{"k":"v"},2]}`), m)
	require.NoError(t, err)

	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())

	nested, ok := m.Get("a")
	require.True(t, ok)
	require.IsType(t, &Map{}, nested)
	assert.Equal(t, []string{"y", "b"}, nested.(*Map).Keys())

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":{"y":true,"b":null},"m":[{"k":"v"},2]}`, string(data))

	t.Run("NotObject", func(t *testing.T) {
		assert.Error(t, json.Unmarshal([]byte(`[1,2]`), New()))
	})
}

// TestDepth tests the json nesting depth computation.
func TestDepth(t *testing.T) {
	assert.Equal(t, 0, Depth([]byte(`"text"`)))
	assert.Equal(t, 1, Depth([]byte(`{"data":null}`)))
	assert.Equal(t, 3, Depth([]byte(`{"data":[{"type":"a"}]}`)))
	assert.Equal(t, 1, Depth([]byte(`{"data":"{[\"{"}`)))
}
