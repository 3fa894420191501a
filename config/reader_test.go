package config

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// TestReadDefaultConfig tests the default config values.
func TestReadDefaultConfig(t *testing.T) {
	var c *Config
	require.NotPanics(t, func() { c = ReadDefaultConfig() })
	require.NotNil(t, c)

	require.NoError(t, c.Validate())
	assert.Equal(t, "info", c.LogLevel)

	t.Run("Encoder", func(t *testing.T) {
		require.NotNil(t, c.Encoder)
		assert.Equal(t, DefaultDepth, c.Encoder.Depth)
		assert.Equal(t, DefaultIndent, c.Encoder.Indent)
		assert.Empty(t, c.Encoder.URLPrefix)
		assert.False(t, c.Encoder.PrettyPrint)
	})

	t.Run("Schema", func(t *testing.T) {
		require.NotNil(t, c.Schema)
		assert.Equal(t, "snake", c.Schema.NamingConvention)
	})

	t.Run("I18n", func(t *testing.T) {
		require.NotNil(t, c.I18n)
		assert.Equal(t, []string{"en"}, c.I18n.SupportedLanguages)
	})
}

// TestReadConfigFile tests reading the config from a file.
func TestReadConfigFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "jsonapi-config")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	t.Run("Valid", func(t *testing.T) {
		path := filepath.Join(dir, "valid.yaml")
		content := `
log_level: debug
encoder:
  url_prefix: http://example.com
  jsonapi_version: "1.1"
  include_paths:
    - comments.author
  field_sets:
    people:
      - first_name
  pretty_print: true
decoder:
  strict: true
`
		require.NoError(t, ioutil.WriteFile(path, []byte(content), 0644))

		c, err := ReadConfigFile(path)
		require.NoError(t, err)

		assert.Equal(t, "debug", c.LogLevel)
		assert.Equal(t, "http://example.com", c.Encoder.URLPrefix)
		assert.Equal(t, "1.1", c.Encoder.JSONAPIVersion)
		assert.Equal(t, []string{"comments.author"}, c.Encoder.IncludePaths)
		assert.Equal(t, []string{"first_name"}, c.Encoder.FieldSets["people"])
		assert.True(t, c.Encoder.PrettyPrint)
		assert.Equal(t, DefaultDepth, c.Encoder.Depth)
		assert.True(t, c.Decoder.Strict)
	})

	t.Run("Invalid", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("log_level: verbose\n"), 0644))

		_, err := ReadConfigFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
	})

	t.Run("MultipleInvalid", func(t *testing.T) {
		path := filepath.Join(dir, "multiple.yaml")
		require.NoError(t, ioutil.WriteFile(path, []byte("log_level: verbose\nschema:\n  naming_convention: pascal\n"), 0644))

		_, err := ReadConfigFile(path)
		require.Error(t, err)
		multi, ok := err.(errors.MultiError)
		require.True(t, ok, "%T", err)
		require.Len(t, multi, 2)
		assert.True(t, errors.IsClass(err, class.ConfigValueInvalid))
		assert.True(t, errors.IsMajor(multi[0], class.MjrConfig))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := ReadNamedConfig("not-existing-config")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigReadNotFound))
	})
}
