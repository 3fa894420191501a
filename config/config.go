package config

import (
	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

var validate = validator.New()

// Config contains general configurations for the jsonapi library.
type Config struct {
	// Encoder defines the default configuration for the Encoders.
	Encoder *Encoder `mapstructure:"encoder" validate:"required"`

	// Decoder defines the configuration for the document decoding.
	Decoder *Decoder `mapstructure:"decoder" validate:"required"`

	// Schema defines the configuration for the struct schemas.
	Schema *Schema `mapstructure:"schema" validate:"required"`

	// I18n is the internationalization configuration.
	I18n *I18nConfig `mapstructure:"i18n"`

	// LogLevel is the current logging level.
	LogLevel string `mapstructure:"log_level" validate:"isdefault|oneof=debug3 debug2 debug info warning error critical"`
}

// Validate checks if the config values are valid. Each invalid value is
// reported as a separate error within the errors.MultiError.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(class.ConfigValueNil, "provided nil config")
	}
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Newf(class.ConfigValueInvalid, "config validation failed: %v", err)
	}
	var multi errors.MultiError
	for _, fieldError := range fieldErrors {
		multi = append(multi, errors.Newf(class.ConfigValueInvalid, "invalid config value: '%v' failed on the '%s' rule", fieldError.Value(), fieldError.Tag()).
			SetPath(fieldError.Namespace()))
	}
	return multi.ErrorOrNil()
}

// Encoder defines the default values used by the Encoder.
// The values set on the Encoder with its With... methods are valid only
// for a single encoding. After that the Encoder restores the values from this config.
type Encoder struct {
	// URLPrefix is prepended to all the links with the sub url values.
	URLPrefix string `mapstructure:"url_prefix"`

	// JSONAPIVersion if not empty adds the 'jsonapi' top level member with given version.
	JSONAPIVersion string `mapstructure:"jsonapi_version"`

	// IncludePaths are the default relationship paths included into the compound documents.
	IncludePaths []string `mapstructure:"include_paths"`

	// FieldSets are the default sparse field sets. The key is the resource type.
	FieldSets map[string][]string `mapstructure:"field_sets"`

	// PrettyPrint sets the indentation of the output documents.
	PrettyPrint bool `mapstructure:"pretty_print"`

	// Indent is the indentation string used when PrettyPrint is set.
	Indent string `mapstructure:"indent"`

	// Depth is the maximum nesting depth of the output document.
	Depth int `mapstructure:"depth" validate:"min=1"`
}

// Decoder defines the configuration for the document decoding.
type Decoder struct {
	// Strict is the flag that defines if the decoding should be in a
	// strict mode that checks if the incoming members are all known.
	Strict bool `mapstructure:"strict"`
}

// Schema defines the configuration for the struct schemas.
type Schema struct {
	// NamingConvention is the naming convention used for the struct schema member names.
	// Allowed values:
	// - camel
	// - lower_camel
	// - snake
	// - kebab
	NamingConvention string `mapstructure:"naming_convention" validate:"isdefault|oneof=camel lower_camel snake kebab"`
}
