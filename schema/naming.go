package schema

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/neuronlabs/jsonapi/config"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// NamingConvention defines how the StructSchema derives the member names
// and the resource types from the Go identifiers.
type NamingConvention int

// The naming conventions, i.e. for the 'FirstName' field:
const (
	// NoConvention keeps the Go identifier: 'FirstName'.
	NoConvention NamingConvention = iota
	// SnakeCase is the 'first_name'.
	SnakeCase
	// CamelCase is the 'FirstName'.
	CamelCase
	// LowerCamelCase is the 'firstName'.
	LowerCamelCase
	// KebabCase is the 'first-name'.
	KebabCase
)

var conventions = []struct {
	name  string
	namer func(string) string
}{
	NoConvention:   {name: "none", namer: func(raw string) string { return raw }},
	SnakeCase:      {name: "snake", namer: strcase.ToSnake},
	CamelCase:      {name: "camel", namer: strcase.ToCamel},
	LowerCamelCase: {name: "lower_camel", namer: strcase.ToLowerCamel},
	KebabCase:      {name: "kebab", namer: strcase.ToKebab},
}

// ParseNamingConvention parses the case insensitive naming convention 'name':
// 'snake', 'camel', 'lower_camel' or 'kebab'.
func ParseNamingConvention(name string) (NamingConvention, error) {
	name = strings.ToLower(name)
	for n, c := range conventions {
		if n != int(NoConvention) && c.name == name {
			return NamingConvention(n), nil
		}
	}
	return NoConvention, errors.Newf(class.SchemaInvalidNaming, "unknown naming convention name: '%s'", name)
}

// ConfigNamingConvention gets the naming convention set in the schema config.
// Nil config or an empty value is the SnakeCase.
func ConfigNamingConvention(cfg *config.Schema) (NamingConvention, error) {
	if cfg == nil || cfg.NamingConvention == "" {
		return SnakeCase, nil
	}
	return ParseNamingConvention(cfg.NamingConvention)
}

// Namer converts the 'raw' Go identifier with the naming convention.
func (n NamingConvention) Namer(raw string) string {
	if !n.valid() {
		return raw
	}
	return conventions[n].namer(raw)
}

// String implements fmt.Stringer interface.
func (n NamingConvention) String() string {
	if !n.valid() {
		return "unknown"
	}
	return conventions[n].name
}

func (n NamingConvention) valid() bool {
	return n >= 0 && int(n) < len(conventions)
}
