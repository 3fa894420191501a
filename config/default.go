package config

const (
	// DefaultDepth is the default maximum output document nesting depth.
	DefaultDepth = 512
	// DefaultIndent is the default pretty print indentation.
	DefaultIndent = "  "
)

// DefaultEncoder returns default encoder configuration.
func DefaultEncoder() *Encoder {
	return &Encoder{
		Depth:     DefaultDepth,
		Indent:    DefaultIndent,
		FieldSets: map[string][]string{},
	}
}
