package annotation

// Separators and other symbols.
const (
	// Separator is the symbol used to separate the values for given tag,
	// field set names and include paths.
	// Example: `jsonapi:"flags=noself,norelated"`
	//                               ^
	Separator = ","

	// TagSeparator is the symbol used to separate jsonapi based tags.
	// Example: `jsonapi:"type=attr;name=custom_name"`
	//                             ^
	TagSeparator = ";"

	// TagEqual is the symbol used to set the values for the for given tag.
	// Example: `jsonapi:"type=attr"`
	//                        ^
	TagEqual = '='

	// NestedSeparator is the symbol used as a separator for the relationship paths.
	// Example: comments.author
	//                  ^
	NestedSeparator = "."

	// OpenedBracket is the symbol that opens the query parameter key's type.
	// Example: fields[people]
	//                ^
	OpenedBracket = '['

	// ClosedBracket is the symbol that closes the query parameter key's type.
	// Example: fields[people]
	//                       ^
	ClosedBracket = ']'
)
