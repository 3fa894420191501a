package annotation

// Struct field's flag tags.
const (
	// Flags is the struct field's tag used for defining field flags.
	// Example: `jsonapi:"type=relation;flags=noself,norelated"`
	Flags = "flags"
	// OmitEmpty allows to omit the attribute if it's zero-value.
	OmitEmpty = "omitempty"
	// NoSelf hides the relationship 'self' link.
	NoSelf = "noself"
	// NoRelated hides the relationship 'related' link.
	NoRelated = "norelated"
	// NoData hides the relationship data. Such relationship is still shown with its links.
	NoData = "nodata"
)
