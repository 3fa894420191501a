package jsonapi

const (
	// MediaType is the identifier for the JSON API media type
	//
	// see http://jsonapi.org/format/#document-structure
	MediaType = "application/vnd.api+json"

	// Version is the JSON API specification version of the 'jsonapi' object.
	Version = "1.1"
)
