package schema

import (
	"strings"
)

// Error source members.
const (
	SourcePointer   = "pointer"
	SourceParameter = "parameter"
	SourceHeader    = "header"
)

// ErrorSource is the reference to the source of the error.
type ErrorSource struct {
	// Pointer is the JSON pointer to the value in the request document.
	Pointer string
	// Parameter is the query parameter name that caused the error.
	Parameter string
	// Header is the request header name that caused the error.
	Header string
}

// IsEmpty checks if the source has no member set.
func (s *ErrorSource) IsEmpty() bool {
	return s == nil || (s.Pointer == "" && s.Parameter == "" && s.Header == "")
}

// Error is the jsonapi error object. It implements the error interface so that
// it could be returned as a regular Go error.
type Error struct {
	// ID is a unique identifier for this particular occurrence of a problem.
	ID string
	// AboutLink leads to further details about this particular occurrence of the problem.
	AboutLink *Link
	// TypeLinks identify the type of the error.
	TypeLinks []*Link
	// Status is the HTTP status code applicable to this problem, expressed as a string value.
	Status string
	// Code is an application-specific error code, expressed as a string value.
	Code string
	// Title is a short, human-readable summary of the problem.
	Title string
	// Detail is a human-readable explanation specific to this occurrence of the problem.
	Detail string
	// Source references the source of the error.
	Source *ErrorSource
	// Meta contains non-standard meta-information about the error.
	Meta    interface{}
	HasMeta bool
}

// Error implements error interface.
func (e *Error) Error() string {
	parts := make([]string, 0, 3)
	if e.Status != "" {
		parts = append(parts, e.Status)
	}
	if e.Title != "" {
		parts = append(parts, e.Title)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}
	return "jsonapi error: " + strings.Join(parts, " ")
}

// ErrorOption is the function that sets the optional error members.
type ErrorOption func(e *Error)

// ErrDetail sets the error detail.
func ErrDetail(detail string) ErrorOption {
	return func(e *Error) {
		e.Detail = detail
	}
}

// ErrStatus sets the error status.
func ErrStatus(status string) ErrorOption {
	return func(e *Error) {
		e.Status = status
	}
}

// ErrID sets the error id.
func ErrID(id string) ErrorOption {
	return func(e *Error) {
		e.ID = id
	}
}

// ErrCode sets the error code.
func ErrCode(code string) ErrorOption {
	return func(e *Error) {
		e.Code = code
	}
}

// ErrAboutLink sets the error 'about' link.
func ErrAboutLink(link *Link) ErrorOption {
	return func(e *Error) {
		e.AboutLink = link
	}
}

// ErrTypeLinks sets the error 'type' links.
func ErrTypeLinks(links ...*Link) ErrorOption {
	return func(e *Error) {
		e.TypeLinks = links
	}
}

// ErrMeta sets the error meta.
func ErrMeta(meta interface{}) ErrorOption {
	return func(e *Error) {
		e.Meta = meta
		e.HasMeta = true
	}
}

// ErrorCollection is the ordered collection of the jsonapi errors.
type ErrorCollection []*Error

// Add adds the errors to the collection.
func (c *ErrorCollection) Add(errs ...*Error) *ErrorCollection {
	*c = append(*c, errs...)
	return c
}

// AddDataError adds the error with the '/data' source pointer.
func (c *ErrorCollection) AddDataError(title string, options ...ErrorOption) *ErrorCollection {
	return c.addPointerError("/data", title, options)
}

// AddDataTypeError adds the error with the '/data/type' source pointer.
func (c *ErrorCollection) AddDataTypeError(title string, options ...ErrorOption) *ErrorCollection {
	return c.addPointerError("/data/type", title, options)
}

// AddDataIDError adds the error with the '/data/id' source pointer.
func (c *ErrorCollection) AddDataIDError(title string, options ...ErrorOption) *ErrorCollection {
	return c.addPointerError("/data/id", title, options)
}

// AddAttributesError adds the error with the '/data/attributes' source pointer.
func (c *ErrorCollection) AddAttributesError(title string, options ...ErrorOption) *ErrorCollection {
	return c.addPointerError("/data/attributes", title, options)
}

// AddAttributeError adds the error with the '/data/attributes/{name}' source pointer.
func (c *ErrorCollection) AddAttributeError(name, title string, options ...ErrorOption) *ErrorCollection {
	return c.addPointerError("/data/attributes/"+name, title, options)
}

// AddRelationshipsError adds the error with the '/data/relationships' source pointer.
func (c *ErrorCollection) AddRelationshipsError(title string, options ...ErrorOption) *ErrorCollection {
	return c.addPointerError("/data/relationships", title, options)
}

// AddRelationshipError adds the error with the '/data/relationships/{name}' source pointer.
func (c *ErrorCollection) AddRelationshipError(name, title string, options ...ErrorOption) *ErrorCollection {
	return c.addPointerError("/data/relationships/"+name, title, options)
}

// AddRelationshipTypeError adds the error with the '/data/relationships/{name}/data/type' source pointer.
func (c *ErrorCollection) AddRelationshipTypeError(name, title string, options ...ErrorOption) *ErrorCollection {
	return c.addPointerError("/data/relationships/"+name+"/data/type", title, options)
}

// AddRelationshipIDError adds the error with the '/data/relationships/{name}/data/id' source pointer.
func (c *ErrorCollection) AddRelationshipIDError(name, title string, options ...ErrorOption) *ErrorCollection {
	return c.addPointerError("/data/relationships/"+name+"/data/id", title, options)
}

// AddQueryParameterError adds the error with the query parameter 'name' source.
func (c *ErrorCollection) AddQueryParameterError(name, title string, options ...ErrorOption) *ErrorCollection {
	return c.add(&ErrorSource{Parameter: name}, title, options)
}

func (c *ErrorCollection) addPointerError(pointer, title string, options []ErrorOption) *ErrorCollection {
	return c.add(&ErrorSource{Pointer: pointer}, title, options)
}

func (c *ErrorCollection) add(source *ErrorSource, title string, options []ErrorOption) *ErrorCollection {
	e := &Error{Title: title, Source: source}
	for _, option := range options {
		option(e)
	}
	*c = append(*c, e)
	return c
}
