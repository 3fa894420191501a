package jsonapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/neuronlabs/jsonapi/schema"
)

// HTTP status codes of the domain errors.
const (
	CodeBadRequest           = http.StatusBadRequest
	CodeForbidden            = http.StatusForbidden
	CodeNotAcceptable        = http.StatusNotAcceptable
	CodeConflict             = http.StatusConflict
	CodeUnsupportedMediaType = http.StatusUnsupportedMediaType
)

// DomainError carries the jsonapi error objects with the HTTP status code
// to the application boundary where it is encoded with Encoder.EncodeErrors.
type DomainError struct {
	Errors   schema.ErrorCollection
	HTTPCode int
}

// NewDomainError creates the domain error with given HTTP 'code' and the 'errs'.
// Zero 'code' is the 400 Bad Request.
func NewDomainError(code int, errs ...*schema.Error) *DomainError {
	if code == 0 {
		code = CodeBadRequest
	}
	collection := make(schema.ErrorCollection, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			collection = append(collection, err)
		}
	}
	return &DomainError{Errors: collection, HTTPCode: code}
}

// Error implements error interface.
func (d *DomainError) Error() string {
	sb := &strings.Builder{}
	sb.WriteString("jsonapi domain error: ")
	sb.WriteString(strconv.Itoa(d.HTTPCode))
	for i, err := range d.Errors {
		if i == 0 {
			sb.WriteString(" - ")
		} else {
			sb.WriteString(", ")
		}
		if err.Title != "" {
			sb.WriteString(err.Title)
		} else {
			sb.WriteString(err.Detail)
		}
	}
	return sb.String()
}
