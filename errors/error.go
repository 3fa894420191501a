package errors

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/neuronlabs/jsonapi/errors/class"
)

var _ ClassError = &Error{}

// Error is the classified error returned by all the jsonapi packages.
type Error struct {
	// ID identifies the error instance, i.e. to correlate the logs.
	ID uuid.UUID
	// Classification is the error class.
	Classification class.Class
	// Message is the error message returned by the Error method.
	Message string
	// Detail is the additional human readable description.
	Detail string
	// Path is the location of the error: the relationship path within the
	// encoded resource graph or the JSON pointer within the decoded document.
	Path string
}

// New creates new error with given class 'c' and the 'message'.
func New(c class.Class, message string) *Error {
	return &Error{ID: uuid.New(), Classification: c, Message: message}
}

// Newf creates new error with given class 'c' and the formatted message.
func Newf(c class.Class, format string, args ...interface{}) *Error {
	return New(c, fmt.Sprintf(format, args...))
}

// Class implements ClassError interface.
func (e *Error) Class() class.Class {
	return e.Classification
}

// Error implements error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Message + " (at: '" + e.Path + "')"
}

// SetDetail sets the error 'detail' and returns itself.
func (e *Error) SetDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// SetDetailf sets the formatted detail and returns itself.
func (e *Error) SetDetailf(format string, args ...interface{}) *Error {
	return e.SetDetail(fmt.Sprintf(format, args...))
}

// SetPath sets the location of the error and returns itself.
func (e *Error) SetPath(path string) *Error {
	e.Path = path
	return e
}

// WrapDetail prepends the 'detail' to the error detail.
func (e *Error) WrapDetail(detail string) *Error {
	if e.Detail != "" {
		detail += " " + e.Detail
	}
	e.Detail = detail
	return e
}

// WrapDetailf prepends the formatted detail to the error detail.
func (e *Error) WrapDetailf(format string, args ...interface{}) *Error {
	return e.WrapDetail(fmt.Sprintf(format, args...))
}
