package errors

import (
	"github.com/neuronlabs/jsonapi/errors/class"
)

// ClassError is the interface used for all errors
// that uses classification system.
type ClassError interface {
	error
	// Class gets current error classification.
	Class() class.Class
}

// IsClass checks if given error is of given 'class'.
// MultiError matches if any of its errors is of given class.
func IsClass(err error, c class.Class) bool {
	switch e := err.(type) {
	case ClassError:
		return e.Class() == c
	case MultiError:
		for _, single := range e {
			if IsClass(single, c) {
				return true
			}
		}
	}
	return false
}

// IsMajor checks if given error is classified with provided 'major'.
// MultiError matches if any of its errors is of given major.
func IsMajor(err error, m class.Major) bool {
	switch e := err.(type) {
	case ClassError:
		return e.Class().IsMajor(m)
	case MultiError:
		for _, single := range e {
			if IsMajor(single, m) {
				return true
			}
		}
	}
	return false
}
