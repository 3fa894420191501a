// Package errors provides classified error handling primitives.
//
// Each error carries a unique instance ID and a Class from the 'errors/class'
// package, so that callers could check the error kind with IsClass
// instead of comparing messages.
package errors
