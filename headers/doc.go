// Package headers contains the HTTP media type and Accept header parsing
// used for the jsonapi content negotiation.
package headers
