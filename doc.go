// Package jsonapi encodes the domain objects into the 'https://jsonapi.org/'
// documents and decodes such documents into the resource graphs.
// The objects are described by the schemas registered within the schema.Container,
// so that the domain types doesn't need to know anything about the jsonapi.
// It consists the following packages:
//   - jsonapi - (root) the Encoder facade, the document Decoder and the DomainError.
//   - schema - the Schema contract, the optional capabilities, the Container registry
//     and the reflection based StructSchema.
//   - parser - walks the resource graph and produces the lazy sequence of parse events.
//   - representation - the field set filters and the document and error writers.
//   - query - parses the 'include', 'fields', 'sort' and 'profile' query parameters.
//   - headers - parses the media types and the 'Accept' header.
//   - config - contains the configurations for all packages.
//   - errors - used as a default error package for the jsonapi packages.
//   - errors/class - contains errors classification system for the jsonapi packages.
//   - log - is the logging interface for the jsonapi based applications.
//   - i18n - is the internationalization support used by the query error messages.
package jsonapi
