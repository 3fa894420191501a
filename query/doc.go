// Package query parses the jsonapi query parameters: 'include', 'fields[type]',
// 'sort' and 'profile'. The invalid parameters are reported with the
// *jsonapi.DomainError carrying the error objects with the 'source.parameter'.
package query
