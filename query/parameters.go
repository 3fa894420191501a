package query

import (
	"net/url"
	"sort"
	"strings"

	"github.com/neuronlabs/jsonapi/annotation"
)

// Query parameter names.
const (
	ParamInclude = "include"
	ParamFields  = "fields"
	ParamSort    = "sort"
	ParamProfile = "profile"
)

// Parameters are the parsed jsonapi query parameters.
type Parameters struct {
	// Include are the include paths split into the relationship names.
	Include [][]string
	// Fields are the sparse field sets. The key is the resource type.
	Fields map[string][]string
	// Sort are the sorting fields in the requested order.
	Sort []SortParameter
	// Profile are the requested profile urls.
	Profile []string
}

// SortParameter is the single sorting field.
type SortParameter struct {
	Field     string
	Ascending bool
}

// String implements fmt.Stringer interface.
func (s SortParameter) String() string {
	if s.Ascending {
		return s.Field
	}
	return "-" + s.Field
}

// IncludePaths gets the dot separated include paths.
func (p *Parameters) IncludePaths() []string {
	paths := make([]string, len(p.Include))
	for i, path := range p.Include {
		paths[i] = strings.Join(path, annotation.NestedSeparator)
	}
	return paths
}

// FormatQuery formats the parameters into url.Values.
// If the optional argument 'q' is provided the parameters are set into it.
// Otherwise it creates new url.Values instance.
func (p *Parameters) FormatQuery(q ...url.Values) url.Values {
	var query url.Values
	if len(q) > 0 {
		query = q[0]
	}
	if query == nil {
		query = url.Values{}
	}

	if len(p.Include) > 0 {
		query.Set(ParamInclude, strings.Join(p.IncludePaths(), annotation.Separator))
	}

	types := make([]string, 0, len(p.Fields))
	for resourceType := range p.Fields {
		types = append(types, resourceType)
	}
	sort.Strings(types)
	for _, resourceType := range types {
		query.Set(fieldsKey(resourceType), strings.Join(p.Fields[resourceType], annotation.Separator))
	}

	if len(p.Sort) > 0 {
		sorts := make([]string, len(p.Sort))
		for i, s := range p.Sort {
			sorts[i] = s.String()
		}
		query.Set(ParamSort, strings.Join(sorts, annotation.Separator))
	}

	if len(p.Profile) > 0 {
		query.Set(ParamProfile, strings.Join(p.Profile, " "))
	}
	return query
}

func fieldsKey(resourceType string) string {
	return ParamFields + "[" + resourceType + "]"
}
