package parser

import (
	"sort"
	"strings"

	"github.com/neuronlabs/jsonapi/annotation"
)

// Paths is the set of the normalized include paths.
type Paths map[string]struct{}

// NormalizePaths converts the include paths into the set of all the requested paths.
// The path 'a.b.c' requests the paths: 'a', 'a.b' and 'a.b.c'.
func NormalizePaths(paths []string) Paths {
	normalized := Paths{}
	for _, path := range paths {
		if path == "" {
			continue
		}
		var current string
		for _, part := range strings.Split(path, annotation.NestedSeparator) {
			if current == "" {
				current = part
			} else {
				current += annotation.NestedSeparator + part
			}
			normalized[current] = struct{}{}
		}
	}
	return normalized
}

// IsRequested checks if the relationship 'path' is requested.
func (p Paths) IsRequested(path string) bool {
	_, ok := p[path]
	return ok
}

// List gets the sorted normalized paths.
func (p Paths) List() []string {
	list := make([]string, 0, len(p))
	for path := range p {
		list = append(list, path)
	}
	sort.Strings(list)
	return list
}
