package headers

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// qualityPrecision is the number of meaningful quality value digits.
const qualityPrecision = 1000

// AcceptMediaType is the media type range of the Accept header.
type AcceptMediaType struct {
	MediaType
	// Position is the index of the media range within the header.
	Position int
	// Quality is the 'q' parameter value in range [0, 1].
	Quality float64
}

// NewAcceptMediaType creates new accept media type at the 'position' with the 'quality'.
func NewAcceptMediaType(position int, mediaType, subType string, parameters map[string]string, quality float64) (*AcceptMediaType, error) {
	m, err := NewMediaType(mediaType, subType, parameters)
	if err != nil {
		return nil, err
	}
	if position < 0 {
		return nil, errors.Newf(class.HeadersInvalidParameter, "invalid media type position: %d", position)
	}
	if math.IsNaN(quality) || quality < 0 || quality > 1 {
		return nil, errors.Newf(class.HeadersInvalidParameter, "invalid media type quality: %v", quality)
	}
	return &AcceptMediaType{
		MediaType: *m,
		Position:  position,
		Quality:   math.Floor(quality*qualityPrecision) / qualityPrecision,
	}, nil
}

// AcceptMediaTypes are the accept media types sorted by preference.
type AcceptMediaTypes []*AcceptMediaType

// Len implements sort.Interface.
func (a AcceptMediaTypes) Len() int {
	return len(a)
}

// Swap implements sort.Interface.
func (a AcceptMediaTypes) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

// Less implements sort.Interface. The more preferred media type has greater quality,
// concrete type, concrete subtype, parameters and lower position.
func (a AcceptMediaTypes) Less(i, j int) bool {
	return compareAccept(a[i], a[j]) < 0
}

// Match gets the first, most preferred media range the 'mediaType' matches to.
func (a AcceptMediaTypes) Match(mediaType *MediaType) (*AcceptMediaType, bool) {
	for _, accept := range a {
		if accept.Quality > 0 && mediaType.MatchesTo(&accept.MediaType) {
			return accept, true
		}
	}
	return nil, false
}

// ParseAcceptHeader parses the Accept header 'value' into the media types sorted by preference.
func ParseAcceptHeader(value string) (AcceptMediaTypes, error) {
	if strings.TrimSpace(value) == "" {
		return nil, errors.New(class.HeadersInvalidMediaType, "empty accept header")
	}

	ranges := splitOutsideQuotes(value, ',')
	accepts := make(AcceptMediaTypes, 0, len(ranges))
	for position, mediaRange := range ranges {
		fields := splitOutsideQuotes(mediaRange, ';')
		mediaType, subType, err := splitMediaType(fields[0])
		if err != nil {
			return nil, err
		}
		parameters, quality, err := qualityAndParameters(fields[1:])
		if err != nil {
			return nil, err
		}
		accept, err := NewAcceptMediaType(position, mediaType, subType, parameters, quality)
		if err != nil {
			return nil, err
		}
		accepts = append(accepts, accept)
	}
	sort.Sort(accepts)
	return accepts, nil
}

// qualityAndParameters gets the media parameters and the quality. The first 'q'
// parameter separates the media parameters from the accept extension parameters.
func qualityAndParameters(fields []string) (map[string]string, float64, error) {
	var (
		parameters map[string]string
		quality    = 1.0
		qFound     bool
	)
	for _, field := range fields {
		if field == "" {
			continue
		}
		key, value, err := splitParameter(field)
		if err != nil {
			return nil, 0, err
		}
		if qFound {
			continue
		}
		if key == "q" {
			if quality, err = strconv.ParseFloat(value, 64); err != nil {
				return nil, 0, errors.Newf(class.HeadersInvalidParameter, "invalid quality value: '%s'", value)
			}
			qFound = true
			continue
		}
		if parameters == nil {
			parameters = map[string]string{}
		}
		parameters[key] = value
	}
	return parameters, quality, nil
}

func compareAccept(lhs, rhs *AcceptMediaType) int {
	if diff := lhs.Quality - rhs.Quality; math.Abs(diff) >= 1.0/qualityPrecision {
		if diff > 0 {
			return -1
		}
		return 1
	}
	if c := compareWildcard(lhs.Type, rhs.Type); c != 0 {
		return c
	}
	if c := compareWildcard(lhs.SubType, rhs.SubType); c != 0 {
		return c
	}
	if c := boolInt(len(lhs.Parameters) == 0) - boolInt(len(rhs.Parameters) == 0); c != 0 {
		return c
	}
	return lhs.Position - rhs.Position
}

// compareWildcard orders the concrete values before the wildcards.
func compareWildcard(lhs, rhs string) int {
	return boolInt(rhs != Wildcard) - boolInt(lhs != Wildcard)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func splitOutsideQuotes(value string, separator byte) []string {
	var (
		parts   []string
		start   int
		inQuote bool
	)
	for i := 0; i < len(value); i++ {
		switch value[i] {
		case '"':
			inQuote = !inQuote
		case separator:
			if !inQuote {
				parts = append(parts, value[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, value[start:])
}
