package headers

import (
	"sort"
	"strings"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// Wildcard matches any type, subtype or parameter value.
const Wildcard = "*"

// caseInsensitiveParameters are the parameters with case-insensitive values.
var caseInsensitiveParameters = map[string]struct{}{
	"charset": {},
}

// MediaType is the media type with its parameters. The type, subtype and
// parameter names are compared case-insensitive.
type MediaType struct {
	Type       string
	SubType    string
	Parameters map[string]string
}

// NewMediaType creates new media type.
func NewMediaType(mediaType, subType string, parameters map[string]string) (*MediaType, error) {
	mediaType = strings.TrimSpace(mediaType)
	if mediaType == "" {
		return nil, errors.New(class.HeadersInvalidMediaType, "empty media type")
	}
	subType = strings.TrimSpace(subType)
	if subType == "" {
		return nil, errors.Newf(class.HeadersInvalidMediaType, "empty subtype of media type: '%s'", mediaType)
	}
	return &MediaType{Type: mediaType, SubType: subType, Parameters: parameters}, nil
}

// ParseMediaType parses the Content-Type header 'value'.
func ParseMediaType(value string) (*MediaType, error) {
	fields := splitOutsideQuotes(value, ';')
	mediaType, subType, err := splitMediaType(fields[0])
	if err != nil {
		return nil, err
	}

	var parameters map[string]string
	for _, field := range fields[1:] {
		if field == "" {
			continue
		}
		key, value, err := splitParameter(field)
		if err != nil {
			return nil, err
		}
		if parameters == nil {
			parameters = map[string]string{}
		}
		parameters[key] = value
	}
	return NewMediaType(mediaType, subType, parameters)
}

// MediaType gets the 'type/subtype' string.
func (m *MediaType) MediaType() string {
	return m.Type + "/" + m.SubType
}

// String implements fmt.Stringer interface. The parameters are sorted by name.
func (m *MediaType) String() string {
	sb := &strings.Builder{}
	sb.WriteString(m.MediaType())

	names := make([]string, 0, len(m.Parameters))
	for name := range m.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sb.WriteString(";")
		sb.WriteString(name)
		sb.WriteString("=")
		sb.WriteString(m.Parameters[name])
	}
	return sb.String()
}

// MatchesTo checks if the media type matches to the 'other' one which might contain wildcards.
func (m *MediaType) MatchesTo(other *MediaType) bool {
	return (other.Type == Wildcard || strings.EqualFold(m.Type, other.Type)) &&
		(other.SubType == Wildcard || strings.EqualFold(m.SubType, other.SubType)) &&
		m.parametersCompare(other, true)
}

// EqualsTo checks if the media type is equal to the 'other' one.
func (m *MediaType) EqualsTo(other *MediaType) bool {
	return strings.EqualFold(m.Type, other.Type) &&
		strings.EqualFold(m.SubType, other.SubType) &&
		m.parametersCompare(other, false)
}

func (m *MediaType) parametersCompare(other *MediaType, matchWildcard bool) bool {
	if len(m.Parameters) == 0 && len(other.Parameters) == 0 {
		return true
	}
	if len(m.Parameters) != len(other.Parameters) || len(m.Parameters) == 0 {
		return false
	}
	ours := lowerKeys(m.Parameters)
	theirs := lowerKeys(other.Parameters)
	for name, value := range ours {
		otherValue, ok := theirs[name]
		if !ok {
			return false
		}
		if matchWildcard && otherValue == Wildcard {
			continue
		}
		if _, ok := caseInsensitiveParameters[name]; ok {
			if !strings.EqualFold(value, otherValue) {
				return false
			}
		} else if value != otherValue {
			return false
		}
	}
	return true
}

func lowerKeys(parameters map[string]string) map[string]string {
	lowered := make(map[string]string, len(parameters))
	for name, value := range parameters {
		lowered[strings.ToLower(name)] = value
	}
	return lowered
}

func splitMediaType(field string) (string, string, error) {
	i := strings.IndexByte(field, '/')
	if i == -1 {
		return "", "", errors.Newf(class.HeadersInvalidMediaType, "invalid media type: '%s'", field)
	}
	return field[:i], field[i+1:], nil
}

func splitParameter(field string) (string, string, error) {
	i := strings.IndexByte(field, '=')
	if i == -1 {
		return "", "", errors.Newf(class.HeadersInvalidParameter, "invalid media type parameter: '%s'", field)
	}
	return strings.TrimSpace(field[:i]), strings.Trim(field[i+1:], ` "`), nil
}
