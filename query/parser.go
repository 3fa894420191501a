package query

import (
	"net/url"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/neuronlabs/jsonapi"
	"github.com/neuronlabs/jsonapi/annotation"
	"github.com/neuronlabs/jsonapi/i18n"
	"github.com/neuronlabs/jsonapi/log"
	"github.com/neuronlabs/jsonapi/schema"
)

var logger = log.NewModuleLogger("query")

// Parser parses the query parameters. The error titles are composed
// in the parser language.
type Parser struct {
	messages *i18n.Messages
	language language.Tag
}

// Option is the function that sets the Parser options.
type Option func(p *Parser)

// WithMessages sets the messages catalog used for the error titles.
func WithMessages(messages *i18n.Messages) Option {
	return func(p *Parser) {
		if messages != nil {
			p.messages = messages
		}
	}
}

// WithLanguage sets the language of the error titles.
func WithLanguage(tag language.Tag) Option {
	return func(p *Parser) {
		p.language = tag
	}
}

// WithAcceptLanguage sets the language of the error titles to the 'support'
// language best matching the 'acceptLanguage' header value. Malformed header
// keeps the current language.
func WithAcceptLanguage(support *i18n.Support, acceptLanguage string) Option {
	return func(p *Parser) {
		if support == nil || acceptLanguage == "" {
			return
		}
		tag, err := support.Match(acceptLanguage)
		if err != nil {
			logger.Debugf("Accept-Language: '%s' not matched: %v", acceptLanguage, err)
			return
		}
		p.language = tag
	}
}

// NewParser creates new query parser.
func NewParser(options ...Option) *Parser {
	p := &Parser{messages: i18n.Default(), language: language.English}
	for _, option := range options {
		option(p)
	}
	return p
}

// Parse parses the 'values' with the default parser.
func Parse(values url.Values) (*Parameters, error) {
	return NewParser().Parse(values)
}

// Parse parses the jsonapi query parameters from the 'values'. Only the first value
// of each parameter is used. The parameters other than 'include', 'fields[type]',
// 'sort' and 'profile' are skipped. The keys are parsed in the sorted order,
// so that the first invalid key in that order is reported.
func (p *Parser) Parse(values url.Values) (*Parameters, error) {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	params := &Parameters{}
	for _, key := range keys {
		value := values[key]
		if len(value) == 0 {
			continue
		}
		var err error
		switch {
		case key == ParamInclude:
			params.Include, err = p.include(value[0])
		case key == ParamSort:
			params.Sort, err = p.sort(value[0])
		case key == ParamProfile:
			params.Profile, err = p.profile(value[0])
		case key == ParamFields || strings.HasPrefix(key, ParamFields+"["):
			err = p.fields(params, key, value[0])
		default:
			logger.Debug3f("Skipping query parameter: '%s'", key)
		}
		if err != nil {
			return nil, err
		}
	}
	return params, nil
}

func (p *Parser) include(value string) ([][]string, error) {
	paths, err := p.split(ParamInclude, value, annotation.Separator, i18n.MsgInvalidInclude)
	if err != nil {
		return nil, err
	}
	include := make([][]string, 0, len(paths))
	for _, path := range paths {
		names, err := p.split(ParamInclude, path, annotation.NestedSeparator, i18n.MsgInvalidInclude)
		if err != nil {
			return nil, err
		}
		include = append(include, names)
	}
	return include, nil
}

// fields parses the 'fields[type]' parameter. The empty value is the empty field set.
func (p *Parser) fields(params *Parameters, key, value string) error {
	if !strings.HasSuffix(key, "]") || len(key) <= len(ParamFields)+2 {
		return p.parameterError(key, i18n.MsgInvalidFields, key)
	}
	resourceType := key[len(ParamFields)+1 : len(key)-1]
	if params.Fields == nil {
		params.Fields = map[string][]string{}
	}
	if strings.TrimSpace(value) == "" {
		params.Fields[resourceType] = []string{}
		return nil
	}
	fields, err := p.split(key, value, annotation.Separator, i18n.MsgInvalidFields)
	if err != nil {
		return err
	}
	params.Fields[resourceType] = fields
	return nil
}

func (p *Parser) sort(value string) ([]SortParameter, error) {
	values, err := p.split(ParamSort, value, annotation.Separator, i18n.MsgInvalidSort)
	if err != nil {
		return nil, err
	}
	sorts := make([]SortParameter, 0, len(values))
	for _, v := range values {
		s := SortParameter{Field: v, Ascending: true}
		switch v[0] {
		case '-':
			s.Field, s.Ascending = v[1:], false
		case '+':
			s.Field = v[1:]
		}
		if s.Field == "" {
			return nil, p.parameterError(ParamSort, i18n.MsgInvalidSort, value)
		}
		sorts = append(sorts, s)
	}
	return sorts, nil
}

func (p *Parser) profile(value string) ([]string, error) {
	decoded, err := url.QueryUnescape(value)
	if err != nil {
		return nil, p.parameterError(ParamProfile, i18n.MsgInvalidProfile, value)
	}
	return p.split(ParamProfile, decoded, " ", i18n.MsgInvalidProfile)
}

// split splits the 'value' with the 'separator'. The value and its parts must not be empty.
func (p *Parser) split(name, value, separator, msg string) ([]string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, p.parameterError(name, msg, value)
	}
	parts := strings.Split(trimmed, separator)
	for i, part := range parts {
		if parts[i] = strings.TrimSpace(part); parts[i] == "" {
			return nil, p.parameterError(name, msg, value)
		}
	}
	return parts, nil
}

func (p *Parser) parameterError(name, msg, value string) *jsonapi.DomainError {
	logger.Debugf("Invalid query parameter: '%s' value: '%s'", name, value)
	var errs schema.ErrorCollection
	errs.AddQueryParameterError(name, p.messages.Compose(p.language, msg, value))
	return jsonapi.NewDomainError(jsonapi.CodeBadRequest, errs...)
}
