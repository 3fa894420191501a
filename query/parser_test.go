package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/neuronlabs/jsonapi"
	"github.com/neuronlabs/jsonapi/config"
	"github.com/neuronlabs/jsonapi/i18n"
)

func values(t *testing.T, raw string) url.Values {
	t.Helper()
	v, err := url.ParseQuery(raw)
	require.NoError(t, err)
	return v
}

// TestParse tests parsing the valid query parameters.
func TestParse(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		params, err := Parse(values(t, "include=comments.author, tags&fields[people]=first_name,comments&fields[tags]="+
			"&sort=-created,+title,id&profile="+url.QueryEscape("http://example.com/a http://example.com/b")+"&page[size]=10"))
		require.NoError(t, err)

		assert.Equal(t, [][]string{{"comments", "author"}, {"tags"}}, params.Include)
		assert.Equal(t, []string{"comments.author", "tags"}, params.IncludePaths())
		assert.Equal(t, map[string][]string{"people": {"first_name", "comments"}, "tags": {}}, params.Fields)
		assert.Equal(t, []SortParameter{{Field: "created"}, {Field: "title", Ascending: true}, {Field: "id", Ascending: true}}, params.Sort)
		assert.Equal(t, []string{"http://example.com/a", "http://example.com/b"}, params.Profile)
	})

	t.Run("Empty", func(t *testing.T) {
		params, err := Parse(url.Values{})
		require.NoError(t, err)
		assert.Equal(t, &Parameters{}, params)
		assert.Empty(t, params.IncludePaths())
	})

	t.Run("FormatQuery", func(t *testing.T) {
		params := &Parameters{
			Include: [][]string{{"comments", "author"}},
			Fields:  map[string][]string{"people": {"first_name"}},
			Sort:    []SortParameter{{Field: "created"}, {Field: "id", Ascending: true}},
			Profile: []string{"http://example.com/a"},
		}
		q := params.FormatQuery(url.Values{"page[size]": {"10"}})
		assert.Equal(t, "comments.author", q.Get(ParamInclude))
		assert.Equal(t, "first_name", q.Get("fields[people]"))
		assert.Equal(t, "-created,id", q.Get(ParamSort))
		assert.Equal(t, "10", q.Get("page[size]"))

		parsed, err := Parse(q)
		require.NoError(t, err)
		assert.Equal(t, params, parsed)
	})
}

// TestParseInvalid tests the invalid query parameters.
func TestParseInvalid(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		parameter string
		title     string
	}{
		{"EmptyInclude", "include=", ParamInclude, "Invalid include parameter: ''"},
		{"EmptyIncludePath", "include=comments,,tags", ParamInclude, "Invalid include parameter: 'comments,,tags'"},
		{"EmptyIncludeName", "include=comments..author", ParamInclude, "Invalid include parameter: 'comments..author'"},
		{"FieldsNotArray", "fields=name", ParamFields, "Invalid fields parameter: 'fields'"},
		{"FieldsNoType", "fields[]=name", "fields[]", "Invalid fields parameter: 'fields[]'"},
		{"EmptyField", "fields[people]=name,", "fields[people]", "Invalid fields parameter: 'name,'"},
		{"EmptySort", "sort=", ParamSort, "Invalid sort parameter: ''"},
		{"SortSignOnly", "sort=-", ParamSort, "Invalid sort parameter: '-'"},
		{"EmptyProfile", "profile=%20", ParamProfile, "Invalid profile parameter: ' '"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(values(t, tc.raw))
			require.Error(t, err)

			domainErr, ok := err.(*jsonapi.DomainError)
			require.True(t, ok)
			assert.Equal(t, jsonapi.CodeBadRequest, domainErr.HTTPCode)
			require.Len(t, domainErr.Errors, 1)
			assert.Equal(t, tc.parameter, domainErr.Errors[0].Source.Parameter)
			assert.Equal(t, tc.title, domainErr.Errors[0].Title)
		})
	}

	t.Run("MultipleInvalid", func(t *testing.T) {
		for i := 0; i < 20; i++ {
			_, err := Parse(values(t, "sort=-&include=&profile=%20&fields[people]=name,"))
			require.Error(t, err)
			assert.Equal(t, "fields[people]", err.(*jsonapi.DomainError).Errors[0].Source.Parameter)
		}
	})

	t.Run("Translated", func(t *testing.T) {
		messages := i18n.NewMessages()
		require.NoError(t, messages.SetTranslations(language.Polish, map[string]string{
			i18n.MsgInvalidSort: "Niepoprawny parametr sortowania: '%s'",
		}))
		p := NewParser(WithMessages(messages), WithLanguage(language.Polish))

		_, err := p.Parse(values(t, "sort=-"))
		require.Error(t, err)
		assert.Equal(t, "Niepoprawny parametr sortowania: '-'", err.(*jsonapi.DomainError).Errors[0].Title)
	})

	t.Run("AcceptLanguage", func(t *testing.T) {
		messages := i18n.NewMessages()
		require.NoError(t, messages.SetTranslations(language.Polish, map[string]string{
			i18n.MsgInvalidSort: "Niepoprawny parametr sortowania: '%s'",
		}))
		support, err := i18n.New(&config.I18nConfig{SupportedLanguages: []string{"en", "pl"}})
		require.NoError(t, err)

		p := NewParser(WithMessages(messages), WithAcceptLanguage(support, "pl-PL, en;q=0.5"))
		_, err = p.Parse(values(t, "sort=-"))
		require.Error(t, err)
		assert.Equal(t, "Niepoprawny parametr sortowania: '-'", err.(*jsonapi.DomainError).Errors[0].Title)
	})
}
