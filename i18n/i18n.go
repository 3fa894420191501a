package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/neuronlabs/jsonapi/config"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// Support defines the internationalization coverage.
type Support struct {
	Matcher language.Matcher
	Locale  language.Coverage

	tags []language.Tag
}

// New creates new I18n Support.
func New(cfg *config.I18nConfig) (*Support, error) {
	var tags []language.Tag

	if cfg != nil {
		for _, langTag := range cfg.SupportedLanguages {
			tag, err := language.Parse(langTag)
			if err != nil {
				return nil, errors.Newf(class.LanguageParsingFailed, "parsing language: '%s' failed. %s'", langTag, err.Error())
			}
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = append(tags, language.English)
	}

	s := &Support{
		Locale: language.NewCoverage(tags),
		tags:   tags,
	}
	s.Matcher = language.NewMatcher(tags)
	return s, nil
}

// Match gets the supported language best matching the 'acceptLanguage' header value.
// The first supported language is returned if nothing matches.
func (s *Support) Match(acceptLanguage string) (language.Tag, error) {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return language.Und, errors.Newf(class.LanguageParsingFailed, "parsing accept language: '%s' failed. %s", acceptLanguage, err.Error())
	}
	_, index, _ := s.Matcher.Match(tags...)
	return s.tags[index], nil
}

// PrettyLanguages return prettified supported languages strings.
func (s *Support) PrettyLanguages() []string {
	namer := display.Tags(language.English)
	names := make([]string, len(s.Locale.Tags()))
	for i, lang := range s.Locale.Tags() {
		names[i] = fmt.Sprintf("%s - '%s'", namer.Name(lang), lang.String())
	}
	return names
}
