package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// Message keys of the library error titles. The keys are the english messages.
const (
	MsgInvalidInclude = "Invalid include parameter: '%s'"
	MsgInvalidFields  = "Invalid fields parameter: '%s'"
	MsgInvalidSort    = "Invalid sort parameter: '%s'"
	MsgInvalidProfile = "Invalid profile parameter: '%s'"
)

// Messages composes the library messages in the supported languages.
type Messages struct {
	builder *catalog.Builder
}

// NewMessages creates the messages catalog with the english fallback.
func NewMessages() *Messages {
	m := &Messages{builder: catalog.NewBuilder(catalog.Fallback(language.English))}
	for _, key := range []string{MsgInvalidInclude, MsgInvalidFields, MsgInvalidSort, MsgInvalidProfile} {
		// the key is a valid message
		_ = m.builder.SetString(language.English, key, key)
	}
	return m
}

// SetTranslations sets the 'translations' of the message keys for the language 'tag'.
func (m *Messages) SetTranslations(tag language.Tag, translations map[string]string) error {
	for key, msg := range translations {
		if err := m.builder.SetString(tag, key, msg); err != nil {
			return errors.Newf(class.LanguageUnsupportedTag, "setting translation of: '%s' for language: '%s' failed: %v", key, tag, err)
		}
	}
	return nil
}

// Languages gets the languages with the translations.
func (m *Messages) Languages() []language.Tag {
	return m.builder.Languages()
}

// Compose gets the message 'key' in the language 'tag' formatted with the 'args'.
func (m *Messages) Compose(tag language.Tag, key string, args ...interface{}) string {
	return message.NewPrinter(tag, message.Catalog(m.builder)).Sprintf(key, args...)
}

var defaultMessages = NewMessages()

// Default gets the default messages catalog.
func Default() *Messages {
	return defaultMessages
}
