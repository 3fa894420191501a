package representation

import (
	"github.com/neuronlabs/jsonapi/internal/ordered"
	"github.com/neuronlabs/jsonapi/schema"
)

// BaseWriter writes the top-level members shared by the data and error documents:
// 'meta', 'jsonapi' and 'links' with the 'profile'.
type BaseWriter struct {
	urlPrefix string

	meta    interface{}
	hasMeta bool

	version        string
	jsonAPIMeta    interface{}
	hasJSONAPIMeta bool

	links   schema.Links
	profile []*schema.Link
}

// SetURLPrefix sets the prefix of the sub url links.
func (w *BaseWriter) SetURLPrefix(prefix string) {
	w.urlPrefix = prefix
}

// URLPrefix gets the prefix of the sub url links.
func (w *BaseWriter) URLPrefix() string {
	return w.urlPrefix
}

// SetMeta sets the top-level meta.
func (w *BaseWriter) SetMeta(meta interface{}) {
	w.meta = meta
	w.hasMeta = true
}

// SetJSONAPIVersion sets the 'jsonapi' object version.
func (w *BaseWriter) SetJSONAPIVersion(version string) {
	w.version = version
}

// SetJSONAPIMeta sets the 'jsonapi' object meta.
func (w *BaseWriter) SetJSONAPIMeta(meta interface{}) {
	w.jsonAPIMeta = meta
	w.hasJSONAPIMeta = true
}

// SetLinks sets the top-level links.
func (w *BaseWriter) SetLinks(links schema.Links) {
	w.links = links
}

// SetProfile sets the top-level 'profile' links.
func (w *BaseWriter) SetProfile(links []*schema.Link) {
	w.profile = links
}

// writeHeader writes the top-level members in order: 'meta', 'jsonapi', 'links'.
func (w *BaseWriter) writeHeader(doc *ordered.Map) {
	if w.hasMeta {
		doc.Set(KeywordMeta, w.meta)
	}
	if w.version != "" || w.hasJSONAPIMeta {
		jsonAPI := ordered.New()
		if w.version != "" {
			jsonAPI.Set(KeywordVersion, w.version)
		}
		if w.hasJSONAPIMeta {
			jsonAPI.Set(KeywordMeta, w.jsonAPIMeta)
		}
		doc.Set(KeywordJSONAPI, jsonAPI)
	}

	links := w.links.Representation(w.urlPrefix)
	if len(w.profile) > 0 {
		profile := make([]interface{}, 0, len(w.profile))
		for _, link := range w.profile {
			if link != nil {
				profile = append(profile, link.Representation(w.urlPrefix))
			}
		}
		links.Set(schema.LinkProfile, profile)
	}
	if links.Len() > 0 {
		doc.Set(KeywordLinks, links)
	}
}
