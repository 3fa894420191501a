package representation

import (
	"github.com/neuronlabs/jsonapi/internal/ordered"
	"github.com/neuronlabs/jsonapi/schema"
)

// ErrorWriter writes the jsonapi error objects into the errors document.
type ErrorWriter struct {
	BaseWriter
	errors []interface{}
}

// NewErrorWriter creates new error writer.
func NewErrorWriter() *ErrorWriter {
	return &ErrorWriter{errors: []interface{}{}}
}

// AddError writes the error object. The nil errors are skipped.
func (w *ErrorWriter) AddError(err *schema.Error) {
	if err == nil {
		return
	}
	w.errors = append(w.errors, w.errorRepresentation(err))
}

// Document gets the document structure. The members are in order:
// 'meta', 'jsonapi', 'links', 'errors'.
func (w *ErrorWriter) Document() *ordered.Map {
	doc := ordered.New()
	w.writeHeader(doc)
	doc.Set(KeywordErrors, w.errors)
	return doc
}

// errorRepresentation gets the error object with the members in order:
// 'id', 'links', 'status', 'code', 'title', 'detail', 'source', 'meta'.
func (w *ErrorWriter) errorRepresentation(err *schema.Error) *ordered.Map {
	obj := ordered.New()
	if err.ID != "" {
		obj.Set(KeywordID, err.ID)
	}

	links := ordered.New()
	if err.AboutLink != nil {
		links.Set(schema.LinkAbout, err.AboutLink.Representation(w.urlPrefix))
	}
	if len(err.TypeLinks) > 0 {
		types := make([]interface{}, 0, len(err.TypeLinks))
		for _, link := range err.TypeLinks {
			if link != nil {
				types = append(types, link.Representation(w.urlPrefix))
			}
		}
		links.Set(schema.LinkType, types)
	}
	if links.Len() > 0 {
		obj.Set(KeywordLinks, links)
	}

	if err.Status != "" {
		obj.Set(KeywordStatus, err.Status)
	}
	if err.Code != "" {
		obj.Set(KeywordCode, err.Code)
	}
	if err.Title != "" {
		obj.Set(KeywordTitle, err.Title)
	}
	if err.Detail != "" {
		obj.Set(KeywordDetail, err.Detail)
	}
	if !err.Source.IsEmpty() {
		source := ordered.New()
		if err.Source.Pointer != "" {
			source.Set(schema.SourcePointer, err.Source.Pointer)
		}
		if err.Source.Parameter != "" {
			source.Set(schema.SourceParameter, err.Source.Parameter)
		}
		if err.Source.Header != "" {
			source.Set(schema.SourceHeader, err.Source.Header)
		}
		obj.Set(KeywordSource, source)
	}
	if err.HasMeta {
		obj.Set(KeywordMeta, err.Meta)
	}
	return obj
}
