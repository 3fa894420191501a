package representation

// Document member names.
const (
	KeywordData          = "data"
	KeywordIncluded      = "included"
	KeywordErrors        = "errors"
	KeywordMeta          = "meta"
	KeywordLinks         = "links"
	KeywordJSONAPI       = "jsonapi"
	KeywordVersion       = "version"
	KeywordType          = "type"
	KeywordID            = "id"
	KeywordAttributes    = "attributes"
	KeywordRelationships = "relationships"
	KeywordStatus        = "status"
	KeywordCode          = "code"
	KeywordTitle         = "title"
	KeywordDetail        = "detail"
	KeywordSource        = "source"
)
