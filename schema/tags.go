package schema

import (
	"reflect"
	"strings"

	"github.com/neuronlabs/jsonapi/annotation"
)

// FieldTag is the key: values pair for the given struct field's tag.
type FieldTag struct {
	Key    string
	Values []string
}

// ExtractFieldTags extracts the FieldTags from the 'jsonapi' tag of the struct 'field'.
//
//		type Model struct {
//			Field string `jsonapi:"type=attr;flags=omitempty,other"`
//		}                               ^                ^
//	                              tagSeparator    valueSeparator
func ExtractFieldTags(field reflect.StructField) []*FieldTag {
	return extractFieldTags(field, annotation.JSONAPI, annotation.TagSeparator, annotation.Separator)
}

func extractFieldTags(field reflect.StructField, fieldTag, tagSeparator, valuesSeparator string) []*FieldTag {
	tag, ok := field.Tag.Lookup(fieldTag)
	if !ok {
		return nil
	}

	// omit the field with the '-' tag
	if tag == "-" {
		return []*FieldTag{{Key: "-"}}
	}

	var (
		options []string
		last    int
	)
	tagSeparatorRune := []rune(tagSeparator)[0]

	// split the options on not escaped separators
	for i, r := range tag {
		if i != 0 && r == tagSeparatorRune && tag[i-1] != '\\' {
			options = append(options, tag[last:i])
			last = i + 1
		}
	}
	options = append(options, tag[last:])

	var tags []*FieldTag
	for _, o := range options {
		if o == "" {
			continue
		}
		var equalIndex int
		for i, r := range o {
			if r == annotation.TagEqual && i != 0 && o[i-1] != '\\' {
				equalIndex = i
				break
			}
		}

		tag := &FieldTag{}
		if equalIndex != 0 {
			tag.Key = o[:equalIndex]
			tag.Values = strings.Split(o[equalIndex+1:], valuesSeparator)
		} else {
			tag.Key = o
		}
		tags = append(tags, tag)
	}
	return tags
}
