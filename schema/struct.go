package schema

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/jinzhu/inflection"

	"github.com/neuronlabs/jsonapi/annotation"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// compile time check for the StructSchema capabilities.
var (
	_ Schema               = &StructSchema{}
	_ ResourceMetaProvider = &StructSchema{}
)

type fieldKind int

const (
	fieldAttribute fieldKind = iota
	fieldRelationship
	fieldPrimary
	fieldMeta
)

type structField struct {
	name      string
	index     []int
	kind      fieldKind
	omitEmpty bool
	noSelf    bool
	noRelated bool
	noData    bool
}

// StructSchema is the Schema created from the model struct fields and their 'jsonapi' tags.
//
//	type Author struct {
//		ID        int        `jsonapi:"type=primary;collection=people"`
//		FirstName string     `jsonapi:"type=attr"`
//		Nickname  string     `jsonapi:"type=attr;flags=omitempty"`
//		Comments  []*Comment `jsonapi:"type=relation;flags=norelated"`
//		Stats     *Stats     `jsonapi:"type=meta"`
//		Internal  string     `jsonapi:"-"`
//	}
//
// The field named 'ID' is the primary field if no other is tagged. The fields without
// a tag are the attributes. The member names not set with the 'name' tag are derived
// from the field names with the naming convention. The resource type not set with
// the 'collection' tag is the pluralized struct name.
type StructSchema struct {
	resourceType  string
	model         reflect.Type
	primary       *structField
	primaryTagged bool
	meta          *structField
	attributes    []*structField
	relationships []*structField
}

// NewStructSchema maps the 'model' struct into the StructSchema.
func NewStructSchema(model interface{}, convention NamingConvention) (*StructSchema, error) {
	t, err := modelType(model)
	if err != nil {
		return nil, err
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Newf(class.SchemaInvalidModel, "model: '%s' is not a struct", t)
	}

	s := &StructSchema{model: t}
	if err = s.mapFields(t, nil, convention); err != nil {
		return nil, err
	}

	if s.primary == nil {
		return nil, errors.Newf(class.SchemaInvalidModel, "model: '%s' has no primary field", t)
	}
	if s.resourceType == "" {
		s.resourceType = convention.Namer(inflection.Plural(t.Name()))
	}
	logger.Debug2f("Mapped struct schema: '%s' for model: '%s'", s.resourceType, t)
	return s, nil
}

func (s *StructSchema) mapFields(t reflect.Type, index []int, convention NamingConvention) error {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldIndex := append(append([]int{}, index...), i)

		tags := ExtractFieldTags(field)
		if len(tags) == 1 && tags[0].Key == "-" {
			continue
		}
		// embedded structs without a tag are flattened
		if field.Anonymous && tags == nil {
			ft := field.Type
			if ft.Kind() == reflect.Ptr {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				if err := s.mapFields(ft, fieldIndex, convention); err != nil {
					return err
				}
				continue
			}
		}
		if field.PkgPath != "" {
			continue
		}

		sField := &structField{index: fieldIndex, kind: fieldAttribute}
		if tags == nil && field.Name == "ID" {
			sField.kind = fieldPrimary
		}
		for _, tag := range tags {
			if err := s.setTag(sField, tag, field); err != nil {
				return err
			}
		}
		if sField.name == "" {
			sField.name = convention.Namer(field.Name)
		}

		switch sField.kind {
		case fieldPrimary:
			tagged := tags != nil
			if tagged && s.primaryTagged {
				return errors.Newf(class.SchemaInvalidTag, "model: '%s' has more than one primary field", s.model)
			}
			if s.primary == nil || tagged {
				s.primary = sField
				s.primaryTagged = tagged
			}
		case fieldMeta:
			s.meta = sField
		case fieldRelationship:
			if sField.noData && sField.noSelf && sField.noRelated {
				return errors.Newf(class.SchemaInvalidTag, "relationship field: '%s' has no data and no links", field.Name)
			}
			s.relationships = append(s.relationships, sField)
		default:
			s.attributes = append(s.attributes, sField)
		}
	}
	return nil
}

func (s *StructSchema) setTag(sField *structField, tag *FieldTag, field reflect.StructField) error {
	value := func() string {
		if len(tag.Values) == 0 {
			return ""
		}
		return tag.Values[0]
	}
	switch tag.Key {
	case annotation.FieldType:
		switch value() {
		case annotation.Primary, annotation.PrimaryShort, annotation.ID:
			sField.kind = fieldPrimary
		case annotation.Attribute, annotation.AttributeFull:
			sField.kind = fieldAttribute
		case annotation.Relation, annotation.RelationFull:
			sField.kind = fieldRelationship
		case annotation.Meta:
			sField.kind = fieldMeta
		default:
			return errors.Newf(class.SchemaInvalidTag, "field: '%s' unknown type: '%s'", field.Name, value())
		}
	case annotation.Name:
		sField.name = value()
	case annotation.Collection:
		s.resourceType = value()
	case annotation.Flags:
		for _, flag := range tag.Values {
			switch flag {
			case annotation.OmitEmpty:
				sField.omitEmpty = true
			case annotation.NoSelf:
				sField.noSelf = true
			case annotation.NoRelated:
				sField.noRelated = true
			case annotation.NoData:
				sField.noData = true
			default:
				return errors.Newf(class.SchemaInvalidTag, "field: '%s' unknown flag: '%s'", field.Name, flag)
			}
		}
	default:
		return errors.Newf(class.SchemaInvalidTag, "field: '%s' unknown tag: '%s'", field.Name, tag.Key)
	}
	return nil
}

// Type implements Schema interface.
func (s *StructSchema) Type() string {
	return s.resourceType
}

// ID implements Schema interface. The zero value primary field means no id.
func (s *StructSchema) ID(resource interface{}) (string, bool) {
	v, ok := s.fieldValue(resource, s.primary)
	if !ok || v.IsZero() {
		return "", false
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true
	}
	if stringer, ok := v.Interface().(fmt.Stringer); ok {
		return stringer.String(), true
	}
	return fmt.Sprint(v.Interface()), true
}

// Attributes implements Schema interface.
func (s *StructSchema) Attributes(resource interface{}, _ Context) Attributes {
	attrs := make(Attributes, 0, len(s.attributes))
	for _, field := range s.attributes {
		v, ok := s.fieldValue(resource, field)
		if !ok || (field.omitEmpty && v.IsZero()) {
			continue
		}
		attrs = append(attrs, Attribute{Name: field.name, Value: v.Interface()})
	}
	return attrs
}

// Relationships implements Schema interface.
func (s *StructSchema) Relationships(resource interface{}, _ Context) []*RelationshipDescription {
	relationships := make([]*RelationshipDescription, 0, len(s.relationships))
	for _, field := range s.relationships {
		v, ok := s.fieldValue(resource, field)
		if !ok {
			continue
		}
		desc := NewRelationship(field.name)
		if !field.noData {
			if (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) && v.IsNil() {
				desc.WithData(nil)
			} else {
				desc.WithData(v.Interface())
			}
		}
		if field.noSelf {
			desc.HideSelf()
		}
		if field.noRelated {
			desc.HideRelated()
		}
		relationships = append(relationships, desc)
	}
	return relationships
}

// ResourceMeta implements ResourceMetaProvider interface.
func (s *StructSchema) ResourceMeta(resource interface{}) (interface{}, bool) {
	if s.meta == nil {
		return nil, false
	}
	v, ok := s.fieldValue(resource, s.meta)
	if !ok || v.IsZero() {
		return nil, false
	}
	return v.Interface(), true
}

func (s *StructSchema) fieldValue(resource interface{}, field *structField) (reflect.Value, bool) {
	v := reflect.ValueOf(resource)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	if v.Type() != s.model {
		return reflect.Value{}, false
	}
	for i, idx := range field.index {
		if i > 0 {
			for v.Kind() == reflect.Ptr {
				if v.IsNil() {
					return reflect.Value{}, false
				}
				v = v.Elem()
			}
		}
		v = v.Field(idx)
	}
	return v, true
}
