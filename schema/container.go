package schema

import (
	"reflect"
	"sync"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/log"
)

var logger = log.NewModuleLogger("schema")

var schemaType = reflect.TypeOf((*Schema)(nil)).Elem()

// Container is the registry of the schemas for the model types.
// The schemas are created lazily on the first use and are reused afterwards.
// Container is safe for concurrent use.
type Container struct {
	lock    sync.RWMutex
	sources map[reflect.Type]interface{}
	schemas map[reflect.Type]Schema
}

// NewContainer creates new empty schema container.
func NewContainer() *Container {
	return &Container{
		sources: map[reflect.Type]interface{}{},
		schemas: map[reflect.Type]Schema{},
	}
}

// Register registers the schema 'source' for the 'model' type.
// The 'model' is an instance or a reflect.Type of the model. Pointer types
// are registered as the types they point to.
// The 'source' might be one of:
//   - Schema instance,
//   - func() Schema factory,
//   - func(*Container) Schema factory,
//   - reflect.Type of the schema struct; instantiated with reflect.New.
//
// The model type can be registered only once.
func (c *Container) Register(model interface{}, source interface{}) error {
	t, err := modelType(model)
	if err != nil {
		return err
	}
	if err = checkSource(source); err != nil {
		return err.(*errors.Error).WrapDetailf("model: '%s'", t)
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if _, exists := c.sources[t]; exists {
		return errors.Newf(class.SchemaDuplicateRegistration, "type '%s' is already registered - it can't be reused", t)
	}
	c.sources[t] = source
	logger.Debug3f("Registered schema source: %T for model: '%s'", source, t)
	return nil
}

// MustRegister registers the schema source for the model. Panics on error.
func (c *Container) MustRegister(model interface{}, source interface{}) {
	if err := c.Register(model, source); err != nil {
		panic(err)
	}
}

// RegisterStruct maps the 'model' struct fields into a StructSchema and registers it.
func (c *Container) RegisterStruct(model interface{}, convention NamingConvention) error {
	s, err := NewStructSchema(model, convention)
	if err != nil {
		return err
	}
	return c.Register(model, s)
}

// HasSchema checks if the schema is registered for the 'resource' type.
func (c *Container) HasSchema(resource interface{}) bool {
	t, ok := resourceType(resource)
	if !ok {
		return false
	}
	c.lock.RLock()
	defer c.lock.RUnlock()

	_, ok = c.sources[t]
	return ok
}

// Schema gets the schema for the 'resource'. Returns an error if no schema
// is registered for the resource type.
func (c *Container) Schema(resource interface{}) (Schema, error) {
	t, ok := resourceType(resource)
	if !ok {
		return nil, errors.Newf(class.SchemaNotRegistered, "no schema registered for: '%T'", resource)
	}

	c.lock.RLock()
	s, ok := c.schemas[t]
	source, registered := c.sources[t]
	c.lock.RUnlock()

	if ok {
		return s, nil
	}
	if !registered {
		return nil, errors.Newf(class.SchemaNotRegistered, "no schema registered for: '%s'", t)
	}

	// the factories might use the container so it can't be locked here
	s = c.create(source)
	if isNilSchema(s) {
		return nil, errors.Newf(class.SchemaInvalidSource, "schema source: '%T' created nil schema for model: '%s'", source, t)
	}

	c.lock.Lock()
	defer c.lock.Unlock()
	if existing, ok := c.schemas[t]; ok {
		return existing, nil
	}
	c.schemas[t] = s
	logger.Debug2f("Created schema: '%s' for model: '%s'", s.Type(), t)
	return s, nil
}

// Reset removes all the registrations and created schemas.
func (c *Container) Reset() {
	c.lock.Lock()
	defer c.lock.Unlock()

	c.sources = map[reflect.Type]interface{}{}
	c.schemas = map[reflect.Type]Schema{}
}

func (c *Container) create(source interface{}) Schema {
	switch s := source.(type) {
	case Schema:
		return s
	case func() Schema:
		return s()
	case func(*Container) Schema:
		return s(c)
	case reflect.Type:
		if s.Kind() == reflect.Ptr {
			s = s.Elem()
		}
		v := reflect.New(s)
		if schema, ok := v.Interface().(Schema); ok {
			return schema
		}
		return v.Elem().Interface().(Schema)
	}
	// checked while registering
	panic("unknown schema source")
}

func isNilSchema(s Schema) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func checkSource(source interface{}) error {
	switch s := source.(type) {
	case Schema, func() Schema, func(*Container) Schema:
		v := reflect.ValueOf(source)
		switch v.Kind() {
		case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Interface:
			if v.IsNil() {
				return errors.New(class.SchemaInvalidSource, "nil schema source")
			}
		}
		return nil
	case reflect.Type:
		if s.Implements(schemaType) || reflect.PtrTo(s).Implements(schemaType) {
			return nil
		}
		if s.Kind() == reflect.Ptr && s.Elem().Implements(schemaType) {
			return nil
		}
		return errors.Newf(class.SchemaInvalidSource, "type: '%s' doesn't implement Schema", s)
	}
	return errors.Newf(class.SchemaInvalidSource, "invalid schema source: '%T'", source)
}

func modelType(model interface{}) (reflect.Type, error) {
	var t reflect.Type
	switch m := model.(type) {
	case nil:
		return nil, errors.New(class.SchemaInvalidModel, "nil model provided")
	case reflect.Type:
		t = m
	default:
		t = reflect.TypeOf(model)
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t, nil
}

func resourceType(resource interface{}) (reflect.Type, bool) {
	if resource == nil {
		return nil, false
	}
	v := reflect.ValueOf(resource)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	return v.Type(), true
}
