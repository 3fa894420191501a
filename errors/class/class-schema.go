package class

// MjrSchema - major that classifies schema configuration errors.
var MjrSchema Major

func registerSchemaClasses() {
	MjrSchema = MustRegisterMajor("Schema", "schema configuration issues")

	registerSchemaRegistration()
	registerSchemaMapping()
}

var (
	// MnrSchemaRegistration is the 'MjrSchema' minor error classification
	// for the schema container registrations.
	MnrSchemaRegistration Minor

	// SchemaNotRegistered is the 'MjrSchema', 'MnrSchemaRegistration' error classification
	// when no schema is registered for the given type.
	SchemaNotRegistered Class

	// SchemaDuplicateRegistration is the 'MjrSchema', 'MnrSchemaRegistration' error classification
	// when the type is registered more than once.
	SchemaDuplicateRegistration Class

	// SchemaInvalidSource is the 'MjrSchema', 'MnrSchemaRegistration' error classification
	// when the registered schema source is neither a schema, a factory nor a schema type.
	SchemaInvalidSource Class
)

func registerSchemaRegistration() {
	MnrSchemaRegistration = MjrSchema.MustRegisterMinor("Registration", "schema container registration issues")

	SchemaNotRegistered = MnrSchemaRegistration.MustRegisterIndex("Not Registered", "no schema registered for the type").Class()
	SchemaDuplicateRegistration = MnrSchemaRegistration.MustRegisterIndex("Duplicate", "type registered more than once").Class()
	SchemaInvalidSource = MnrSchemaRegistration.MustRegisterIndex("Invalid Source", "invalid schema source").Class()
}

var (
	// MnrSchemaMapping is the 'MjrSchema' minor error classification
	// for mapping the struct schemas.
	MnrSchemaMapping Minor

	// SchemaInvalidModel is the 'MjrSchema', 'MnrSchemaMapping' error classification
	// when the provided model can't be mapped.
	SchemaInvalidModel Class

	// SchemaInvalidTag is the 'MjrSchema', 'MnrSchemaMapping' error classification
	// for malformed struct field tags.
	SchemaInvalidTag Class

	// SchemaInvalidNaming is the 'MjrSchema', 'MnrSchemaMapping' error classification
	// for unknown naming conventions.
	SchemaInvalidNaming Class
)

func registerSchemaMapping() {
	MnrSchemaMapping = MjrSchema.MustRegisterMinor("Mapping", "struct schema mapping issues")

	SchemaInvalidModel = MnrSchemaMapping.MustRegisterIndex("Invalid Model", "model can't be mapped into schema").Class()
	SchemaInvalidTag = MnrSchemaMapping.MustRegisterIndex("Invalid Tag", "malformed struct field tag").Class()
	SchemaInvalidNaming = MnrSchemaMapping.MustRegisterIndex("Invalid Naming", "unknown naming convention").Class()
}
