package class

// MjrEncoding - major that classifies errors related with the jsonapi encoding and decoding.
var MjrEncoding Major

func registerEncodingClasses() {
	MjrEncoding = MustRegisterMajor("Encoding", "jsonapi encoding related issues")

	registerEncodingMarshal()
	registerEncodingStructure()
	registerEncodingUnmarshal()
}

// Encoding Marshal
var (
	// MnrEncodingMarshal is the minor error classification for the 'MjrEncoding' major.
	// It is related with the document encoding errors.
	MnrEncodingMarshal Minor

	// EncodingInvalidInput is the 'MjrEncoding', 'MnrEncodingMarshal' error classification
	// when the root or nested data has an unrecognized shape.
	EncodingInvalidInput Class

	// EncodingSchemaMismatch is the 'MjrEncoding', 'MnrEncodingMarshal' error classification
	// when the relationship value doesn't match any known shape.
	EncodingSchemaMismatch Class

	// EncodingDepthExceeded is the 'MjrEncoding', 'MnrEncodingMarshal' error classification
	// when the output document nesting exceeds the configured depth.
	EncodingDepthExceeded Class

	// EncodingOutput is the 'MjrEncoding', 'MnrEncodingMarshal' error classification
	// when serializing the output document failed.
	EncodingOutput Class
)

func registerEncodingMarshal() {
	MnrEncodingMarshal = MjrEncoding.MustRegisterMinor("Marshal", "encoding the document")

	EncodingInvalidInput = MnrEncodingMarshal.MustRegisterIndex("Invalid Input", "encoding data of unrecognized shape").Class()
	EncodingSchemaMismatch = MnrEncodingMarshal.MustRegisterIndex("Schema Mismatch", "relationship data of unrecognized shape").Class()
	EncodingDepthExceeded = MnrEncodingMarshal.MustRegisterIndex("Depth Exceeded", "document nesting exceeds the depth limit").Class()
	EncodingOutput = MnrEncodingMarshal.MustRegisterIndex("Output", "serializing the output document failed").Class()
}

// Encoding Structure
var (
	// MnrEncodingStructure is the 'MjrEncoding' minor classification for the violated
	// document structure invariants. These are programmer errors.
	MnrEncodingStructure Minor

	// EncodingStructureDataRewrite is the 'MjrEncoding', 'MnrEncodingStructure' error classification
	// when the primary data is written more than once.
	EncodingStructureDataRewrite Class

	// EncodingStructureDataMode is the 'MjrEncoding', 'MnrEncodingStructure' error classification
	// when the primary data is written both as a single value and as an array.
	EncodingStructureDataMode Class

	// EncodingStructureRelationship is the 'MjrEncoding', 'MnrEncodingStructure' error classification
	// when the relationship has none of the data, links or meta.
	EncodingStructureRelationship Class
)

func registerEncodingStructure() {
	MnrEncodingStructure = MjrEncoding.MustRegisterMinor("Structure", "document structure invariant violations")

	EncodingStructureDataRewrite = MnrEncodingStructure.MustRegisterIndex("Data Rewrite", "primary data written twice").Class()
	EncodingStructureDataMode = MnrEncodingStructure.MustRegisterIndex("Data Mode", "primary data written as both single and array").Class()
	EncodingStructureRelationship = MnrEncodingStructure.MustRegisterIndex("Relationship", "relationship without data, links and meta").Class()
}

// Encoding Unmarshal

var (
	// MnrEncodingUnmarshal is the 'MjrEncoding' minor classification
	// for the document decoding process.
	MnrEncodingUnmarshal Minor

	// EncodingUnmarshalInvalidFormat is a 'MjrEncoding', 'MnrEncodingUnmarshal' error classification
	// while decoding the input data of invalid format. I.e. invalid json formatting.
	EncodingUnmarshalInvalidFormat Class

	// EncodingUnmarshalInvalidDocument is a 'MjrEncoding', 'MnrEncodingUnmarshal' error classification
	// while decoding a well formatted json which is not a valid jsonapi document.
	EncodingUnmarshalInvalidDocument Class

	// EncodingUnmarshalUnknownField is a 'MjrEncoding', 'MnrEncodingUnmarshal' error classification
	// when decoding undefined or unknown member. Used when 'strict' mode is set.
	EncodingUnmarshalUnknownField Class
)

func registerEncodingUnmarshal() {
	MnrEncodingUnmarshal = MjrEncoding.MustRegisterMinor("Unmarshal", "decoding the document failed")

	EncodingUnmarshalInvalidFormat = MnrEncodingUnmarshal.MustRegisterIndex("Invalid Format", "decoding the input with invalid format").Class()
	EncodingUnmarshalInvalidDocument = MnrEncodingUnmarshal.MustRegisterIndex("Invalid Document", "decoding the input that is not a jsonapi document").Class()
	EncodingUnmarshalUnknownField = MnrEncodingUnmarshal.MustRegisterIndex("Unknown Field", "decoding unknown member - in strict mode").Class()
}
