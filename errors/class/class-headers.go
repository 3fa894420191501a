package class

// MjrHeaders - major that classifies errors related with the http headers.
var MjrHeaders Major

var (
	// MnrHeadersParse is the 'MjrHeaders' minor error classification
	// for parsing the header values.
	MnrHeadersParse Minor

	// HeadersInvalidMediaType is the 'MjrHeaders', 'MnrHeadersParse' error classification
	// for malformed media types.
	HeadersInvalidMediaType Class

	// HeadersInvalidParameter is the 'MjrHeaders', 'MnrHeadersParse' error classification
	// for malformed media type parameters.
	HeadersInvalidParameter Class
)

func registerHeadersClasses() {
	MjrHeaders = MustRegisterMajor("Headers", "http headers issues")

	MnrHeadersParse = MjrHeaders.MustRegisterMinor("Parse", "parsing header values")
	HeadersInvalidMediaType = MnrHeadersParse.MustRegisterIndex("Media Type", "invalid media type").Class()
	HeadersInvalidParameter = MnrHeadersParse.MustRegisterIndex("Parameter", "invalid media type parameter").Class()
}
