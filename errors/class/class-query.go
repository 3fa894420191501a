package class

// MjrQuery - major that classifies errors related with the query parameters.
var MjrQuery Major

var (
	// MnrQueryParameter is the 'MjrQuery' minor error classification
	// for the query parameter issues.
	MnrQueryParameter Minor

	// QueryInvalidParameter is the 'MjrQuery', 'MnrQueryParameter' error classification
	// for empty or malformed query parameter values.
	QueryInvalidParameter Class
)

func registerQueryClasses() {
	MjrQuery = MustRegisterMajor("Query", "query parameters issues")

	MnrQueryParameter = MjrQuery.MustRegisterMinor("Parameter", "query parameter issues")
	QueryInvalidParameter = MnrQueryParameter.MustRegisterIndex("Invalid", "invalid query parameter value").Class()
}
