package class

// The majors of the issues that are not related with the documents themselves.
var (
	// MjrCommon classifies the logging issues.
	MjrCommon Major
	// MjrConfig classifies the reading and validating the configuration issues.
	MjrConfig Major
	// MjrLanguage classifies the i18n issues.
	MjrLanguage Major
)

// Logger classes.
var (
	MnrCommonLogger Minor

	// CommonLoggerNotImplement is the class for the loggers that doesn't
	// implement the required level setting interface.
	CommonLoggerNotImplement Class
	// CommonLoggerUnknownLevel is the class for the unknown logging levels.
	CommonLoggerUnknownLevel Class
)

// Config classes.
var (
	MnrConfigRead  Minor
	MnrConfigValue Minor

	// ConfigReadNotFound is the class for the config file that doesn't exist.
	ConfigReadNotFound Class
	// ConfigValueNil is the class for the nil config passed to validation.
	ConfigValueNil Class
	// ConfigValueInvalid is the class for the config values that failed validation.
	ConfigValueInvalid Class
)

// Language classes.
var (
	MnrLanguageUnsupported Minor
	MnrLanguageParsing     Minor

	// LanguageUnsupportedTag is the class for the translations of the tags
	// that the message catalog can't store.
	LanguageUnsupportedTag Class
	// LanguageParsingFailed is the class for the malformed language tags.
	LanguageParsingFailed Class
)

func registerCommonClasses() {
	MjrCommon = MustRegisterMajor("Common", "common issues")
	MnrCommonLogger = MjrCommon.MustRegisterMinor("Logger", "logger issues")
	CommonLoggerNotImplement = MnrCommonLogger.MustRegisterIndex("Not Implement", "logger doesn't implement the interface").Class()
	CommonLoggerUnknownLevel = MnrCommonLogger.MustRegisterIndex("Unknown Level", "unknown logging level").Class()
}

func registerConfigClasses() {
	MjrConfig = MustRegisterMajor("Config", "configuration issues")

	MnrConfigRead = MjrConfig.MustRegisterMinor("Read", "reading config")
	ConfigReadNotFound = MnrConfigRead.MustRegisterIndex("Not Found", "config file not found").Class()

	MnrConfigValue = MjrConfig.MustRegisterMinor("Value", "config values")
	ConfigValueNil = MnrConfigValue.MustRegisterIndex("Nil", "nil config").Class()
	ConfigValueInvalid = MnrConfigValue.MustRegisterIndex("Invalid", "config validation failed").Class()
}

func registerLanguageClasses() {
	MjrLanguage = MustRegisterMajor("Language", "i18n issues")

	MnrLanguageUnsupported = MjrLanguage.MustRegisterMinor("Unsupported", "unsupported languages")
	LanguageUnsupportedTag = MnrLanguageUnsupported.MustRegisterIndex("Tag", "unsupported language tag").Class()

	MnrLanguageParsing = MjrLanguage.MustRegisterMinor("Parsing", "parsing language tags")
	LanguageParsingFailed = MnrLanguageParsing.MustRegisterIndex("Failed", "parsing language tag failed").Class()
}
