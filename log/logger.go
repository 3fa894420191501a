package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/neuronlabs/uni-logger"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

const (
	// LDEBUG3 is the logger DEBUG3 level.
	LDEBUG3 = unilogger.DEBUG3
	// LDEBUG2 is the logger DEBUG2 level.
	LDEBUG2 = unilogger.DEBUG2
	// LDEBUG is the logger DEBUG level.
	LDEBUG = unilogger.DEBUG
	// LINFO is the logger INFO level.
	LINFO = unilogger.INFO
	// LWARNING is the logger WARNING level.
	LWARNING = unilogger.WARNING
	// LERROR is the logger ERROR level.
	LERROR = unilogger.ERROR
	// LCRITICAL is the logger CRITICAL level.
	LCRITICAL = unilogger.CRITICAL
	// LUNKNOWN is the unspecified logger level.
	LUNKNOWN = unilogger.UNKNOWN
)

var levelNames = map[string]unilogger.Level{
	"debug3":   LDEBUG3,
	"debug2":   LDEBUG2,
	"debug":    LDEBUG,
	"info":     LINFO,
	"warning":  LWARNING,
	"error":    LERROR,
	"critical": LCRITICAL,
}

var (
	logger       unilogger.LeveledLogger
	currentLevel = LINFO
	debugLeveled unilogger.DebugLeveledLogger
)

// Default creates and sets new unilogger.BasicLogger with writer to 'os.Stderr'.
func Default() {
	New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
}

// New creates new unilogger.BasicLogger that writes to provided 'out' io.Writer
// with specific 'prefix' and provided 'flags' and sets it as the package logger.
func New(out io.Writer, prefix string, flags int) {
	basic := unilogger.NewBasicLogger(out, prefix, flags)
	basic.SetOutputDepth(4)
	SetLogger(basic)
}

// ParseLevel parses the level from its case insensitive name: 'debug3', 'debug2',
// 'debug', 'info', 'warning', 'error' or 'critical'.
func ParseLevel(name string) (unilogger.Level, error) {
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return LUNKNOWN, errors.Newf(class.CommonLoggerUnknownLevel, "unknown logger level: '%s'", name)
	}
	return level, nil
}

// Level returns current logger Level.
func Level() unilogger.Level {
	return currentLevel
}

// Logger returns the package logger.
func Logger() unilogger.LeveledLogger {
	return logger
}

// SetLevel sets the 'level' of the package logger and of the module loggers
// that writes directly to it.
func SetLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.New(class.CommonLoggerUnknownLevel, "can't set unknown logger level")
	}
	if level == currentLevel {
		return nil
	}

	currentLevel = level
	for _, m := range modules {
		if m.logger == nil {
			m.currentLevel = level
		}
	}
	if logger == nil {
		return nil
	}
	setter, ok := logger.(unilogger.LevelSetter)
	if !ok {
		return errors.New(class.CommonLoggerNotImplement, "logger doesn't implement LevelSetter interface")
	}
	setter.SetLevel(level)
	return nil
}

// SetLogger sets the 'l' as the package logger. The module loggers without
// their own logger get the sub logger of 'l' when it is a unilogger.SubLogger.
func SetLogger(l unilogger.LeveledLogger) {
	logger = l

	if depth, ok := l.(unilogger.OutputDepthGetter); ok {
		if setter, ok := l.(unilogger.OutputDepthSetter); ok {
			setter.SetOutputDepth(depth.GetOutputDepth() + 1)
		}
	}
	if setter, ok := l.(unilogger.LevelSetter); ok {
		setter.SetLevel(currentLevel)
	}
	debugLeveled, _ = l.(unilogger.DebugLeveledLogger)

	sub, isSub := l.(unilogger.SubLogger)
	for _, m := range modules {
		if m.logger == nil && isSub {
			m.use(sub.SubLogger())
		}
		m.SetLevel(currentLevel)
	}
	Debugf("New logger set with level: %s", currentLevel)
}

// SetModulesLevel sets the 'level' for all modules.
func SetModulesLevel(level unilogger.Level) error {
	if level == LUNKNOWN {
		return errors.New(class.CommonLoggerUnknownLevel, "can't set unknown logger level")
	}
	for _, m := range modules {
		m.SetLevel(level)
	}
	return nil
}

// Debug3f writes the formatted LDEBUG3 level log.
func Debug3f(format string, args ...interface{}) {
	switch {
	case debugLeveled != nil:
		debugLeveled.Debug3f(format, args...)
	case logger != nil:
		logger.Debugf(format, args...)
	}
}

// Debug2f writes the formatted LDEBUG2 level log.
func Debug2f(format string, args ...interface{}) {
	switch {
	case debugLeveled != nil:
		debugLeveled.Debug2f(format, args...)
	case logger != nil:
		logger.Debugf(format, args...)
	}
}

// Debugf writes the formatted LDEBUG level log.
func Debugf(format string, args ...interface{}) {
	if logger != nil {
		logger.Debugf(format, args...)
	}
}

// Infof writes the formatted LINFO level log.
func Infof(format string, args ...interface{}) {
	if logger != nil {
		logger.Infof(format, args...)
	}
}

// Warningf writes the formatted warning level log.
func Warningf(format string, args ...interface{}) {
	if logger != nil {
		logger.Warningf(format, args...)
	}
}

// Errorf writes the formatted LERROR level log.
func Errorf(format string, args ...interface{}) {
	if logger != nil {
		logger.Errorf(format, args...)
	}
}

// Fatalf writes the formatted fatal - LCRITICAL level log and exits.
func Fatalf(format string, args ...interface{}) {
	if logger != nil {
		logger.Fatalf(format, args...)
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
