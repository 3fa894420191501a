package log

import (
	"github.com/neuronlabs/uni-logger"
)

// modules are all the module loggers created within the process. The package
// level setters propagate the logger and its level into them.
var modules []*ModuleLogger

// ModuleLogger is the logger of a single library component, i.e. 'parser' or 'encoder'.
// Each message is prefixed with the module name in square brackets.
type ModuleLogger struct {
	Name string

	logger       unilogger.LeveledLogger
	levelSetter  unilogger.LevelSetter
	debugLeveled unilogger.DebugLeveledLogger
	currentLevel unilogger.Level
}

// NewModuleLogger creates new module logger for given 'name' of the module and an optional 'logger'.
// Without the 'logger' the module uses the sub logger of the package logger
// or writes directly to it.
func NewModuleLogger(name string, moduleLogger ...unilogger.LeveledLogger) *ModuleLogger {
	m := &ModuleLogger{Name: name, currentLevel: currentLevel}
	modules = append(modules, m)

	if len(moduleLogger) > 0 {
		m.use(moduleLogger[0])
	} else if sub, ok := logger.(unilogger.SubLogger); ok {
		m.use(sub.SubLogger())
	}
	Debug2f("Module Logger: '%s' created", name)
	return m
}

func (m *ModuleLogger) use(l unilogger.LeveledLogger) {
	if l == nil {
		return
	}
	m.logger = l
	m.debugLeveled, _ = l.(unilogger.DebugLeveledLogger)
	m.levelSetter, _ = l.(unilogger.LevelSetter)
	if getter, ok := l.(unilogger.LevelGetter); ok {
		m.currentLevel = getter.GetLevel()
	}
}

// Level gets the module logger level.
func (m *ModuleLogger) Level() unilogger.Level {
	return m.currentLevel
}

// SetLevel sets the module logger level.
func (m *ModuleLogger) SetLevel(level unilogger.Level) {
	m.currentLevel = level
	if m.levelSetter != nil {
		m.levelSetter.SetLevel(level)
	}
}

// Debug3f writes the formatted debug3 log.
func (m *ModuleLogger) Debug3f(format string, args ...interface{}) {
	m.write(LDEBUG3, format, args)
}

// Debug2f writes the formatted debug2 log.
func (m *ModuleLogger) Debug2f(format string, args ...interface{}) {
	m.write(LDEBUG2, format, args)
}

// Debugf writes the formatted debug log.
func (m *ModuleLogger) Debugf(format string, args ...interface{}) {
	m.write(LDEBUG, format, args)
}

// Infof writes the formatted info log.
func (m *ModuleLogger) Infof(format string, args ...interface{}) {
	m.write(LINFO, format, args)
}

// Warningf writes the formatted warning log.
func (m *ModuleLogger) Warningf(format string, args ...interface{}) {
	m.write(LWARNING, format, args)
}

// Errorf writes the formatted error log.
func (m *ModuleLogger) Errorf(format string, args ...interface{}) {
	m.write(LERROR, format, args)
}

func (m *ModuleLogger) write(level unilogger.Level, format string, args []interface{}) {
	out := m.logger
	if out == nil {
		out = logger
	}
	if out == nil {
		return
	}
	// loggers with the level setter filter the messages on their own.
	if m.levelSetter == nil && m.currentLevel != LUNKNOWN && level < m.currentLevel {
		return
	}

	format = "[" + m.Name + "] " + format
	switch level {
	case LDEBUG3, LDEBUG2:
		debug := m.debugLeveled
		if m.logger == nil {
			debug = debugLeveled
		}
		if debug == nil {
			out.Debugf(format, args...)
		} else if level == LDEBUG3 {
			debug.Debug3f(format, args...)
		} else {
			debug.Debug2f(format, args...)
		}
	case LDEBUG:
		out.Debugf(format, args...)
	case LINFO:
		out.Infof(format, args...)
	case LWARNING:
		out.Warningf(format, args...)
	default:
		out.Errorf(format, args...)
	}
}
