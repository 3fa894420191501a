// Package log contains the default jsonapi logger and its module loggers.
// It is used by all packages to log the messages.
//
// The package wraps the 'github.com/neuronlabs/uni-logger' interfaces so that
// any third-party logger implementing unilogger.LeveledLogger might be set as
// the library logger. Module loggers allow to set a different level or logger
// instance for the chosen library components, i.e. 'parser' or 'encoder'.
//
// Until the logger is set with SetLogger, New or Default the package doesn't log anything.
package log
