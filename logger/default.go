package logger

import (
	"sync"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

var (
	defaultFacade = New()
	defaultMu     sync.RWMutex
)

// Default returns the default facade
func Default() *Facade {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFacade
}

// SetDefault sets the default facade. Loggers already obtained from the
// previous facade keep dispatching through it.
func SetDefault(f *Facade) {
	if f == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFacade = f
}

// Package-level convenience functions using the default facade

// SetLevel sets the global level and cascades it to every named logger
func SetLevel(level core.Level) {
	Default().SetLevel(level)
}

// GetLevel returns the global level
func GetLevel() core.Level {
	return Default().GetLevel()
}

// EnabledFor reports whether the global logger passes level
func EnabledFor(level core.Level) bool {
	return Default().EnabledFor(level)
}

// SetHandler replaces the handler of the default facade
func SetHandler(h handler.Handler) {
	Default().SetHandler(h)
}

// Get returns the named logger of the default facade
func Get(name string) *Logger {
	return Default().Get(name)
}

// UseDefaults installs the console handler on the default facade
func UseDefaults(opts ...Options) {
	Default().UseDefaults(opts...)
}

// Trace logs at TraceLevel using the default facade
func Trace(args ...any) {
	Default().Trace(args...)
}

// Debug logs at DebugLevel using the default facade
func Debug(args ...any) {
	Default().Debug(args...)
}

// Info logs at InfoLevel using the default facade
func Info(args ...any) {
	Default().Info(args...)
}

// Log is Info using the default facade
func Log(args ...any) {
	Default().Log(args...)
}

// Warn logs at WarnLevel using the default facade
func Warn(args ...any) {
	Default().Warn(args...)
}

// Error logs at ErrorLevel using the default facade
func Error(args ...any) {
	Default().Error(args...)
}

// Time starts a timer using the default facade
func Time(label string) {
	Default().Time(label)
}

// TimeEnd stops a timer using the default facade
func TimeEnd(label string) {
	Default().TimeEnd(label)
}

// Tracef logs a formatted message at TraceLevel using the default facade
func Tracef(format string, args ...any) {
	Default().Tracef(format, args...)
}

// Debugf logs a formatted message at DebugLevel using the default facade
func Debugf(format string, args ...any) {
	Default().Debugf(format, args...)
}

// Infof logs a formatted message at InfoLevel using the default facade
func Infof(format string, args ...any) {
	Default().Infof(format, args...)
}

// Warnf logs a formatted message at WarnLevel using the default facade
func Warnf(format string, args ...any) {
	Default().Warnf(format, args...)
}

// Errorf logs a formatted message at ErrorLevel using the default facade
func Errorf(format string, args ...any) {
	Default().Errorf(format, args...)
}
