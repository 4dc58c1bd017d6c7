package logger

import (
	"fmt"
	"sync/atomic"

	"github.com/philipp01105/levelog/core"
)

// Logger filters log calls against its own threshold and hands the
// survivors to its facade's handler.
//
// A Logger is obtained from a Facade, either as the global logger or by
// name through Get. It is safe for concurrent use.
type Logger struct {
	facade *Facade
	name   string
	level  atomic.Pointer[core.Level]
}

// newLogger creates a Logger owning ctx. An invalid initial level leaves
// the logger at OffLevel.
func newLogger(f *Facade, ctx core.Context) *Logger {
	l := &Logger{facade: f, name: ctx.Name}
	off := core.OffLevel
	l.level.Store(&off)
	l.SetLevel(ctx.Level)
	return l
}

// SetLevel changes the threshold. The undefined zero Level is ignored.
func (l *Logger) SetLevel(level core.Level) {
	if !level.IsValid() {
		return
	}
	l.level.Store(&level)
}

// GetLevel returns the current threshold
func (l *Logger) GetLevel() core.Level {
	return *l.level.Load()
}

// Name returns the logger name, empty for the global logger
func (l *Logger) Name() string {
	return l.name
}

// Context returns a snapshot of the logger's context
func (l *Logger) Context() core.Context {
	return core.Context{Level: l.GetLevel(), Name: l.name}
}

// EnabledFor reports whether calls at level pass the threshold
func (l *Logger) EnabledFor(level core.Level) bool {
	return level.AtLeast(l.GetLevel())
}

// Trace logs at TraceLevel
func (l *Logger) Trace(args ...any) {
	l.invoke(core.TraceLevel, args)
}

// Debug logs at DebugLevel
func (l *Logger) Debug(args ...any) {
	l.invoke(core.DebugLevel, args)
}

// Info logs at InfoLevel
func (l *Logger) Info(args ...any) {
	l.invoke(core.InfoLevel, args)
}

// Log is Info
func (l *Logger) Log(args ...any) {
	l.Info(args...)
}

// Warn logs at WarnLevel
func (l *Logger) Warn(args ...any) {
	l.invoke(core.WarnLevel, args)
}

// Error logs at ErrorLevel
func (l *Logger) Error(args ...any) {
	l.invoke(core.ErrorLevel, args)
}

// Time marks the start of the timer label at TimeLevel. An empty label is
// ignored.
func (l *Logger) Time(label string) {
	if label == "" {
		return
	}
	l.invoke(core.TimeLevel, []any{label, "start"})
}

// TimeEnd marks the end of the timer label at TimeLevel. An empty label is
// ignored.
func (l *Logger) TimeEnd(label string) {
	if label == "" {
		return
	}
	l.invoke(core.TimeLevel, []any{label, "end"})
}

// Tracef logs a formatted message at TraceLevel
func (l *Logger) Tracef(format string, args ...any) {
	l.invokef(core.TraceLevel, format, args)
}

// Debugf logs a formatted message at DebugLevel
func (l *Logger) Debugf(format string, args ...any) {
	l.invokef(core.DebugLevel, format, args)
}

// Infof logs a formatted message at InfoLevel
func (l *Logger) Infof(format string, args ...any) {
	l.invokef(core.InfoLevel, format, args)
}

// Warnf logs a formatted message at WarnLevel
func (l *Logger) Warnf(format string, args ...any) {
	l.invokef(core.WarnLevel, format, args)
}

// Errorf logs a formatted message at ErrorLevel
func (l *Logger) Errorf(format string, args ...any) {
	l.invokef(core.ErrorLevel, format, args)
}

// invoke hands messages to the installed handler unless filtered.
// The handler sees the dispatched level, not the threshold.
func (l *Logger) invoke(level core.Level, messages []any) {
	h := l.facade.Handler()
	if h == nil || !l.EnabledFor(level) {
		return
	}
	h.Handle(messages, core.Context{Level: level, Name: l.name})
}

// invokef formats only once the call is known to pass the gate
func (l *Logger) invokef(level core.Level, format string, args []any) {
	if !l.EnabledFor(level) || l.facade.Handler() == nil {
		return
	}
	l.invoke(level, []any{fmt.Sprintf(format, args...)})
}
