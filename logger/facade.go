package logger

import (
	"sync/atomic"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// Facade owns a global Logger, the registry of named loggers and the
// handler slot they all dispatch to.
//
// The slot holds at most one handler; SetHandler replaces it. Use
// multihandler to reach several sinks.
type Facade struct {
	global   *Logger
	registry *registry
	handler  atomic.Pointer[handlerSlot]
}

type handlerSlot struct {
	h handler.Handler
}

// Builder provides a fluent API for building Facade instances
type Builder struct {
	handler handler.Handler
	level   core.Level
}

// NewBuilder creates a new facade builder. The default level is OffLevel
// and no handler is installed.
func NewBuilder() *Builder {
	return &Builder{
		level: core.OffLevel,
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLevel sets the initial global level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// Build creates the Facade instance
func (b *Builder) Build() *Facade {
	f := &Facade{registry: newRegistry()}
	f.global = newLogger(f, core.Context{Level: b.level})
	f.SetHandler(b.handler)
	return f
}

// New creates a Facade at OffLevel with no handler
func New() *Facade {
	return NewBuilder().Build()
}

// SetHandler installs h, replacing any previous handler. A nil h, including
// a nil HandlerFunc, removes the handler, turning every log call into a no-op.
func (f *Facade) SetHandler(h handler.Handler) {
	if isNilHandler(h) {
		f.handler.Store(nil)
		return
	}
	f.handler.Store(&handlerSlot{h: h})
}

func isNilHandler(h handler.Handler) bool {
	if h == nil {
		return true
	}
	fn, ok := h.(handler.HandlerFunc)
	return ok && fn == nil
}

// Handler returns the installed handler, or nil
func (f *Facade) Handler() handler.Handler {
	if s := f.handler.Load(); s != nil {
		return s.h
	}
	return nil
}

// Global returns the global logger
func (f *Facade) Global() *Logger {
	return f.global
}

// Get returns the logger registered under name, creating it on first use.
// A new logger starts at the global level current at creation time; later
// global changes reach it only through SetLevel.
func (f *Facade) Get(name string) *Logger {
	return f.registry.get(name, func() *Logger {
		return newLogger(f, core.Context{Name: name, Level: f.global.GetLevel()})
	})
}

// Names returns the names of all registered loggers, sorted
func (f *Facade) Names() []string {
	return f.registry.names()
}

// Len returns the number of registered named loggers
func (f *Facade) Len() int {
	return f.registry.len()
}

// SetLevel sets the level of the global logger and of every registered
// named logger
func (f *Facade) SetLevel(level core.Level) {
	f.registry.cascade(f.global, level)
}

// GetLevel returns the global level
func (f *Facade) GetLevel() core.Level {
	return f.global.GetLevel()
}

// EnabledFor reports whether the global logger passes level
func (f *Facade) EnabledFor(level core.Level) bool {
	return f.global.EnabledFor(level)
}

// Trace logs at TraceLevel on the global logger
func (f *Facade) Trace(args ...any) { f.global.Trace(args...) }

// Debug logs at DebugLevel on the global logger
func (f *Facade) Debug(args ...any) { f.global.Debug(args...) }

// Info logs at InfoLevel on the global logger
func (f *Facade) Info(args ...any) { f.global.Info(args...) }

// Log is Info on the global logger
func (f *Facade) Log(args ...any) { f.global.Log(args...) }

// Warn logs at WarnLevel on the global logger
func (f *Facade) Warn(args ...any) { f.global.Warn(args...) }

// Error logs at ErrorLevel on the global logger
func (f *Facade) Error(args ...any) { f.global.Error(args...) }

// Time starts a timer on the global logger
func (f *Facade) Time(label string) { f.global.Time(label) }

// TimeEnd stops a timer on the global logger
func (f *Facade) TimeEnd(label string) { f.global.TimeEnd(label) }

// Tracef logs a formatted message at TraceLevel on the global logger
func (f *Facade) Tracef(format string, args ...any) { f.global.Tracef(format, args...) }

// Debugf logs a formatted message at DebugLevel on the global logger
func (f *Facade) Debugf(format string, args ...any) { f.global.Debugf(format, args...) }

// Infof logs a formatted message at InfoLevel on the global logger
func (f *Facade) Infof(format string, args ...any) { f.global.Infof(format, args...) }

// Warnf logs a formatted message at WarnLevel on the global logger
func (f *Facade) Warnf(format string, args ...any) { f.global.Warnf(format, args...) }

// Errorf logs a formatted message at ErrorLevel on the global logger
func (f *Facade) Errorf(format string, args ...any) { f.global.Errorf(format, args...) }

// CreateDefaultHandler builds the console handler described by opts
func (f *Facade) CreateDefaultHandler(opts ...Options) handler.Handler {
	return CreateDefaultHandler(opts...)
}

// UseDefaults sets the level to opts.DefaultLevel (DebugLevel when unset)
// and installs the console handler
func (f *Facade) UseDefaults(opts ...Options) {
	o := mergeOptions(opts)
	level := core.DebugLevel
	if o.DefaultLevel.IsValid() {
		level = o.DefaultLevel
	}
	f.SetLevel(level)
	f.SetHandler(CreateDefaultHandler(o))
}
