package logger

import (
	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// Re-exported types so that most callers only import this package
type (
	Level       = core.Level
	Context     = core.Context
	Handler     = handler.Handler
	HandlerFunc = handler.HandlerFunc
)

// Built-in levels
var (
	TraceLevel = core.TraceLevel
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	TimeLevel  = core.TimeLevel
	WarnLevel  = core.WarnLevel
	ErrorLevel = core.ErrorLevel
	OffLevel   = core.OffLevel
)

// DefineLevel creates a custom Level
func DefineLevel(value int, name string) Level {
	return core.DefineLevel(value, name)
}

// ParseLevel converts a level name to a built-in Level. The second result is
// false for unknown names.
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}
