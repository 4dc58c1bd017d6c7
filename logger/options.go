package logger

import (
	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/formatter"
	"github.com/philipp01105/levelog/handler"
	"github.com/philipp01105/levelog/handler/consolehandler"
)

// Options configures UseDefaults and CreateDefaultHandler
type Options struct {
	// DefaultLevel is the level UseDefaults applies (default: DebugLevel)
	DefaultLevel core.Level
	// Formatter rewrites messages before they reach the console
	// (default: formatter.PrefixName)
	Formatter formatter.MessageFormatter
	// Console is the output sink (default: detected from the process)
	Console consolehandler.Console
}

// mergeOptions returns the first options value, or the zero value
func mergeOptions(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[0]
}

// CreateDefaultHandler returns a handler that writes to a console. When no
// console is given and none can be detected, the handler does nothing.
func CreateDefaultHandler(opts ...Options) handler.Handler {
	o := mergeOptions(opts)
	return consolehandler.New(consolehandler.Options{
		Formatter: o.Formatter,
		Console:   o.Console,
	})
}
