package handler

import (
	"github.com/philipp01105/levelog/core"
)

// Handler receives every dispatch that passed a logger's level gate.
//
// messages is the caller's argument list, untouched. ctx carries the
// dispatched level (not the logger's threshold) and the logger name.
// Handle is called synchronously on the logging goroutine; a panic
// propagates to the log call site.
type Handler interface {
	Handle(messages []any, ctx core.Context)
}

// HandlerFunc adapts an ordinary function to the Handler interface
type HandlerFunc func(messages []any, ctx core.Context)

// Handle calls f(messages, ctx)
func (f HandlerFunc) Handle(messages []any, ctx core.Context) {
	f(messages, ctx)
}

type nopHandler struct{}

func (nopHandler) Handle([]any, core.Context) {}

// Nop is a handler that does nothing
var Nop Handler = nopHandler{}
