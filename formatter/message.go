package formatter

import (
	"github.com/philipp01105/levelog/core"
)

// MessageFormatter rewrites the message list of a dispatch before it reaches
// a console. It may return the input slice modified in place or a new slice.
type MessageFormatter func(messages []any, ctx core.Context) []any

// PrefixName prepends "[name]" to the messages of named loggers
func PrefixName(messages []any, ctx core.Context) []any {
	if !ctx.Named() {
		return messages
	}
	out := make([]any, 0, len(messages)+1)
	out = append(out, "["+ctx.Name+"]")
	return append(out, messages...)
}

// Chain runs formatters in order, each receiving the previous output
func Chain(formatters ...MessageFormatter) MessageFormatter {
	return func(messages []any, ctx core.Context) []any {
		for _, f := range formatters {
			messages = f(messages, ctx)
		}
		return messages
	}
}
