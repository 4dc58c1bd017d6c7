package sloghandler

import (
	"context"
	"log/slog"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// Bridge is an adapter that implements slog.Handler using a handler.Handler.
// The record message is the first dispatched value; each attribute follows
// as a "key=value" string.
type Bridge struct {
	handler handler.Handler
	level   core.Level
	name    string
	attrs   []string
	group   string
}

// NewBridge creates a new slog.Handler adapter wrapping h. Records below
// level are dropped. name is reported to h as the logger name.
func NewBridge(h handler.Handler, level core.Level, name string) *Bridge {
	return &Bridge{
		handler: h,
		level:   level,
		name:    name,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (b *Bridge) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level).AtLeast(b.level)
}

// Handle converts record to a dispatch and passes it to the wrapped handler.
func (b *Bridge) Handle(_ context.Context, record slog.Record) error {
	messages := make([]any, 0, 1+len(b.attrs)+record.NumAttrs())
	messages = append(messages, record.Message)
	for _, a := range b.attrs {
		messages = append(messages, a)
	}
	record.Attrs(func(a slog.Attr) bool {
		messages = appendAttr(messages, b.group, a)
		return true
	})

	b.handler.Handle(messages, core.Context{Level: slogLevelToCore(record.Level), Name: b.name})
	return nil
}

// WithAttrs returns a new Bridge with additional attributes.
func (b *Bridge) WithAttrs(attrs []slog.Attr) slog.Handler {
	rendered := make([]any, 0, len(attrs))
	for _, a := range attrs {
		rendered = appendAttr(rendered, b.group, a)
	}
	newAttrs := make([]string, len(b.attrs), len(b.attrs)+len(rendered))
	copy(newAttrs, b.attrs)
	for _, r := range rendered {
		newAttrs = append(newAttrs, r.(string))
	}
	nb := *b
	nb.attrs = newAttrs
	return &nb
}

// WithGroup returns a new Bridge with the given group name.
func (b *Bridge) WithGroup(name string) slog.Handler {
	if name == "" {
		return b
	}
	nb := *b
	if b.group != "" {
		nb.group = b.group + "." + name
	} else {
		nb.group = name
	}
	return &nb
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendAttr renders a as "key=value", flattening groups with a dotted
// prefix.
func appendAttr(dst []any, group string, a slog.Attr) []any {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			dst = appendAttr(dst, key, ga)
		}
		return dst
	}
	return append(dst, key+"="+core.Stringify(a.Value.Any()))
}
