package consolehandler

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/formatter"
	"github.com/philipp01105/levelog/handler"
)

// ErrNoFormatter is the panic value raised when a Handler has lost its
// message formatter. New always installs one.
var ErrNoFormatter = errors.New("consolehandler: message formatter is nil")

// detect and now are variables to allow overriding them in tests
var (
	detect = Detect
	now    = time.Now
)

// Options configures New
type Options struct {
	// Formatter rewrites messages before output (default: formatter.PrefixName)
	Formatter formatter.MessageFormatter
	// Console is the sink (default: Detect())
	Console Console
}

// Handler routes dispatches to a Console by level and keeps the timers
// started by time/timeEnd calls.
type Handler struct {
	console Console
	format  formatter.MessageFormatter
	stats   *handler.Stats

	mu     sync.Mutex
	timers map[string]time.Time
}

// New builds the default handler. When opts.Console is nil the process
// console is probed; if there is none, New returns handler.Nop.
func New(opts Options) handler.Handler {
	if opts.Formatter == nil {
		opts.Formatter = formatter.PrefixName
	}
	if opts.Console == nil {
		opts.Console = detect()
	}
	if opts.Console == nil {
		return handler.Nop
	}
	return &Handler{
		console: opts.Console,
		format:  opts.Formatter,
		stats:   handler.NewStats(),
		timers:  make(map[string]time.Time),
	}
}

// Handle writes one dispatch to the console. It is counted as delivered
// once the console call returns.
func (h *Handler) Handle(messages []any, ctx core.Context) {
	if ctx.Level.Equal(core.TimeLevel) {
		h.timer(messages, ctx)
		h.stats.IncrementDelivered(ctx.Level)
		return
	}

	if h.format == nil {
		panic(ErrNoFormatter)
	}

	// The formatter may rewrite in place; never hand it the caller's slice
	msgs := make([]any, len(messages))
	copy(msgs, messages)
	msgs = h.format(msgs, ctx)

	h.route(ctx.Level)(msgs...)
	h.stats.IncrementDelivered(ctx.Level)
}

// route picks the console method for level, falling back to Log
func (h *Handler) route(level core.Level) func(args ...any) {
	switch level.Value {
	case core.WarnLevel.Value:
		if c, ok := h.console.(Warner); ok {
			return c.Warn
		}
	case core.ErrorLevel.Value:
		if c, ok := h.console.(Errorer); ok {
			return c.Error
		}
	case core.InfoLevel.Value:
		if c, ok := h.console.(Informer); ok {
			return c.Info
		}
	case core.DebugLevel.Value:
		if c, ok := h.console.(Debugger); ok {
			return c.Debug
		}
	case core.TraceLevel.Value:
		if c, ok := h.console.(Tracer); ok {
			return c.Trace
		}
	}
	return h.console.Log
}

// timer handles a TimeLevel dispatch: messages are [label, "start"|"end"]
func (h *Handler) timer(messages []any, ctx core.Context) {
	var label string
	if len(messages) > 0 {
		label = core.Stringify(messages[0])
	}
	if ctx.Named() {
		label = "[" + ctx.Name + "] " + label
	}

	if len(messages) > 1 && messages[1] == "start" {
		if c, ok := h.console.(Timer); ok {
			c.Time(label)
			return
		}
		h.mu.Lock()
		h.timers[label] = now()
		h.mu.Unlock()
		return
	}

	if c, ok := h.console.(TimerEnder); ok {
		c.TimeEnd(label)
		return
	}

	h.mu.Lock()
	start, ok := h.timers[label]
	delete(h.timers, label)
	h.mu.Unlock()
	if !ok {
		// Never started: measured from the Unix epoch
		start = time.UnixMilli(0)
	}
	h.console.Log(fmt.Sprintf("%s: %dms", label, now().Sub(start).Milliseconds()))
}

// Stats returns a snapshot of the dispatches handled so far
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}
