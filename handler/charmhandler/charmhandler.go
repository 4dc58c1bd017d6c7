// Package charmhandler writes dispatches to a github.com/charmbracelet/log
// logger. Logger names become the charm prefix.
package charmhandler

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// Handler writes dispatches to a *log.Logger
type Handler struct {
	logger *log.Logger
	stats  *handler.Stats

	mu       sync.Mutex
	prefixed map[string]*log.Logger
}

// New creates a sink writing to logger
func New(logger *log.Logger) *Handler {
	return &Handler{
		logger:   logger,
		stats:    handler.NewStats(),
		prefixed: make(map[string]*log.Logger),
	}
}

// Handle writes the joined messages as the log message. The first error
// among the messages is passed as the "err" key.
func (h *Handler) Handle(messages []any, ctx core.Context) {
	level, ok := toCharmLevel(ctx.Level)
	if !ok || level < h.logger.GetLevel() {
		return
	}
	logger := h.named(ctx.Name)
	if err := handler.FirstError(messages); err != nil {
		logger.Log(level, core.JoinMessages(messages), "err", err)
	} else {
		logger.Log(level, core.JoinMessages(messages))
	}
	h.stats.IncrementDelivered(ctx.Level)
}

// named returns the child logger for name, creating it once
func (h *Handler) named(name string) *log.Logger {
	if name == "" {
		return h.logger
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	l, ok := h.prefixed[name]
	if !ok {
		l = h.logger.WithPrefix(name)
		h.prefixed[name] = l
	}
	return l
}

// Stats returns a snapshot of delivery statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

func toCharmLevel(level core.Level) (log.Level, bool) {
	switch handler.SeverityOf(level) {
	case handler.SeverityTrace, handler.SeverityDebug:
		return log.DebugLevel, true
	case handler.SeverityInfo:
		return log.InfoLevel, true
	case handler.SeverityWarn:
		return log.WarnLevel, true
	case handler.SeverityError:
		return log.ErrorLevel, true
	default:
		return 0, false
	}
}
