// Package zerologhandler writes dispatches to a github.com/rs/zerolog logger.
package zerologhandler

import (
	"github.com/rs/zerolog"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// LoggerFieldName is the event field carrying the logger name
var LoggerFieldName = "logger"

// Handler writes dispatches to a zerolog.Logger
type Handler struct {
	logger zerolog.Logger
	stats  *handler.Stats
}

// New creates a sink writing to logger
func New(logger zerolog.Logger) *Handler {
	return &Handler{
		logger: logger,
		stats:  handler.NewStats(),
	}
}

// Handle writes the joined messages as the event message
func (h *Handler) Handle(messages []any, ctx core.Context) {
	level, ok := toZerologLevel(ctx.Level)
	if !ok {
		return
	}
	ev := h.logger.WithLevel(level)
	if ev == nil {
		return
	}
	if ctx.Name != "" {
		ev = ev.Str(LoggerFieldName, ctx.Name)
	}
	if err := handler.FirstError(messages); err != nil {
		ev = ev.Err(err)
	}
	ev.Msg(core.JoinMessages(messages))
	h.stats.IncrementDelivered(ctx.Level)
}

// Stats returns a snapshot of delivery statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

func toZerologLevel(level core.Level) (zerolog.Level, bool) {
	switch handler.SeverityOf(level) {
	case handler.SeverityTrace:
		return zerolog.TraceLevel, true
	case handler.SeverityDebug:
		return zerolog.DebugLevel, true
	case handler.SeverityInfo:
		return zerolog.InfoLevel, true
	case handler.SeverityWarn:
		return zerolog.WarnLevel, true
	case handler.SeverityError:
		return zerolog.ErrorLevel, true
	default:
		return zerolog.NoLevel, false
	}
}
