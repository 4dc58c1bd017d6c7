package sloghandler

import (
	"context"
	"log/slog"
	"time"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// LevelTrace is the slog level TRACE dispatches are emitted at
const LevelTrace = slog.LevelDebug - 4

// LoggerKey is the attribute key carrying the logger name
const LoggerKey = "logger"

// Handler writes dispatches to a slog.Handler
type Handler struct {
	target slog.Handler
	stats  *handler.Stats
}

// New creates a sink writing to target
func New(target slog.Handler) *Handler {
	return &Handler{
		target: target,
		stats:  handler.NewStats(),
	}
}

// Handle renders messages as the record message. Named loggers add a
// LoggerKey attribute; the first error among the messages is added under
// "error".
func (h *Handler) Handle(messages []any, ctx core.Context) {
	level, ok := toSlogLevel(ctx.Level)
	if !ok {
		return
	}
	bg := context.Background()
	if !h.target.Enabled(bg, level) {
		return
	}

	r := slog.NewRecord(time.Now(), level, core.JoinMessages(messages), 0)
	if ctx.Name != "" {
		r.AddAttrs(slog.String(LoggerKey, ctx.Name))
	}
	if err := handler.FirstError(messages); err != nil {
		r.AddAttrs(slog.Any("error", err))
	}

	if err := h.target.Handle(bg, r); err != nil {
		h.stats.IncrementFailed()
		return
	}
	h.stats.IncrementDelivered(ctx.Level)
}

// Stats returns a snapshot of delivery statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

func toSlogLevel(level core.Level) (slog.Level, bool) {
	switch handler.SeverityOf(level) {
	case handler.SeverityTrace:
		return LevelTrace, true
	case handler.SeverityDebug:
		return slog.LevelDebug, true
	case handler.SeverityInfo:
		return slog.LevelInfo, true
	case handler.SeverityWarn:
		return slog.LevelWarn, true
	case handler.SeverityError:
		return slog.LevelError, true
	default:
		return 0, false
	}
}
