// Package hcloghandler writes dispatches to a github.com/hashicorp/go-hclog logger.
package hcloghandler

import (
	"github.com/hashicorp/go-hclog"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// Handler writes dispatches to an hclog.Logger. Logger names become
// sub-logger names via Named.
type Handler struct {
	logger hclog.Logger
	stats  *handler.Stats
}

// New creates a sink writing to logger
func New(logger hclog.Logger) *Handler {
	return &Handler{
		logger: logger,
		stats:  handler.NewStats(),
	}
}

// Handle writes the joined messages as the log message. The first error
// among the messages is passed as the "error" key.
func (h *Handler) Handle(messages []any, ctx core.Context) {
	level, ok := toHclogLevel(ctx.Level)
	if !ok || level < h.logger.GetLevel() {
		return
	}
	logger := h.logger
	if ctx.Name != "" {
		logger = logger.Named(ctx.Name)
	}
	if err := handler.FirstError(messages); err != nil {
		logger.Log(level, core.JoinMessages(messages), "error", err)
	} else {
		logger.Log(level, core.JoinMessages(messages))
	}
	h.stats.IncrementDelivered(ctx.Level)
}

// Stats returns a snapshot of delivery statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

func toHclogLevel(level core.Level) (hclog.Level, bool) {
	switch handler.SeverityOf(level) {
	case handler.SeverityTrace:
		return hclog.Trace, true
	case handler.SeverityDebug:
		return hclog.Debug, true
	case handler.SeverityInfo:
		return hclog.Info, true
	case handler.SeverityWarn:
		return hclog.Warn, true
	case handler.SeverityError:
		return hclog.Error, true
	default:
		return hclog.NoLevel, false
	}
}
