// Package logrhandler writes dispatches to a github.com/go-logr/logr logger.
//
// logr has only verbosity and errors. TRACE and DEBUG become V(2) and V(1)
// info lines, INFO and TIME become V(0), WARN is a V(0) line tagged with
// SeverityKey, and ERROR goes through Logger.Error.
package logrhandler

import (
	"github.com/go-logr/logr"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// SeverityKey tags warnings, which logr cannot express as a level
const SeverityKey = "severity"

// Handler writes dispatches to a logr.Logger
type Handler struct {
	logger logr.Logger
	stats  *handler.Stats
}

// New creates a sink writing to logger
func New(logger logr.Logger) *Handler {
	return &Handler{
		logger: logger,
		stats:  handler.NewStats(),
	}
}

// Handle writes the joined messages as the log message
func (h *Handler) Handle(messages []any, ctx core.Context) {
	sev := handler.SeverityOf(ctx.Level)
	if sev == handler.SeverityNone {
		return
	}
	logger := h.logger
	if ctx.Name != "" {
		logger = logger.WithName(ctx.Name)
	}
	msg := core.JoinMessages(messages)

	switch sev {
	case handler.SeverityError:
		logger.Error(handler.FirstError(messages), msg)
	case handler.SeverityWarn:
		if !logger.Enabled() {
			return
		}
		logger.Info(msg, SeverityKey, "warn")
	default:
		v := logger.V(verbosity(sev))
		if !v.Enabled() {
			return
		}
		v.Info(msg)
	}
	h.stats.IncrementDelivered(ctx.Level)
}

// Stats returns a snapshot of delivery statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

func verbosity(sev handler.Severity) int {
	switch sev {
	case handler.SeverityTrace:
		return 2
	case handler.SeverityDebug:
		return 1
	default:
		return 0
	}
}
