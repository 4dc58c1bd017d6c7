// Package logrushandler writes dispatches to a github.com/sirupsen/logrus logger.
package logrushandler

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// LoggerField is the entry field carrying the logger name
const LoggerField = "logger"

// Handler writes dispatches to a *logrus.Logger
type Handler struct {
	logger *logrus.Logger
	stats  *handler.Stats
}

// New creates a sink writing to logger
func New(logger *logrus.Logger) *Handler {
	return &Handler{
		logger: logger,
		stats:  handler.NewStats(),
	}
}

// Handle writes the joined messages as the entry message. The first error
// among the messages is attached with WithError.
func (h *Handler) Handle(messages []any, ctx core.Context) {
	level, ok := toLogrusLevel(ctx.Level)
	if !ok || !h.logger.IsLevelEnabled(level) {
		return
	}
	entry := logrus.NewEntry(h.logger)
	if ctx.Name != "" {
		entry = entry.WithField(LoggerField, ctx.Name)
	}
	if err := handler.FirstError(messages); err != nil {
		entry = entry.WithError(err)
	}
	entry.Log(level, core.JoinMessages(messages))
	h.stats.IncrementDelivered(ctx.Level)
}

// Stats returns a snapshot of delivery statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

func toLogrusLevel(level core.Level) (logrus.Level, bool) {
	switch handler.SeverityOf(level) {
	case handler.SeverityTrace:
		return logrus.TraceLevel, true
	case handler.SeverityDebug:
		return logrus.DebugLevel, true
	case handler.SeverityInfo:
		return logrus.InfoLevel, true
	case handler.SeverityWarn:
		return logrus.WarnLevel, true
	case handler.SeverityError:
		return logrus.ErrorLevel, true
	default:
		return 0, false
	}
}
