// Package zaphandler writes dispatches to a go.uber.org/zap logger.
package zaphandler

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// Handler writes dispatches to a *zap.Logger. Logger names become zap
// logger names. TRACE has no zap equivalent and is written at debug.
type Handler struct {
	logger *zap.Logger
	stats  *handler.Stats
}

// New creates a sink writing to logger
func New(logger *zap.Logger) *Handler {
	return &Handler{
		logger: logger,
		stats:  handler.NewStats(),
	}
}

// Handle writes the joined messages as the entry message. The first error
// among the messages is attached with zap.Error.
func (h *Handler) Handle(messages []any, ctx core.Context) {
	level, ok := toZapLevel(ctx.Level)
	if !ok {
		return
	}
	logger := h.logger
	if ctx.Name != "" {
		logger = logger.Named(ctx.Name)
	}
	ce := logger.Check(level, core.JoinMessages(messages))
	if ce == nil {
		return
	}
	if err := handler.FirstError(messages); err != nil {
		ce.Write(zap.Error(err))
	} else {
		ce.Write()
	}
	h.stats.IncrementDelivered(ctx.Level)
}

// Stats returns a snapshot of delivery statistics
func (h *Handler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

func toZapLevel(level core.Level) (zapcore.Level, bool) {
	switch handler.SeverityOf(level) {
	case handler.SeverityTrace, handler.SeverityDebug:
		return zapcore.DebugLevel, true
	case handler.SeverityInfo:
		return zapcore.InfoLevel, true
	case handler.SeverityWarn:
		return zapcore.WarnLevel, true
	case handler.SeverityError:
		return zapcore.ErrorLevel, true
	default:
		return 0, false
	}
}
