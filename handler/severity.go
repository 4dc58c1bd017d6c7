package handler

import (
	"github.com/philipp01105/levelog/core"
)

// Severity is the coarse bucket a level falls into when it is handed to a
// backend with a fixed set of levels
type Severity int

const (
	SeverityNone Severity = iota
	SeverityTrace
	SeverityDebug
	SeverityInfo
	SeverityWarn
	SeverityError
)

// SeverityOf buckets level by value. TIME and anything between INFO and
// WARN land on SeverityInfo; custom levels above ERROR land on
// SeverityError. OFF and above, and the zero Level, map to SeverityNone.
func SeverityOf(level core.Level) Severity {
	v := level.Value
	switch {
	case !level.IsValid() || v >= core.OffLevel.Value:
		return SeverityNone
	case v >= core.ErrorLevel.Value:
		return SeverityError
	case v >= core.WarnLevel.Value:
		return SeverityWarn
	case v >= core.InfoLevel.Value:
		return SeverityInfo
	case v >= core.DebugLevel.Value:
		return SeverityDebug
	default:
		return SeverityTrace
	}
}

// FirstError returns the first error found in messages, or nil
func FirstError(messages []any) error {
	for _, m := range messages {
		if err, ok := m.(error); ok {
			return err
		}
	}
	return nil
}
