package core

import (
	"strconv"
	"strings"
)

// Level is a severity descriptor. Levels are compared by Value only; two
// levels with the same Value are interchangeable for filtering.
//
// The zero Level is the undefined level and is rejected by every SetLevel.
type Level struct {
	Value int
	Name  string
}

// DefineLevel creates a Level
func DefineLevel(value int, name string) Level {
	return Level{Value: value, Name: name}
}

// Built-in levels. Only their relative order matters.
var (
	TraceLevel = DefineLevel(1, "TRACE")
	DebugLevel = DefineLevel(2, "DEBUG")
	InfoLevel  = DefineLevel(3, "INFO")
	TimeLevel  = DefineLevel(4, "TIME")
	WarnLevel  = DefineLevel(5, "WARN")
	ErrorLevel = DefineLevel(8, "ERROR")
	OffLevel   = DefineLevel(99, "OFF")
)

// IsValid reports whether l is a defined level
func (l Level) IsValid() bool {
	return l != Level{}
}

// Equal reports whether l and o filter identically
func (l Level) Equal(o Level) bool {
	return l.Value == o.Value
}

// AtLeast reports whether l is as severe as threshold or more
func (l Level) AtLeast(threshold Level) bool {
	return l.Value >= threshold.Value
}

// String returns the string representation of the level
func (l Level) String() string {
	if l.Name != "" {
		return l.Name
	}
	return "LEVEL(" + strconv.Itoa(l.Value) + ")"
}

// Levels returns the built-in levels ordered by value
func Levels() []Level {
	return []Level{TraceLevel, DebugLevel, InfoLevel, TimeLevel, WarnLevel, ErrorLevel, OffLevel}
}

// ParseLevel converts a level name to a built-in Level. The second result is
// false when s names no built-in level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, true
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "TIME":
		return TimeLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR", "ERR":
		return ErrorLevel, true
	case "OFF", "NONE":
		return OffLevel, true
	default:
		return Level{}, false
	}
}
