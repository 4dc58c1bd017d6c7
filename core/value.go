package core

import (
	"fmt"
	"strconv"
	"time"
)

// ValueType classifies an opaque message value for rendering
type ValueType uint8

const (
	StringType ValueType = iota
	IntType
	UintType
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	StringerType
	NilType
	AnyType
)

// TypeOf classifies v. Messages are never inspected beyond this.
func TypeOf(v any) ValueType {
	switch v.(type) {
	case nil:
		return NilType
	case string:
		return StringType
	case int, int8, int16, int32, int64:
		return IntType
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return UintType
	case float32, float64:
		return Float64Type
	case bool:
		return BoolType
	case time.Time:
		return TimeType
	case time.Duration:
		return DurationType
	case error:
		return ErrorType
	case fmt.Stringer:
		return StringerType
	default:
		return AnyType
	}
}

// Stringify returns the text form of a message value
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case time.Time:
		return x.Format(time.RFC3339)
	case time.Duration:
		return x.String()
	case error:
		return x.Error()
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
