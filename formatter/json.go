package formatter

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	"github.com/philipp01105/levelog/core"
)

// JSONFormatter formats log entries as one JSON object per line.
//
// The object carries "time", "level" (when the entry has one), "logger"
// (for named loggers), "message" (all messages joined) and "args", the
// messages as typed JSON values.
type JSONFormatter struct {
	Config
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{Config: cfg}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatJSONToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatJSONToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatJSONToBuffer builds JSON manually into the buffer without allocations
func (f *JSONFormatter) formatJSONToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	buf.WriteByte('{')
	sep := false

	if !f.OmitTimestamp {
		buf.WriteString(`"time":"`)
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte('"')
		sep = true
	}

	if entry.Level.IsValid() {
		if sep {
			buf.WriteByte(',')
		}
		buf.WriteString(`"level":"`)
		appendJSONString(buf, entry.Level.String())
		buf.WriteByte('"')
		sep = true
	}

	if entry.Name != "" {
		if sep {
			buf.WriteByte(',')
		}
		buf.WriteString(`"logger":"`)
		appendJSONString(buf, entry.Name)
		buf.WriteByte('"')
		sep = true
	}

	if sep {
		buf.WriteByte(',')
	}
	buf.WriteString(`"message":"`)
	appendJSONString(buf, entry.Message())
	buf.WriteString(`","args":[`)
	for i, m := range entry.Messages {
		if i > 0 {
			buf.WriteByte(',')
		}
		appendJSONValue(buf, m)
	}
	buf.WriteString("]}\n")
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// appendJSONValue writes a message value as a JSON value
func appendJSONValue(buf *bytes.Buffer, v any) {
	switch core.TypeOf(v) {
	case core.NilType:
		buf.WriteString("null")
	case core.IntType, core.UintType:
		fmt.Fprint(buf, v)
	case core.Float64Type:
		var x float64
		switch n := v.(type) {
		case float32:
			x = float64(n)
		case float64:
			x = n
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			buf.WriteByte('"')
			buf.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
			buf.WriteByte('"')
			return
		}
		buf.Write(strconv.AppendFloat(buf.AvailableBuffer(), x, 'f', -1, 64))
	case core.BoolType:
		buf.Write(strconv.AppendBool(buf.AvailableBuffer(), v.(bool)))
	case core.TimeType:
		buf.WriteByte('"')
		buf.Write(v.(time.Time).AppendFormat(buf.AvailableBuffer(), time.RFC3339Nano))
		buf.WriteByte('"')
	case core.DurationType:
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(v.(time.Duration)), 10))
	default:
		buf.WriteByte('"')
		appendJSONString(buf, core.Stringify(v))
		buf.WriteByte('"')
	}
}
