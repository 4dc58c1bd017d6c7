package formatter

import (
	"bytes"
	"io"
	"time"

	"github.com/philipp01105/levelog/core"
)

// TextFormatter formats log entries as human-readable text
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	if !f.OmitTimestamp {
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte(' ')
	}

	// Generic console output carries no level
	if entry.Level.IsValid() {
		buf.WriteByte('[')
		buf.WriteString(entry.Level.String())
		buf.WriteString("] ")
	}

	if entry.Name != "" {
		buf.WriteByte('[')
		buf.WriteString(entry.Name)
		buf.WriteString("] ")
	}

	for i, m := range entry.Messages {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(core.Stringify(m))
	}

	buf.WriteByte('\n')
}
