package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/levelog/core"
)

// Formatter defines the interface for line formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time format (empty for the formatter default)
	TimestampFormat string
	// OmitTimestamp drops the timestamp from the output
	OmitTimestamp bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// WriteEntry writes entry to w, preferring WriterFormatter when f offers it
func WriteEntry(f Formatter, entry *core.Entry, w io.Writer) error {
	if wf, ok := f.(WriterFormatter); ok {
		return wf.FormatTo(entry, w)
	}
	data, err := f.Format(entry)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
