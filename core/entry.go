package core

import (
	"strings"
	"sync"
	"time"
)

// Entry is a dispatched log call prepared for rendering by a formatter
type Entry struct {
	Time     time.Time
	Level    Level
	Name     string
	Messages []any
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Messages: make([]any, 0, 4),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Messages = e.Messages[:0]
	return e
}

// NewEntry fills a pooled Entry from a dispatch
func NewEntry(messages []any, ctx Context) *Entry {
	e := GetEntry()
	e.Level = ctx.Level
	e.Name = ctx.Name
	e.Messages = append(e.Messages, messages...)
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	clear(e.Messages)
	e.Messages = e.Messages[:0]
	e.Level = Level{}
	e.Name = ""
	entryPool.Put(e)
}

// Message renders the messages separated by single spaces
func (e *Entry) Message() string {
	return JoinMessages(e.Messages)
}

// JoinMessages renders messages with Stringify, separated by single spaces
func JoinMessages(messages []any) string {
	switch len(messages) {
	case 0:
		return ""
	case 1:
		return Stringify(messages[0])
	}
	var b strings.Builder
	for i, m := range messages {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(Stringify(m))
	}
	return b.String()
}
