package multihandler

import (
	"sync"

	"github.com/philipp01105/levelog/core"
	"github.com/philipp01105/levelog/handler"
)

// Handler sends every dispatch to each child handler in registration
// order. A child that panics is skipped for that dispatch and counted as
// failed; the remaining children still run.
type Handler struct {
	mu       sync.RWMutex
	handlers []handler.Handler
	stats    *handler.Stats
}

// New creates a fan-out handler with the given children
func New(handlers ...handler.Handler) *Handler {
	m := &Handler{stats: handler.NewStats()}
	for _, h := range handlers {
		m.Add(h)
	}
	return m
}

// Add appends h to the children. Nil handlers are ignored.
func (m *Handler) Add(h handler.Handler) {
	if h == nil {
		return
	}
	m.mu.Lock()
	m.handlers = append(m.handlers, h)
	m.mu.Unlock()
}

// Len returns the number of children
func (m *Handler) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.handlers)
}

// Handle processes a dispatch by sending it to all children
func (m *Handler) Handle(messages []any, ctx core.Context) {
	m.mu.RLock()
	handlers := m.handlers
	m.mu.RUnlock()

	for _, h := range handlers {
		if m.deliver(h, messages, ctx) {
			m.stats.IncrementDelivered(ctx.Level)
		} else {
			m.stats.IncrementFailed()
		}
	}
}

// deliver calls h, reporting false if it panicked
func (m *Handler) deliver(h handler.Handler, messages []any, ctx core.Context) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
		}
	}()
	h.Handle(messages, ctx)
	return true
}

// Stats returns a snapshot of delivery statistics
func (m *Handler) Stats() handler.Snapshot {
	return m.stats.GetSnapshot()
}
