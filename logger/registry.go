package logger

import (
	"sort"
	"sync"

	"github.com/philipp01105/levelog/core"
)

// registry maps names to their loggers. Entries are never removed.
//
// Creation and the level cascade both run under the write lock, so a
// logger created concurrently with SetLevel either inherits the new level
// or is reached by the cascade.
type registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

func newRegistry() *registry {
	return &registry{loggers: make(map[string]*Logger)}
}

// get returns the logger for name, creating it with newFn on first use
func (r *registry) get(name string, newFn func() *Logger) *Logger {
	r.mu.RLock()
	l, ok := r.loggers[name]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.loggers[name]; ok {
		return l
	}
	l = newFn()
	r.loggers[name] = l
	return l
}

// cascade sets level on global and on every registered logger
func (r *registry) cascade(global *Logger, level core.Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	global.SetLevel(level)
	for _, l := range r.loggers {
		l.SetLevel(level)
	}
}

func (r *registry) names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.loggers))
	for name := range r.loggers {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.loggers)
}
