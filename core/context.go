package core

// Context is the state a logger hands to its handler with every dispatch.
// Name is empty for the global logger.
type Context struct {
	Level Level
	Name  string
}

// WithLevel returns a copy of c carrying level instead of c.Level
func (c Context) WithLevel(level Level) Context {
	c.Level = level
	return c
}

// Named reports whether the context belongs to a named logger
func (c Context) Named() bool {
	return c.Name != ""
}
