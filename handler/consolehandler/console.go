package consolehandler

// Console is the capability every console offers: a generic output method.
// The optional interfaces below are discovered by type assertion at call
// time; a console lacking one gets the Log fallback.
type Console interface {
	Log(args ...any)
}

// Tracer is a console with a trace output method
type Tracer interface {
	Trace(args ...any)
}

// Debugger is a console with a debug output method
type Debugger interface {
	Debug(args ...any)
}

// Informer is a console with an info output method
type Informer interface {
	Info(args ...any)
}

// Warner is a console with a warning output method
type Warner interface {
	Warn(args ...any)
}

// Errorer is a console with an error output method
type Errorer interface {
	Error(args ...any)
}

// Timer is a console with native timers
type Timer interface {
	Time(label string)
}

// TimerEnder is a console that can stop and report native timers
type TimerEnder interface {
	TimeEnd(label string)
}
