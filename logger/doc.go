// Package logger is the public API of the facade. Most users only need
// to import this package.
//
// A Facade owns three things: a global Logger, a registry of named
// Loggers and a single handler slot. Every Logger filters calls against
// its own level and hands the survivors, untouched, to the facade's
// handler together with a Context carrying the dispatched level and the
// logger name.
//
// The package keeps a default Facade (OffLevel, no handler). The
// package-level functions Info, Warn, Get, SetLevel, etc. delegate to it,
// so simple programs can log after one call:
//
//	logger.UseDefaults()
//	logger.Info("ready on port", 8080)
//
// Named loggers are created on first use and returned unchanged on every
// later call with the same name. A new named logger starts at the global
// level of that moment; SetLevel on the facade later overwrites the level
// of every named logger:
//
//	db := logger.Get("db")
//	db.SetLevel(logger.DebugLevel)
//	db.Debug("query", sql)
//
// For isolated configuration, e.g. one per test, build a Facade:
//
//	f := logger.NewBuilder().
//	    WithLevel(logger.WarnLevel).
//	    WithHandler(myHandler).
//	    Build()
//
// Loggers and facades are safe for concurrent use. The handler runs on
// the logging goroutine; a panic inside it reaches the log call site.
package logger
