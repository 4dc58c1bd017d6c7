// Package consolehandler builds the default handler: it writes dispatches
// to a console, picking the console method that matches the level.
//
// A console is anything with Log(args ...any). Level specific methods
// (Trace, Debug, Info, Warn, Error) and native timers (Time, TimeEnd) are
// optional; the handler checks for them on every call and falls back to
// Log, or to its own start-time bookkeeping for timers.
//
// Before output, messages pass through a formatter.MessageFormatter;
// the default, formatter.PrefixName, prepends "[name]" for named loggers.
//
// StdConsole is the console used when none is supplied: it renders lines
// with a formatter.Formatter to stdout (warn and error to stderr) and
// colours them per level when writing to a terminal.
package consolehandler
