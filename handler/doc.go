// Package handler defines the sink contract of the facade.
//
// A Handler is the single place a log call leaves the facade. The facade
// holds at most one Handler at a time; installing another replaces it.
// Fan-out to several sinks is a Handler in its own right, see the
// multihandler package.
//
// Handlers in the sub-packages:
//
//   - consolehandler writes to a console, routing by level and keeping
//     time/timeEnd timers. It is what UseDefaults installs.
//   - multihandler fans a dispatch out to several handlers, isolating
//     failures per child.
//   - sloghandler, zaphandler, zerologhandler, logrushandler,
//     hcloghandler, logrhandler and charmhandler forward dispatches to
//     an existing logging library.
//
// Handlers wrapping other sinks count deliveries and failures in Stats.
package handler
