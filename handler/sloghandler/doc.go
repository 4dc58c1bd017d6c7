// Package sloghandler connects the facade with log/slog in both directions.
//
// Handler is a sink: it renders each dispatch as a slog.Record and hands
// it to any slog.Handler. Bridge goes the other way and implements
// slog.Handler on top of a handler.Handler, so code written against
// log/slog can feed the same sinks as the facade.
package sloghandler
