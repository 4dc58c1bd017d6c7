// Package multihandler provides a fan-out handler that dispatches each
// log call to several child handlers in registration order, isolating
// a failing child from the others.
package multihandler
