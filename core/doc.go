// Package core defines the shared types of the facade.
//
// Level is a comparable severity descriptor; only its Value takes part in
// filtering. Context is what a logger hands its handler with every
// dispatch: the dispatched level and, for named loggers, the name.
//
// Entry is the rendering record used by line formatters. Entries are
// pooled; callers get one with GetEntry or NewEntry and return it with
// PutEntry once it has been written. Message values stay opaque: TypeOf
// and Stringify classify and render them without the core ever
// interpreting their content.
package core
