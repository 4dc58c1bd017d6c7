// Package formatter turns dispatches into output.
//
// Two kinds of formatter live here. A MessageFormatter rewrites the
// message list before a console sees it; PrefixName, the default used by
// the console handler, prepends "[name]" for named loggers.
//
// A Formatter renders a core.Entry into a line of bytes. TextFormatter
// writes "<time> [LEVEL] messages"; JSONFormatter writes one object per
// line with the messages both joined and as typed values. Both also
// implement WriterFormatter and use a pooled bytes.Buffer. Buffers larger
// than 64 KiB are not returned to the pool.
package formatter
