// Package logging assembles the structured slog loggers used by iosrename.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes context helpers so every line emitted during a run carries the
// run identifier. Report lines (the "<src> -> <dst>" output) are not logs and
// never pass through here; loggers write diagnostics to stderr.
package logging
