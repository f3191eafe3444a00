// Package logging assembles structured slog loggers for the wordlist CLI.
//
// It owns the console and JSON handlers, level parsing and output plumbing,
// and a context helper that tags every line of one invocation with its run
// ID. A no-op logger is provided for tests and wiring code that cannot fail.
//
// Logs describe what the tool did (sources skipped, words written, lock
// contention). User-facing results such as the picked phrase are printed by
// the CLI, not logged.
package logging
