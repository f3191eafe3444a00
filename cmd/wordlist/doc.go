// Package main hosts the wordlist CLI entrypoint and command graph.
//
// The Cobra command tree maps "add", "pick", "stats", "history" and "config"
// onto the workflow manager. This package resolves configuration, builds the
// logger, assigns each invocation a run id and formats results for the
// terminal; the word handling itself lives in the internal packages.
package main
