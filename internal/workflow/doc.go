// Package workflow runs the wordlist operations end to end.
//
// The Manager composes the pure core (tokenize, sort and dedup, filter,
// sample) with its collaborators: the source loader, list file I/O behind an
// advisory lock, the optional history ledger, and structured logging. Errors
// returned from here are tagged with the wordlist sentinel markers so callers
// can classify them with wordlist.Kind.
package workflow
