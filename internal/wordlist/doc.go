// Package wordlist holds the pure core of the wordlist tool: merging raw
// tokens into a sorted unique set, filtering them down to acceptable words,
// and sampling phrases with an entropy estimate.
//
// Nothing in this package touches the filesystem. Callers hand in token
// slices (see internal/textutil) and receive word slices back; persistence
// lives in internal/fileutil and orchestration in internal/workflow.
//
// Failures are reported with the sentinel markers in errors.go so callers can
// branch with errors.Is instead of matching strings.
package wordlist
