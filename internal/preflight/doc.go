// Package preflight provides readiness checks for the filesystem paths the
// wordlist tool writes to.
//
// These checks run in two contexts:
//   - The add workflow calls CheckOutputTarget before reading any source so an
//     unwritable destination fails fast instead of after tokenizing everything.
//   - The CLI "wordlist stats" command uses RunAll to display path health.
package preflight
