// Package ledger records add and pick runs in a small SQLite database so the
// history command can show how a wordlist grew over time.
//
// The ledger is optional. Callers treat every ledger error as a warning: a
// failed insert never changes the outcome of the run it describes.
package ledger
