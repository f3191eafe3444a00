// Package sources turns command-line source arguments into text blobs.
//
// Arguments may name files directly or be glob patterns with ** support.
// HTML documents are reduced to their readable article text before they
// reach the tokenizer, so markup, scripts, and navigation chrome never end
// up in the wordlist. Standard input is read only when no arguments are
// given.
//
// A source that cannot be resolved or read is reported individually; the
// remaining sources are still loaded.
package sources
