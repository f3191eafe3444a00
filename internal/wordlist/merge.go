package wordlist

import "slices"

// SortUnique sorts tokens in byte order and drops exact duplicates. The input
// slice is reordered in place; the returned slice shares its backing array.
func SortUnique(tokens []string) []string {
	slices.Sort(tokens)
	return slices.Compact(tokens)
}

// Build turns a merged token collection into the next wordlist: dedup first so
// the filter runs once per distinct token, then drop rejected tokens.
func Build(tokens []string) []string {
	return Filter(SortUnique(tokens))
}
