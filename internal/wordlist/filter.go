package wordlist

import (
	"unicode"
	"unicode/utf8"
)

const (
	// MinLength is the shortest accepted word, in characters.
	MinLength = 3
	// MaxRun is the longest allowed run of one repeated character.
	MaxRun = 2
)

// Accept reports whether token qualifies as a word. The token is expected to
// be lowercased already.
func Accept(token string) bool {
	if utf8.RuneCountInString(token) < MinLength {
		return false
	}
	for _, r := range token {
		if !IsAlphabetic(r) {
			return false
		}
	}
	return withinRunLimit(token)
}

// Filter returns the tokens that pass Accept, preserving their order.
func Filter(tokens []string) []string {
	words := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if Accept(token) {
			words = append(words, token)
		}
	}
	return words
}

// IsAlphabetic matches the Unicode Alphabetic derived property: letters,
// letter numbers and Other_Alphabetic marks.
func IsAlphabetic(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Nl, r) || unicode.Is(unicode.Other_Alphabetic, r)
}

func withinRunLimit(token string) bool {
	var prev rune
	run := 0
	for i, r := range token {
		if i > 0 && r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run > MaxRun {
			return false
		}
	}
	return true
}
