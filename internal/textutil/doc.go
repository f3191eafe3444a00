// Package textutil turns raw text into lowercase word tokens.
//
// A Tokenizer canonicalizes each blob (optional NFC composition followed by
// Unicode-aware lowercasing) and hands it to a Segmenter. The default
// segmenter follows the Unicode word boundary rules (UAX #29); a morphological
// Japanese segmenter is available for text that does not separate words with
// spaces.
//
// Tokens are not validated here. Segments made only of spaces or punctuation
// are dropped, everything else is passed through for the wordlist filter to
// judge.
package textutil
