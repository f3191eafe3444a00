package textutil

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

const (
	NormalizationNFC  = "nfc"
	NormalizationNone = "none"
)

// Options selects how a Tokenizer canonicalizes and segments text.
type Options struct {
	Segmenter     string
	Normalization string
}

// Tokenizer lowercases and segments text blobs into tokens.
type Tokenizer struct {
	segmenter Segmenter
	compose   bool
}

// NewTokenizer builds a tokenizer from opts. Zero options give NFC
// composition and UAX #29 segmentation.
func NewTokenizer(opts Options) (*Tokenizer, error) {
	segmenter, err := NewSegmenter(opts.Segmenter)
	if err != nil {
		return nil, err
	}
	var compose bool
	switch strings.ToLower(strings.TrimSpace(opts.Normalization)) {
	case "", NormalizationNFC:
		compose = true
	case NormalizationNone:
	default:
		return nil, fmt.Errorf("unknown normalization %q", opts.Normalization)
	}
	return &Tokenizer{segmenter: segmenter, compose: compose}, nil
}

// WithSegmenter returns a tokenizer that composes to NFC and splits with s.
func WithSegmenter(s Segmenter) *Tokenizer {
	return &Tokenizer{segmenter: s, compose: true}
}

// Normalize canonicalizes a whole blob ahead of segmentation.
func (t *Tokenizer) Normalize(text string) string {
	if t.compose {
		text = norm.NFC.String(text)
	}
	return cases.Lower(language.Und).String(text)
}

// Tokenize merges the tokens of every blob into one flat slice. Order is not
// meaningful.
func (t *Tokenizer) Tokenize(blobs ...string) []string {
	var tokens []string
	for _, blob := range blobs {
		if blob == "" {
			continue
		}
		tokens = append(tokens, t.segmenter.Segment(t.Normalize(blob))...)
	}
	return tokens
}

// Tokenize splits text with the default tokenizer.
func Tokenize(text string) []string {
	return WithSegmenter(WordSegmenter{}).Tokenize(text)
}
