package textutil

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/rivo/uniseg"
)

const (
	SegmenterUAX29    = "uax29"
	SegmenterJapanese = "japanese"
)

// Segmenter splits already-canonicalized text into candidate tokens.
type Segmenter interface {
	Segment(text string) []string
}

// NewSegmenter returns the segmenter registered under name. An empty name
// selects the UAX #29 segmenter.
func NewSegmenter(name string) (Segmenter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SegmenterUAX29:
		return WordSegmenter{}, nil
	case SegmenterJapanese:
		return NewJapaneseSegmenter()
	default:
		return nil, fmt.Errorf("unknown segmenter %q", name)
	}
}

// WordSegmenter splits on Unicode word boundaries.
type WordSegmenter struct{}

// Segment walks the UAX #29 word segments of text and keeps those holding at
// least one letter or digit.
func (WordSegmenter) Segment(text string) []string {
	var tokens []string
	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		if hasWordRune(word) {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// JapaneseSegmenter uses a morphological analyzer with the IPA dictionary.
type JapaneseSegmenter struct {
	t *tokenizer.Tokenizer
}

// NewJapaneseSegmenter loads the IPA dictionary and builds the analyzer.
func NewJapaneseSegmenter() (*JapaneseSegmenter, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("create japanese tokenizer: %w", err)
	}
	return &JapaneseSegmenter{t: t}, nil
}

// Segment returns the surface form of every morpheme that carries a letter or
// digit.
func (s *JapaneseSegmenter) Segment(text string) []string {
	var tokens []string
	for _, token := range s.t.Tokenize(text) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		if hasWordRune(token.Surface) {
			tokens = append(tokens, token.Surface)
		}
	}
	return tokens
}

func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
