package wordlist

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"unicode/utf8"
)

const (
	// AlphabetSize is the symbol count assumed by the per-character estimate.
	AlphabetSize = 26
	// MaxCount is the largest number of words one pick may draw.
	MaxCount = 1 << 20
)

// Source supplies uniform random indexes. *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a deterministic Source for reproducible picks.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Entropy carries both estimates reported for a sampled phrase.
type Entropy struct {
	BitsPerChar   float64 `json:"bits_per_char"`
	TotalCharBits float64 `json:"total_char_bits"`
	BitsPerWord   float64 `json:"bits_per_word"`
	TotalWordBits float64 `json:"total_word_bits"`
}

// Sample is the outcome of one pick.
type Sample struct {
	Words    []string `json:"words"`
	Phrase   string   `json:"phrase"`
	ListSize int      `json:"list_size"`
	Entropy  Entropy  `json:"entropy"`
}

// Sampler draws words from a loaded wordlist.
type Sampler struct {
	words  []string
	source Source
}

// NewSampler wraps words for sampling. A nil source uses the process-global
// generator. The slice is used as given and never re-sorted.
func NewSampler(words []string, source Source) (*Sampler, error) {
	if len(words) == 0 {
		return nil, Wrap(ErrWordlistEmpty, "sample", "", nil)
	}
	if source == nil {
		source = globalSource{}
	}
	return &Sampler{words: words, source: source}, nil
}

// Pick draws count words independently and with replacement. Counts outside
// [0, MaxCount] fail with ErrCountOutOfRange.
func (s *Sampler) Pick(count int) (Sample, error) {
	if count < 0 || count > MaxCount {
		return Sample{}, Wrap(ErrCountOutOfRange, "sample", fmt.Sprintf("count %d not in [0, %d]", count, MaxCount), nil)
	}
	picked := make([]string, count)
	for i := range picked {
		picked[i] = s.words[s.source.IntN(len(s.words))]
	}
	phrase := strings.Join(picked, " ")
	return Sample{
		Words:    picked,
		Phrase:   phrase,
		ListSize: len(s.words),
		Entropy:  Estimate(len(s.words), count, phrase),
	}, nil
}

// Estimate computes the character and word based entropy of a phrase built
// from count draws over a list of listSize words.
func Estimate(listSize, count int, phrase string) Entropy {
	bitsPerChar := math.Log2(AlphabetSize)
	var bitsPerWord float64
	if listSize > 0 {
		bitsPerWord = math.Log2(float64(listSize))
	}
	return Entropy{
		BitsPerChar:   bitsPerChar,
		TotalCharBits: bitsPerChar * float64(utf8.RuneCountInString(phrase)),
		BitsPerWord:   bitsPerWord,
		TotalWordBits: bitsPerWord * float64(count),
	}
}
