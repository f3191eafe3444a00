package wordlist_test

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlist/internal/wordlist"
)

type sequenceSource struct {
	next []int
}

func (s *sequenceSource) IntN(n int) int {
	v := s.next[0] % n
	s.next = s.next[1:]
	return v
}

func TestNewSamplerRejectsEmptyList(t *testing.T) {
	sampler, err := wordlist.NewSampler(nil, nil)
	require.Error(t, err)
	assert.Nil(t, sampler)
	assert.True(t, errors.Is(err, wordlist.ErrWordlistEmpty))
	assert.Equal(t, "wordlist_empty", wordlist.Kind(err))
}

func TestPickUsesSourceAndPersistedOrder(t *testing.T) {
	words := []string{"zulu", "alpha", "mike", "kilo"}
	sampler, err := wordlist.NewSampler(words, &sequenceSource{next: []int{0, 3, 0}})
	require.NoError(t, err)

	sample, err := sampler.Pick(3)
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "kilo", "zulu"}, sample.Words)
	assert.Equal(t, "zulu kilo zulu", sample.Phrase)
	assert.Equal(t, 4, sample.ListSize)
	assert.Equal(t, 2.0, sample.Entropy.BitsPerWord)
	assert.Equal(t, 6.0, sample.Entropy.TotalWordBits)
	assert.InDelta(t, math.Log2(26)*14, sample.Entropy.TotalCharBits, 1e-9)
}

func TestPickZero(t *testing.T) {
	sampler, err := wordlist.NewSampler([]string{"one", "two"}, nil)
	require.NoError(t, err)

	sample, err := sampler.Pick(0)
	require.NoError(t, err)
	assert.Empty(t, sample.Words)
	assert.Equal(t, "", sample.Phrase)
	assert.Zero(t, sample.Entropy.TotalCharBits)
	assert.Zero(t, sample.Entropy.TotalWordBits)
}

func TestPickBounds(t *testing.T) {
	words := []string{"amber", "basil", "cedar"}
	sampler, err := wordlist.NewSampler(words, wordlist.NewSeededSource(7))
	require.NoError(t, err)

	for _, n := range []int{1, 2, 10, 100} {
		sample, err := sampler.Pick(n)
		require.NoError(t, err)
		require.Len(t, sample.Words, n)
		for _, w := range sample.Words {
			assert.True(t, slices.Contains(words, w), "unexpected word %q", w)
		}
	}
}

func TestSeededSourceIsReproducible(t *testing.T) {
	words := []string{"amber", "basil", "cedar", "dune", "ember"}
	a, err := wordlist.NewSampler(words, wordlist.NewSeededSource(42))
	require.NoError(t, err)
	b, err := wordlist.NewSampler(words, wordlist.NewSeededSource(42))
	require.NoError(t, err)
	first, err := a.Pick(8)
	require.NoError(t, err)
	second, err := b.Pick(8)
	require.NoError(t, err)
	assert.Equal(t, first.Words, second.Words)
}

func TestPickRejectsCountOutOfRange(t *testing.T) {
	sampler, err := wordlist.NewSampler([]string{"amber"}, nil)
	require.NoError(t, err)

	for _, n := range []int{-1, wordlist.MaxCount + 1, 1 << 62} {
		_, err := sampler.Pick(n)
		assert.ErrorIs(t, err, wordlist.ErrCountOutOfRange, "count %d", n)
	}
	sample, err := sampler.Pick(wordlist.MaxCount)
	require.NoError(t, err)
	assert.Len(t, sample.Words, wordlist.MaxCount)
}

func TestEstimate(t *testing.T) {
	e := wordlist.Estimate(4, 3, "")
	assert.Equal(t, 2.0, e.BitsPerWord)
	assert.Equal(t, 6.0, e.TotalWordBits)

	e = wordlist.Estimate(1, 5, "one one one one one")
	assert.Zero(t, e.BitsPerWord)
	assert.Zero(t, e.TotalWordBits)

	e = wordlist.Estimate(8, 2, "né né")
	assert.InDelta(t, math.Log2(26)*5, e.TotalCharBits, 1e-9)
}
