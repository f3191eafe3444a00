package workflow

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"wordlist/internal/fileutil"
	"wordlist/internal/ledger"
	"wordlist/internal/logging"
	"wordlist/internal/wordlist"
)

// PickRequest asks for Count random words from List.
type PickRequest struct {
	List  string
	Count int
	// Seed makes the draw reproducible when set.
	Seed *uint64
}

// PickResult carries the drawn sample and the list it came from.
type PickResult struct {
	List string
	wordlist.Sample
}

// Pick samples req.Count words with replacement from the list in its
// persisted order.
func (m *Manager) Pick(ctx context.Context, req PickRequest) (PickResult, error) {
	logger := m.runLogger(ctx)
	if req.Count < 0 || req.Count > wordlist.MaxCount {
		return PickResult{}, wordlist.Wrap(wordlist.ErrCountOutOfRange, "pick",
			fmt.Sprintf("count %d not in [0, %d]", req.Count, wordlist.MaxCount), nil)
	}
	words, err := m.loadList(req.List)
	if err != nil {
		return PickResult{}, err
	}

	src := m.random
	if req.Seed != nil {
		src = wordlist.NewSeededSource(*req.Seed)
	}
	sampler, err := wordlist.NewSampler(words, src)
	if err != nil {
		return PickResult{}, wordlist.Wrap(wordlist.ErrWordlistEmpty, "sample", req.List, nil)
	}
	sample, err := sampler.Pick(req.Count)
	if err != nil {
		return PickResult{}, err
	}

	logger.Debug("words picked",
		logging.String("list", req.List),
		logging.Int("count", req.Count),
		logging.Int("list_size", sample.ListSize),
		logging.Float64("total_word_bits", sample.Entropy.TotalWordBits),
	)
	m.record(ctx, logger, ledger.Entry{
		Operation:   ledger.OperationPick,
		Target:      req.List,
		WordsBefore: sample.ListSize,
		WordsAfter:  sample.ListSize,
		Count:       req.Count,
	})
	return PickResult{List: req.List, Sample: sample}, nil
}

// Stats describes a persisted list.
type Stats struct {
	Path        string
	Words       int
	Bytes       int64
	ModTime     time.Time
	BitsPerWord float64
}

// Stats reads the list and reports its size. An empty list is not an error.
func (m *Manager) Stats(_ context.Context, list string) (Stats, error) {
	words, err := m.loadList(list)
	if err != nil {
		return Stats{}, err
	}
	stats := Stats{
		Path:        list,
		Words:       len(words),
		BitsPerWord: wordlist.Estimate(len(words), 1, "").BitsPerWord,
	}
	if info, statErr := os.Stat(list); statErr == nil {
		stats.Bytes = info.Size()
		stats.ModTime = info.ModTime()
	}
	return stats, nil
}

func (m *Manager) loadList(list string) ([]string, error) {
	if strings.TrimSpace(list) == "" {
		return nil, wordlist.Wrap(wordlist.ErrWordlistUnreadable, "read", "no list path", nil)
	}
	words, err := fileutil.ReadLines(list)
	if err != nil {
		return nil, wordlist.Wrap(wordlist.ErrWordlistUnreadable, "read", list, err)
	}
	return words, nil
}
