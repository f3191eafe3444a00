package workflow_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wordlist/internal/fileutil"
	"wordlist/internal/ledger"
	"wordlist/internal/logging"
	"wordlist/internal/sources"
	"wordlist/internal/testsupport"
	"wordlist/internal/textutil"
	"wordlist/internal/wordlist"
	"wordlist/internal/workflow"
)

type memoryRecorder struct {
	entries []ledger.Entry
	err     error
}

func (r *memoryRecorder) Record(_ context.Context, entry ledger.Entry) (ledger.Entry, error) {
	if r.err != nil {
		return ledger.Entry{}, r.err
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

type sequenceSource struct {
	values []int
	next   int
}

func (s *sequenceSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)] % n
	s.next++
	return v
}

func newManager(t *testing.T, stdin string, opts ...workflow.ManagerOption) *workflow.Manager {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	mgr, err := workflow.NewManagerFromConfig(cfg, strings.NewReader(stdin), logging.NewNop(), opts...)
	require.NoError(t, err)
	return mgr
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestAddScenario(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "input.txt", "The cat sat on the mattttt")
	target := filepath.Join(dir, "word-list.txt")

	result, err := newManager(t, "").Add(context.Background(), workflow.AddRequest{Sources: []string{source}, Target: target})
	require.NoError(t, err)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "cat\nsat\nthe\n", string(data))
	assert.Equal(t, 1, result.Sources)
	assert.Equal(t, 0, result.WordsBefore)
	assert.Equal(t, 3, result.WordsAfter)
	assert.Equal(t, 3, result.Added())
}

func TestAddIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "input.txt", "Zebra apple Mango banana apple, ZEBRA! don't a1b aabbaa aaab")
	target := filepath.Join(dir, "word-list.txt")
	mgr := newManager(t, "")
	req := workflow.AddRequest{Sources: []string{source}, Target: target}

	_, err := mgr.Add(context.Background(), req)
	require.NoError(t, err)
	first, err := os.ReadFile(target)
	require.NoError(t, err)

	_, err = mgr.Add(context.Background(), req)
	require.NoError(t, err)
	second, err := os.ReadFile(target)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "aabbaa\napple\nbanana\nmango\nzebra\n", string(first))
}

func TestAddMergesWithExistingList(t *testing.T) {
	dir := t.TempDir()
	target := writeSource(t, dir, "word-list.txt", "delta\r\n\nalpha\n")
	source := writeSource(t, dir, "more.txt", "charlie bravo alpha")

	result, err := newManager(t, "").Add(context.Background(), workflow.AddRequest{Sources: []string{source}, Target: target})
	require.NoError(t, err)
	assert.Equal(t, 2, result.WordsBefore)
	assert.Equal(t, 4, result.WordsAfter)

	words, err := fileutil.ReadLines(target)
	require.NoError(t, err)
	assert.True(t, slices.IsSorted(words))
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, words)
}

func TestAddReadsStdinWithoutSources(t *testing.T) {
	target := filepath.Join(t.TempDir(), "word-list.txt")
	result, err := newManager(t, "quick brown fox").Add(context.Background(), workflow.AddRequest{Target: target})
	require.NoError(t, err)
	assert.Equal(t, 3, result.WordsAfter)
}

func TestAddSkipsUnreadableSources(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "good.txt", "orange lemon")
	target := filepath.Join(dir, "word-list.txt")

	result, err := newManager(t, "").Add(context.Background(), workflow.AddRequest{
		Sources: []string{filepath.Join(dir, "missing.txt"), good},
		Target:  target,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sources)
	assert.Equal(t, 1, result.Skipped)
	require.Len(t, result.Failures, 1)
	assert.ErrorIs(t, result.Failures[0].Err, wordlist.ErrSourceUnreadable)
	assert.Equal(t, 2, result.WordsAfter)
}

func TestAddFailsWhenNoSourceReadable(t *testing.T) {
	dir := t.TempDir()
	target := writeSource(t, dir, "word-list.txt", "alpha\n")

	_, err := newManager(t, "").Add(context.Background(), workflow.AddRequest{
		Sources: []string{filepath.Join(dir, "missing.txt")},
		Target:  target,
	})
	require.ErrorIs(t, err, wordlist.ErrNoSources)

	data, readErr := os.ReadFile(target)
	require.NoError(t, readErr)
	assert.Equal(t, "alpha\n", string(data), "list must be untouched")
}

func TestAddTreatsUnreadableListAsEmpty(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission bits")
	}
	dir := t.TempDir()
	target := writeSource(t, dir, "word-list.txt", "ember\n")
	require.NoError(t, os.Chmod(target, 0o200))
	t.Cleanup(func() { _ = os.Chmod(target, 0o644) })
	source := writeSource(t, dir, "input.txt", "river stone")

	result, err := newManager(t, "").Add(context.Background(), workflow.AddRequest{Sources: []string{source}, Target: target})
	require.NoError(t, err)
	assert.Equal(t, 0, result.WordsBefore)

	require.NoError(t, os.Chmod(target, 0o644))
	words, err := fileutil.ReadLines(target)
	require.NoError(t, err)
	assert.Equal(t, []string{"river", "stone"}, words)
}

func TestAddKeepsListWithVeryLongWord(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "word-list.txt")
	long := strings.Repeat("ab", 600*1024)
	first := writeSource(t, dir, "first.txt", "cat sat "+long)
	second := writeSource(t, dir, "second.txt", "dog")
	mgr := newManager(t, "")

	_, err := mgr.Add(context.Background(), workflow.AddRequest{Sources: []string{first}, Target: target})
	require.NoError(t, err)

	picked, err := mgr.Pick(context.Background(), workflow.PickRequest{List: target, Count: 1})
	require.NoError(t, err)
	assert.Equal(t, 3, picked.ListSize)

	result, err := mgr.Add(context.Background(), workflow.AddRequest{Sources: []string{second}, Target: target})
	require.NoError(t, err)
	assert.Equal(t, 3, result.WordsBefore)

	words, err := fileutil.ReadLines(target)
	require.NoError(t, err)
	require.Len(t, words, 4)
	assert.Equal(t, []string{"ab", "cat", "dog", "sat"}, []string{words[0][:2], words[1], words[2], words[3]})
}

func TestAddRejectsUnwritableTarget(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "input.txt", "alpha")

	_, err := newManager(t, "").Add(context.Background(), workflow.AddRequest{
		Sources: []string{source},
		Target:  filepath.Join(dir, "missing-dir", "word-list.txt"),
	})
	require.ErrorIs(t, err, wordlist.ErrOutputUnwritable)

	_, err = newManager(t, "").Add(context.Background(), workflow.AddRequest{Sources: []string{source}, Target: dir})
	require.ErrorIs(t, err, wordlist.ErrOutputUnwritable)
}

func TestAddFailsWhenLocked(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "input.txt", "alpha")
	target := filepath.Join(dir, "word-list.txt")

	held, err := fileutil.TryLock(target)
	require.NoError(t, err)
	defer held.Unlock()

	_, err = newManager(t, "").Add(context.Background(), workflow.AddRequest{Sources: []string{source}, Target: target})
	require.ErrorIs(t, err, wordlist.ErrLocked)
	assert.Equal(t, "locked", wordlist.Kind(err))
}

func TestAddRecordsLedgerEntry(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "input.txt", "north south")
	target := filepath.Join(dir, "word-list.txt")
	recorder := &memoryRecorder{}

	ctx := logging.WithRunID(context.Background(), "run-123")
	_, err := newManager(t, "", workflow.WithRecorder(recorder)).Add(ctx, workflow.AddRequest{Sources: []string{source}, Target: target})
	require.NoError(t, err)

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, "run-123", entry.RunID)
	assert.Equal(t, ledger.OperationAdd, entry.Operation)
	assert.Equal(t, target, entry.Target)
	assert.Equal(t, 2, entry.WordsAfter)
}

func TestLedgerFailureDoesNotFailRun(t *testing.T) {
	dir := t.TempDir()
	source := writeSource(t, dir, "input.txt", "north south")
	recorder := &memoryRecorder{err: errors.New("disk full")}

	_, err := newManager(t, "", workflow.WithRecorder(recorder)).Add(context.Background(), workflow.AddRequest{
		Sources: []string{source},
		Target:  filepath.Join(dir, "word-list.txt"),
	})
	require.NoError(t, err)
}

func TestPickDrawsFromPersistedOrder(t *testing.T) {
	dir := t.TempDir()
	list := writeSource(t, dir, "list.txt", "zulu\nalpha\nmike\nbravo\n")
	mgr := newManager(t, "", workflow.WithRandomSource(&sequenceSource{values: []int{0, 2, 0}}))

	result, err := mgr.Pick(context.Background(), workflow.PickRequest{List: list, Count: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"zulu", "mike", "zulu"}, result.Words)
	assert.Equal(t, "zulu mike zulu", result.Phrase)
	assert.Equal(t, 4, result.ListSize)
	assert.InDelta(t, 2.0, result.Entropy.BitsPerWord, 1e-9)
	assert.InDelta(t, 6.0, result.Entropy.TotalWordBits, 1e-9)
}

func TestPickSeedIsReproducible(t *testing.T) {
	list := writeSource(t, t.TempDir(), "list.txt", "one\ntwo\nthree\nfour\nfive\n")
	mgr := newManager(t, "")
	seed := uint64(42)

	first, err := mgr.Pick(context.Background(), workflow.PickRequest{List: list, Count: 5, Seed: &seed})
	require.NoError(t, err)
	second, err := mgr.Pick(context.Background(), workflow.PickRequest{List: list, Count: 5, Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, first.Words, second.Words)
}

func TestPickZeroCount(t *testing.T) {
	list := writeSource(t, t.TempDir(), "list.txt", "alpha\n")
	result, err := newManager(t, "").Pick(context.Background(), workflow.PickRequest{List: list, Count: 0})
	require.NoError(t, err)
	assert.Empty(t, result.Words)
	assert.Equal(t, "", result.Phrase)
	assert.Zero(t, result.Entropy.TotalCharBits)
	assert.Zero(t, result.Entropy.TotalWordBits)
}

func TestPickFailures(t *testing.T) {
	dir := t.TempDir()
	mgr := newManager(t, "")

	_, err := mgr.Pick(context.Background(), workflow.PickRequest{List: filepath.Join(dir, "missing.txt"), Count: 1})
	require.ErrorIs(t, err, wordlist.ErrWordlistUnreadable)

	empty := writeSource(t, dir, "empty.txt", "\n\n")
	_, err = mgr.Pick(context.Background(), workflow.PickRequest{List: empty, Count: 1})
	require.ErrorIs(t, err, wordlist.ErrWordlistEmpty)

	list := writeSource(t, dir, "list.txt", "alpha\n")
	for _, count := range []int{-1, wordlist.MaxCount + 1, 1 << 62} {
		_, err = mgr.Pick(context.Background(), workflow.PickRequest{List: list, Count: count})
		require.ErrorIs(t, err, wordlist.ErrCountOutOfRange, "count %d", count)
	}
}

func TestStats(t *testing.T) {
	dir := t.TempDir()
	list := writeSource(t, dir, "list.txt", "alpha\nbravo\ncharlie\ndelta\n")

	stats, err := newManager(t, "").Stats(context.Background(), list)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Words)
	assert.Equal(t, int64(len("alpha\nbravo\ncharlie\ndelta\n")), stats.Bytes)
	assert.InDelta(t, 2.0, stats.BitsPerWord, 1e-9)

	_, err = newManager(t, "").Stats(context.Background(), filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, wordlist.ErrWordlistUnreadable)
}

func TestNewManagerDefaults(t *testing.T) {
	mgr := workflow.NewManager(textutil.WithSegmenter(textutil.WordSegmenter{}), sources.NewLoader(sources.Options{}, strings.NewReader("gamma")), nil)
	target := filepath.Join(t.TempDir(), "word-list.txt")
	result, err := mgr.Add(context.Background(), workflow.AddRequest{Target: target})
	require.NoError(t, err)
	assert.Equal(t, 1, result.WordsAfter)
}

func TestAddAndPickRecordToLedgerStore(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithLedger())
	store := testsupport.MustOpenLedger(t, cfg)
	source := testsupport.WriteText(t, cfg, "docs/input.txt", "copper silver golden")

	mgr, err := workflow.NewManagerFromConfig(cfg, strings.NewReader(""), logging.NewNop(), workflow.WithRecorder(store))
	require.NoError(t, err)

	ctx := logging.WithRunID(context.Background(), "run-ledger")
	_, err = mgr.Add(ctx, workflow.AddRequest{Sources: []string{source}, Target: cfg.Wordlist.Path})
	require.NoError(t, err)
	_, err = mgr.Pick(ctx, workflow.PickRequest{List: cfg.Wordlist.Path, Count: 2})
	require.NoError(t, err)

	entries, err := store.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ledger.OperationPick, entries[0].Operation)
	assert.Equal(t, 2, entries[0].Count)
	assert.Equal(t, ledger.OperationAdd, entries[1].Operation)
	assert.Equal(t, 3, entries[1].WordsAfter)
	assert.Equal(t, "run-ledger", entries[1].RunID)
}

func TestAddExtractsHTMLSources(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	page := testsupport.WriteText(t, cfg, "page.html", `<html><head><title>Lantern</title></head><body>
<nav>menu login signup</nav>
<article><p>The harbor keeper lit the lantern every evening while the fishing boats returned to shore.
Travellers remembered the harbor because the lantern glowed through winter storms and summer fog alike.</p></article>
</body></html>`)

	mgr, err := workflow.NewManagerFromConfig(cfg, strings.NewReader(""), logging.NewNop())
	require.NoError(t, err)
	_, err = mgr.Add(context.Background(), workflow.AddRequest{Sources: []string{page}, Target: cfg.Wordlist.Path})
	require.NoError(t, err)

	words, err := fileutil.ReadLines(cfg.Wordlist.Path)
	require.NoError(t, err)
	assert.Contains(t, words, "lantern")
	assert.Contains(t, words, "harbor")
	assert.NotContains(t, words, "html")
	assert.NotContains(t, words, "body")
}

func TestAddJapaneseSegmenter(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSegmenter(textutil.SegmenterJapanese))
	mgr, err := workflow.NewManagerFromConfig(cfg, strings.NewReader("毎日コンピュータを使っています"), logging.NewNop())
	require.NoError(t, err)

	_, err = mgr.Add(context.Background(), workflow.AddRequest{Target: cfg.Wordlist.Path})
	require.NoError(t, err)

	words, err := fileutil.ReadLines(cfg.Wordlist.Path)
	require.NoError(t, err)
	assert.Contains(t, words, "コンピュータ")
}
