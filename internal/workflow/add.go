package workflow

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"wordlist/internal/fileutil"
	"wordlist/internal/ledger"
	"wordlist/internal/logging"
	"wordlist/internal/preflight"
	"wordlist/internal/sources"
	"wordlist/internal/wordlist"
)

// AddRequest names the sources to merge and the list to update.
type AddRequest struct {
	// Sources are paths or glob patterns. Empty means standard input.
	Sources []string
	Target  string
}

// AddResult summarizes a completed update.
type AddResult struct {
	Target      string
	Sources     int
	Skipped     int
	WordsBefore int
	WordsAfter  int
	Failures    []sources.Failure
}

// Added returns how many words the update contributed.
func (r AddResult) Added() int {
	return r.WordsAfter - r.WordsBefore
}

// Add merges sources into the list at req.Target. Unreadable sources are
// logged and skipped; the run fails only when nothing readable remains or the
// target cannot be written.
func (m *Manager) Add(ctx context.Context, req AddRequest) (AddResult, error) {
	logger := m.runLogger(ctx)
	target := strings.TrimSpace(req.Target)
	if target == "" {
		return AddResult{}, wordlist.Wrap(wordlist.ErrOutputUnwritable, "add", "no target path", nil)
	}
	result := AddResult{Target: target}

	if check := preflight.CheckOutputTarget("wordlist", target); !check.Passed {
		return result, wordlist.Wrap(wordlist.ErrOutputUnwritable, "preflight", target, check.Err())
	}

	lock, err := fileutil.TryLock(target)
	if err != nil {
		if errors.Is(err, fileutil.ErrLockHeld) {
			return result, wordlist.Wrap(wordlist.ErrLocked, "lock", target, err)
		}
		return result, wordlist.Wrap(wordlist.ErrOutputUnwritable, "lock", target, err)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Debug("release lock failed", logging.String("lock", lock.Path()), logging.Error(err))
		}
	}()

	existing := m.readExisting(logger, target)
	result.WordsBefore = len(existing)

	blobs, failures := m.loader.Load(req.Sources)
	for _, failure := range failures {
		logging.WarnWithContext(logger, "source skipped", "source_skipped",
			logging.String("source", failure.Name),
			logging.String(logging.FieldErrorKind, wordlist.Kind(failure.Err)),
			logging.Error(failure.Err),
			logging.String(logging.FieldErrorHint, "check the path exists and is readable"),
			logging.String(logging.FieldImpact, "words from this source were not added"),
		)
	}
	result.Sources = len(blobs)
	result.Skipped = len(failures)
	result.Failures = failures
	if len(blobs) == 0 {
		return result, wordlist.Wrap(wordlist.ErrNoSources, "add", strings.Join(req.Sources, ", "), nil)
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	texts := make([]string, 0, len(blobs)+1)
	texts = append(texts, strings.Join(existing, "\n"))
	for _, blob := range blobs {
		logger.Debug("source loaded", logging.String("source", blob.Name), logging.Int("bytes", len(blob.Text)))
		texts = append(texts, blob.Text)
	}
	words := wordlist.Build(m.tokenizer.Tokenize(texts...))

	if err := fileutil.WriteLinesAtomic(target, words); err != nil {
		logging.ErrorWithContext(logger, "wordlist write failed", "wordlist_write_failed",
			logging.String("target", target),
			logging.String(logging.FieldErrorKind, wordlist.Kind(wordlist.ErrOutputUnwritable)),
			logging.Error(err),
		)
		return result, wordlist.Wrap(wordlist.ErrOutputUnwritable, "write", target, err)
	}
	result.WordsAfter = len(words)

	logger.Info("wordlist updated",
		logging.String("target", target),
		logging.Int("sources", result.Sources),
		logging.Int("skipped", result.Skipped),
		logging.Int("words_before", result.WordsBefore),
		logging.Int("words_after", result.WordsAfter),
		logging.String(logging.FieldEventType, "wordlist_updated"),
	)
	m.record(ctx, logger, ledger.Entry{
		Operation:   ledger.OperationAdd,
		Target:      target,
		Sources:     result.Sources,
		Skipped:     result.Skipped,
		WordsBefore: result.WordsBefore,
		WordsAfter:  result.WordsAfter,
	})
	return result, nil
}

// readExisting loads the current list. A missing file is a first run; any
// other read failure is downgraded to "no prior words".
func (m *Manager) readExisting(logger *slog.Logger, target string) []string {
	lines, err := fileutil.ReadLines(target)
	switch {
	case err == nil:
		return lines
	case errors.Is(err, os.ErrNotExist):
		logger.Info("no existing wordlist, starting fresh", logging.String("target", target))
		return nil
	default:
		wrapped := wordlist.Wrap(wordlist.ErrWordlistUnreadable, "read", target, err)
		logging.WarnWithContext(logger, "existing wordlist unreadable", "wordlist_unreadable",
			logging.String("target", target),
			logging.String(logging.FieldErrorKind, wordlist.Kind(wrapped)),
			logging.Error(wrapped),
			logging.String(logging.FieldImpact, "previous words will be replaced"),
		)
		return nil
	}
}
