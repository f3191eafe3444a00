package workflow

import (
	"context"
	"io"
	"log/slog"

	"wordlist/internal/config"
	"wordlist/internal/ledger"
	"wordlist/internal/logging"
	"wordlist/internal/sources"
	"wordlist/internal/textutil"
	"wordlist/internal/wordlist"
)

// Recorder persists run history. *ledger.Store satisfies it.
type Recorder interface {
	Record(ctx context.Context, entry ledger.Entry) (ledger.Entry, error)
}

// Manager executes add, pick and stats requests.
type Manager struct {
	tokenizer *textutil.Tokenizer
	loader    *sources.Loader
	logger    *slog.Logger
	recorder  Recorder
	random    wordlist.Source
}

// ManagerOption configures optional Manager behavior.
type ManagerOption func(*Manager)

// WithRecorder records every completed run.
func WithRecorder(r Recorder) ManagerOption {
	return func(m *Manager) {
		m.recorder = r
	}
}

// WithRandomSource overrides the generator used when a pick has no seed.
func WithRandomSource(src wordlist.Source) ManagerOption {
	return func(m *Manager) {
		m.random = src
	}
}

// NewManager constructs a workflow manager.
func NewManager(tokenizer *textutil.Tokenizer, loader *sources.Loader, logger *slog.Logger, opts ...ManagerOption) *Manager {
	if tokenizer == nil {
		tokenizer = textutil.WithSegmenter(textutil.WordSegmenter{})
	}
	if loader == nil {
		loader = sources.NewLoader(sources.Options{}, nil)
	}
	m := &Manager{
		tokenizer: tokenizer,
		loader:    loader,
		logger:    logging.NewComponentLogger(logger, "workflow"),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewManagerFromConfig builds the tokenizer and loader described by cfg.
func NewManagerFromConfig(cfg *config.Config, stdin io.Reader, logger *slog.Logger, opts ...ManagerOption) (*Manager, error) {
	tokenizer, err := textutil.NewTokenizer(textutil.Options{
		Segmenter:     cfg.Tokenizer.Segmenter,
		Normalization: cfg.Tokenizer.Normalization,
	})
	if err != nil {
		return nil, err
	}
	loader := sources.NewLoader(sources.Options{
		ExtractHTML: cfg.Sources.ExtractHTML,
		MaxBytes:    cfg.Sources.MaxBytes,
	}, stdin)
	return NewManager(tokenizer, loader, logger, opts...), nil
}

func (m *Manager) runLogger(ctx context.Context) *slog.Logger {
	return logging.WithContext(ctx, m.logger)
}

// record writes entry to the ledger. Failures are logged and never returned.
func (m *Manager) record(ctx context.Context, logger *slog.Logger, entry ledger.Entry) {
	if m.recorder == nil {
		return
	}
	if id, ok := logging.RunIDFromContext(ctx); ok {
		entry.RunID = id
	}
	if _, err := m.recorder.Record(ctx, entry); err != nil {
		logging.WarnWithContext(logger, "history ledger write failed", "ledger_write_failed",
			logging.String("operation", string(entry.Operation)),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check ledger.path permissions or disable the ledger"),
			logging.String(logging.FieldImpact, "this run is missing from history"),
		)
	}
}
