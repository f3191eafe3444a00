// Package testsupport builds throwaway configurations and fixture files for
// tests across the wordlist packages.
package testsupport

import (
	"path/filepath"
	"testing"

	"wordlist/internal/config"
)

// ConfigOption adjusts the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config whose wordlist and ledger live in a unique temp
// directory per test. The ledger stays disabled unless WithLedger is given.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Wordlist.Path = filepath.Join(base, "word-list.txt")
	cfg.Ledger.Path = filepath.Join(base, "data", "history.db")
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithLedger enables the history ledger on the test config.
func WithLedger() ConfigOption {
	return func(cfg *config.Config) { cfg.Ledger.Enabled = true }
}

// WithSegmenter selects the tokenizer segmenter.
func WithSegmenter(name string) ConfigOption {
	return func(cfg *config.Config) { cfg.Tokenizer.Segmenter = name }
}

// BaseDir returns the temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Wordlist.Path)
}
