package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"wordlist/internal/fileutil"
)

//go:embed sample_config.toml
var sampleConfig string

// Wordlist locates the persisted list.
type Wordlist struct {
	Path string `toml:"path"`
}

// Tokenizer selects how source text is split into tokens.
type Tokenizer struct {
	// Segmenter is "uax29" (Unicode word boundaries) or "japanese".
	Segmenter string `toml:"segmenter"`
	// Normalization is "nfc" or "none".
	Normalization string `toml:"normalization"`
}

// Sources controls how input files are read.
type Sources struct {
	ExtractHTML bool  `toml:"extract_html"`
	MaxBytes    int64 `toml:"max_bytes"`
}

// Ledger contains configuration for the run history database.
type Ledger struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for the wordlist tool.
type Config struct {
	Wordlist  Wordlist  `toml:"wordlist"`
	Tokenizer Tokenizer `toml:"tokenizer"`
	Sources   Sources   `toml:"sources"`
	Ledger    Ledger    `toml:"ledger"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath(defaultConfigPath)
}

// Load reads the configuration at path, or the first existing default
// location when path is empty, then normalizes and validates it. It also
// reports the resolved file and whether it existed; a missing file yields
// the defaults.
func Load(path string) (*Config, string, bool, error) {
	resolved, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	cfg := Default()
	if exists {
		if err := decodeFile(resolved, &cfg); err != nil {
			return nil, "", false, err
		}
	}
	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolved, exists, nil
}

// decodeFile rejects keys that do not map onto Config so typos surface early.
func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// resolveConfigPath honors an explicit path even when the file is missing.
// Otherwise it tries the per-user file, then ./wordlist.toml, and reports the
// per-user location when neither exists.
func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		info, err := os.Stat(expanded)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return expanded, false, nil
		case err != nil:
			return "", false, fmt.Errorf("stat config: %w", err)
		case info.IsDir():
			return "", false, fmt.Errorf("config path %s is a directory", expanded)
		}
		return expanded, true, nil
	}

	candidates := make([]string, 0, 2)
	for _, raw := range []string{defaultConfigPath, projectConfigName} {
		expanded, err := ExpandPath(raw)
		if err != nil {
			return "", false, err
		}
		candidates = append(candidates, expanded)
	}
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true, nil
		}
	}
	return candidates[0], false, nil
}

// EnsureDirectories creates the parent directory of the ledger database when
// the ledger is enabled. The wordlist directory is left alone: a missing
// directory there is reported as an unwritable output.
func (c *Config) EnsureDirectories() error {
	if !c.Ledger.Enabled || strings.TrimSpace(c.Ledger.Path) == "" {
		return nil
	}
	dir := filepath.Dir(c.Ledger.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create ledger directory %q: %w", dir, err)
	}
	return nil
}

// ExpandPath resolves a leading "~" to the home directory and returns an
// absolute, cleaned path. The empty string is returned unchanged.
func ExpandPath(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if raw == "~" || strings.HasPrefix(raw, "~/") || strings.HasPrefix(raw, `~\`) {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		raw = filepath.Join(home, strings.TrimLeft(raw[1:], `/\`))
	}
	absolute, err := filepath.Abs(raw)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", raw, err)
	}
	return absolute, nil
}

// CreateSample writes the commented sample configuration to path atomically.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := fileutil.WriteFileAtomic(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
