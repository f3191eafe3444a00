package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeWordlist(); err != nil {
		return err
	}
	c.normalizeTokenizer()
	c.normalizeSources()
	if err := c.normalizeLedger(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeWordlist() error {
	c.Wordlist.Path = strings.TrimSpace(c.Wordlist.Path)
	if c.Wordlist.Path == "" || c.Wordlist.Path == defaultWordlistPath {
		if value, ok := os.LookupEnv(wordlistPathEnvironment); ok && strings.TrimSpace(value) != "" {
			c.Wordlist.Path = strings.TrimSpace(value)
		}
	}
	if c.Wordlist.Path == "" {
		c.Wordlist.Path = defaultWordlistPath
	}
	var err error
	if c.Wordlist.Path, err = ExpandPath(c.Wordlist.Path); err != nil {
		return fmt.Errorf("wordlist.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeTokenizer() {
	c.Tokenizer.Segmenter = strings.ToLower(strings.TrimSpace(c.Tokenizer.Segmenter))
	if c.Tokenizer.Segmenter == "" {
		c.Tokenizer.Segmenter = defaultSegmenter
	}
	c.Tokenizer.Normalization = strings.ToLower(strings.TrimSpace(c.Tokenizer.Normalization))
	if c.Tokenizer.Normalization == "" {
		c.Tokenizer.Normalization = defaultNormalization
	}
}

func (c *Config) normalizeSources() {
	if c.Sources.MaxBytes == 0 {
		c.Sources.MaxBytes = defaultSourceMaxBytes
	}
}

func (c *Config) normalizeLedger() error {
	if strings.TrimSpace(c.Ledger.Path) == "" {
		c.Ledger.Path = defaultLedgerPath
	}
	var err error
	if c.Ledger.Path, err = ExpandPath(strings.TrimSpace(c.Ledger.Path)); err != nil {
		return fmt.Errorf("ledger.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
