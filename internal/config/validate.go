package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTokenizer(); err != nil {
		return err
	}
	if err := c.validateSources(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTokenizer() error {
	switch c.Tokenizer.Segmenter {
	case "uax29", "japanese":
	default:
		return fmt.Errorf("tokenizer.segmenter must be \"uax29\" or \"japanese\", got %q", c.Tokenizer.Segmenter)
	}
	switch c.Tokenizer.Normalization {
	case "nfc", "none":
	default:
		return fmt.Errorf("tokenizer.normalization must be \"nfc\" or \"none\", got %q", c.Tokenizer.Normalization)
	}
	return nil
}

func (c *Config) validateSources() error {
	if c.Sources.MaxBytes < 0 {
		return errors.New("sources.max_bytes must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
}
