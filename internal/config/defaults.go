package config

const (
	defaultConfigPath       = "~/.config/wordlist/config.toml"
	projectConfigName       = "wordlist.toml"
	defaultWordlistPath     = "word-list.txt"
	defaultSegmenter        = "uax29"
	defaultNormalization    = "nfc"
	defaultExtractHTML      = true
	defaultSourceMaxBytes   = 16 << 20
	defaultLedgerPath       = "~/.local/share/wordlist/history.db"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	wordlistPathEnvironment = "WORDLIST_PATH"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Wordlist: Wordlist{
			Path: defaultWordlistPath,
		},
		Tokenizer: Tokenizer{
			Segmenter:     defaultSegmenter,
			Normalization: defaultNormalization,
		},
		Sources: Sources{
			ExtractHTML: defaultExtractHTML,
			MaxBytes:    defaultSourceMaxBytes,
		},
		Ledger: Ledger{
			Path: defaultLedgerPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
