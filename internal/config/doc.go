// Package config loads, normalizes, and validates wordlist configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the WORDLIST_PATH environment
// fallback. The Config type centralizes the knobs the CLI and workflow need:
// the default wordlist location, tokenizer selection, source reading limits,
// the optional history ledger, and logging.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, canonical option names, and clear validation errors.
package config
