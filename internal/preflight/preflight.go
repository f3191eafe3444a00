package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"wordlist/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Err converts a failed result into an error.
func (r Result) Err() error {
	if r.Passed {
		return nil
	}
	return fmt.Errorf("%s: %s", r.Name, r.Detail)
}

func pass(name, path, note string) Result {
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%s)", path, note)}
}

func fail(name, path, format string, args ...any) Result {
	return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s)", path, fmt.Sprintf(format, args...))}
}

// RunAll checks the wordlist target and, when the ledger is enabled, the
// ledger directory.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}
	results := []Result{CheckOutputTarget("Wordlist", cfg.Wordlist.Path)}
	if cfg.Ledger.Enabled {
		results = append(results, CheckDirectoryAccess("Ledger directory", filepath.Dir(cfg.Ledger.Path)))
	}
	return results
}

// CheckDirectoryAccess passes when path is an existing directory the process
// may list, read and create entries in.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fail(name, path, "does not exist")
	case err != nil:
		return fail(name, path, "stat: %v", err)
	case !info.IsDir():
		return fail(name, path, "is not a directory")
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return fail(name, path, "insufficient permissions: %v", err)
	}
	return pass(name, path, "read/write ok")
}

// CheckOutputTarget passes when a list file can be (re)written at path: the
// parent directory must accept new files and path itself must not be a
// directory.
func CheckOutputTarget(name, path string) Result {
	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return fail(name, path, "is a directory")
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return fail(name, path, "stat: %v", err)
	}
	if dir := CheckDirectoryAccess(name, filepath.Dir(path)); !dir.Passed {
		return dir
	}
	return pass(name, path, "writable")
}
