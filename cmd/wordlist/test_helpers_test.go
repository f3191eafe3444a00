package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	listPath   string
	ledgerPath string
}

// setupCLITestEnv isolates HOME and the working directory and writes a
// config with the ledger enabled.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	require.NoError(t, os.MkdirAll(home, 0o755))
	t.Setenv("HOME", home)
	t.Setenv("WORDLIST_PATH", "")
	t.Chdir(base)

	env := &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		listPath:   filepath.Join(base, "lists", "word-list.txt"),
		ledgerPath: filepath.Join(base, "data", "history.db"),
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(env.listPath), 0o755))

	content := fmt.Sprintf(
		"[wordlist]\npath = %q\n\n[ledger]\nenabled = true\npath = %q\n\n[logging]\nlevel = \"warn\"\n",
		env.listPath,
		env.ledgerPath,
	)
	env.writeConfig(t, content)
	return env
}

func (env *cliTestEnv) writeConfig(t *testing.T, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(env.configPath, []byte(content), 0o644))
}

func (env *cliTestEnv) writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(env.baseDir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (env *cliTestEnv) readList(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// runCLI executes a fresh root command and returns stdout and stderr.
func runCLI(t *testing.T, args []string, configPath, stdin string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// mustRunCLI is runCLI for invocations that are expected to succeed.
func mustRunCLI(t *testing.T, env *cliTestEnv, stdin string, args ...string) string {
	t.Helper()
	out, stderr, err := runCLI(t, args, env.configPath, stdin)
	require.NoError(t, err, "wordlist %s\nstderr: %s", strings.Join(args, " "), stderr)
	return out
}
