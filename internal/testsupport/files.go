package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"wordlist/internal/config"
)

// WriteText writes content to name under the config's base directory and
// returns the full path. Parent directories are created as needed.
func WriteText(t testing.TB, cfg *config.Config, name, content string) string {
	t.Helper()

	path := filepath.Join(BaseDir(cfg), name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
