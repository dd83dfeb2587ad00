package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-lncgen/pkg/model"
)

// VaultConfig returns the reference challenge used across renderer and
// end-to-end tests.
func VaultConfig() model.Config {
	cfg := model.NewConfig()
	cfg.Name = "Vault"
	cfg.Author = "zed"
	cfg.Category = model.CategoryPwn
	cfg.Difficulty = model.DifficultyHard
	cfg.Flag = "LNC25{abc}"
	cfg.Port = "1337"
	cfg.Hints = []model.Hint{{Description: "check the binary", Cost: 50}}
	return cfg
}

// VaultFiles returns the file list paired with VaultConfig.
func VaultFiles() []string {
	return []string{"vault"}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// WriteFixture writes data into a fresh file under t.TempDir and returns its
// path.
func WriteFixture(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
