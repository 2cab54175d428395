package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// MakeFolders creates the named directories under base.
func MakeFolders(t testing.TB, base string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.MkdirAll(filepath.Join(base, name), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", name, err)
		}
	}
}
