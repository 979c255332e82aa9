// Package integration_tests holds end-to-end tests that load the example
// manifests shipped in the repository and run them through the app.
package integration_tests

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Manifest returns the content of manifests/<name> at the repository root.
func Manifest(t *testing.T, name string) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot locate integration test helpers")
	}
	path := filepath.Join(filepath.Dir(file), "..", "..", "manifests", name)
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read manifest %s: %v", path, err)
	}
	return string(content)
}
