package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/spf13/afero"

	"github.com/specialistvlad/cleago/internal/hcl"
	"github.com/specialistvlad/cleago/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest writes manifest to an in-memory filesystem and builds an App
// from it. Program output goes to the first buffer, logs and errors to the
// second.
func SetupAppTest(t *testing.T, manifest string, cfg Config, modules ...registry.Module) (*App, *SafeBuffer, *SafeBuffer) {
	t.Helper()

	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/manifests/main.hcl", []byte(manifest), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	cfg.ManifestPaths = []string{"/manifests"}
	cfg.LogLevel = "debug"
	appConfig, err := NewConfig(cfg)
	if err != nil {
		t.Fatalf("invalid test config: %v", err)
	}

	outBuffer, errBuffer := &SafeBuffer{}, &SafeBuffer{}
	testApp := NewApp(outBuffer, errBuffer, appConfig, hcl.NewLoader(fs), modules...)

	t.Cleanup(func() {
		if os.Getenv("CLEA_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), errBuffer.String())
		}
	})

	return testApp, outBuffer, errBuffer
}
