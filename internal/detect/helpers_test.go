package detect

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"modelprobe/pkg/types"
)

// modelDir creates a named model directory under a temp root so tests
// control exactly which path hints are present.
func modelDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	return dir
}

func addFile(t *testing.T, dir, rel string, size int) string {
	t.Helper()
	p := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", p, err)
	}
	if err := os.WriteFile(p, bytes.Repeat([]byte("x"), size), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func addDir(t *testing.T, dir, rel string) string {
	t.Helper()
	p := filepath.Join(dir, rel)
	if err := os.MkdirAll(p, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", p, err)
	}
	return p
}

func hasDetected(detected []types.DetectedModel, kind string) bool {
	for _, d := range detected {
		if d.Kind == kind {
			return true
		}
	}
	return false
}
