package servicebindings

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeEntry(t *testing.T, dir, key, value string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, key), []byte(value), 0o600); err != nil {
		t.Fatalf("write %s: %v", key, err)
	}
}

func TestConfigTreeRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "test-k8s")
	if err := os.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeEntry(t, dir, "test-secret-key", "test-secret-value\n")

	b := NewConfigTree(dir)
	if v, ok := Get(b, "test-secret-key"); !ok || v != "test-secret-value" {
		t.Fatalf("Get: ok=%v v=%q", ok, v)
	}
	if raw, ok := b.GetAsBytes("test-secret-key"); !ok || !bytes.Equal(raw, []byte("test-secret-value\n")) {
		t.Fatalf("GetAsBytes: ok=%v raw=%q", ok, raw)
	}
}

func TestConfigTreeTestdata(t *testing.T) {
	b := NewConfigTree(filepath.Join("testdata", "test-k8s"))

	if v, ok := Get(b, "test-secret-key"); !ok || v != "test-secret-value" {
		t.Fatalf("Get: ok=%v v=%q", ok, v)
	}
	ty, err := GetType(b)
	if err != nil || ty != "test-type-1" {
		t.Fatalf("GetType: v=%q err=%v", ty, err)
	}
	if p, ok := GetProvider(b); !ok || p != "test-provider-1" {
		t.Fatalf("GetProvider: ok=%v v=%q", ok, p)
	}
}

func TestConfigTreeMissingKey(t *testing.T) {
	b := NewConfigTree(filepath.Join("testdata", "test-k8s"))
	if _, ok := b.GetAsBytes("test-missing-key"); ok {
		t.Fatal("missing entry must be absent")
	}
}

func TestConfigTreeInvalidKey(t *testing.T) {
	b := NewConfigTree(filepath.Join("testdata", "test-k8s"))
	if _, ok := b.GetAsBytes("test^invalid^key"); ok {
		t.Fatal("invalid key must be absent")
	}
	// Path separators never reach the filesystem.
	if _, ok := b.GetAsBytes("../primary-db/type"); ok {
		t.Fatal("traversal key must be absent")
	}
}

func TestConfigTreeDirectoryEntry(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	b := NewConfigTree(dir)
	if _, ok := b.GetAsBytes("subdir"); ok {
		t.Fatal("directory entry must be absent")
	}
}

func TestConfigTreeMissingRoot(t *testing.T) {
	b := NewConfigTree(filepath.Join("testdata", "missing"))
	if _, ok := b.GetAsBytes("type"); ok {
		t.Fatal("entry under missing root must be absent")
	}
	if keys := b.Keys(); len(keys) != 0 {
		t.Fatalf("Keys under missing root: %v", keys)
	}
}

func TestConfigTreeName(t *testing.T) {
	b := NewConfigTree(filepath.Join("testdata", "test-k8s"))
	if got := b.GetName(); got != "test-k8s" {
		t.Fatalf("GetName: %q", got)
	}
}

func TestConfigTreeSymlinkedEntry(t *testing.T) {
	// Kubernetes projects entries as symlinks into a ..data directory.
	dir := t.TempDir()
	data := filepath.Join(dir, "..data")
	if err := os.Mkdir(data, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeEntry(t, data, "type", "test-type-1\n")
	if err := os.Symlink(filepath.Join(data, "type"), filepath.Join(dir, "type")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	b := NewConfigTree(dir)
	ty, err := GetType(b)
	if err != nil || ty != "test-type-1" {
		t.Fatalf("GetType through symlink: v=%q err=%v", ty, err)
	}
}

func TestConfigTreeKeys(t *testing.T) {
	b := NewConfigTree(filepath.Join("testdata", "primary-db"))
	keys := b.Keys()
	want := []string{"provider", "type", "url"}
	if len(keys) != len(want) {
		t.Fatalf("Keys: %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys: %v, want %v", keys, want)
		}
	}
}
