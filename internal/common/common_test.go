package common

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLayout(t *testing.T) {
	for _, name := range []string{"", "Dubeolsik", " 2beolsik ", "두벌식"} {
		got, err := ResolveLayout(name)
		if err != nil || got != "dubeolsik" {
			t.Fatalf("ResolveLayout(%q) = %q, %v", name, got, err)
		}
	}
	if _, err := ResolveLayout("dvorak"); err == nil {
		t.Fatalf("expected unknown layout to fail")
	}
}

func TestDefaultSocketPathHonoursEnv(t *testing.T) {
	t.Setenv(socketEnv, "/tmp/custom.sock")
	if got := DefaultSocketPath(); got != "/tmp/custom.sock" {
		t.Fatalf("expected env override, got %q", got)
	}

	t.Setenv(socketEnv, "")
	t.Setenv("XDG_RUNTIME_DIR", "/run/user/42")
	if got := DefaultSocketPath(); got != "/run/user/42/hanjamo/jamo.sock" {
		t.Fatalf("expected runtime dir socket, got %q", got)
	}
}

func TestDefaultSocketPathWithoutRuntimeDir(t *testing.T) {
	t.Setenv(socketEnv, "")
	t.Setenv("XDG_RUNTIME_DIR", "")
	t.Setenv("XDG_CACHE_HOME", "/var/cache/alice")
	t.Setenv("HOME", "/home/alice")
	got := DefaultSocketPath()
	if filepath.Base(got) != "jamo.sock" || !strings.HasPrefix(filepath.Base(filepath.Dir(got)), "hanjamo") {
		t.Fatalf("socket path %q is not jamo.sock in a hanjamo directory", got)
	}
}

func TestEnsureSocketDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "jamo.sock")
	if err := EnsureSocketDir(path); err != nil {
		t.Fatalf("EnsureSocketDir returned error: %v", err)
	}
	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Fatalf("socket directory was not created: %v", err)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		t.Fatalf("socket directory is accessible to others: %v", perm)
	}
}

func TestAvailableLayouts(t *testing.T) {
	layouts := AvailableLayouts()
	if len(layouts) == 0 || layouts[0] != DefaultLayoutName {
		t.Fatalf("unexpected layouts %v", layouts)
	}
	for _, name := range layouts {
		if got, err := ResolveLayout(name); err != nil || got != name {
			t.Fatalf("ResolveLayout(%q) = %q, %v", name, got, err)
		}
	}
	layouts[0] = "changed"
	if AvailableLayouts()[0] != DefaultLayoutName {
		t.Fatalf("AvailableLayouts exposes its backing slice")
	}
	_, err := ResolveLayout("dvorak")
	if err == nil || !strings.Contains(err.Error(), DefaultLayoutName) {
		t.Fatalf("unknown layout error should list the available layouts: %v", err)
	}
}
