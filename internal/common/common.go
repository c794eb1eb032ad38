package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	DefaultLayoutName = "dubeolsik"
	socketEnv         = "HANJAMO_SOCKET"
	socketName        = "jamo.sock"
)

var availableLayouts = []string{
	"dubeolsik",
}

// ResolveLayout normalizes a user-provided keyboard layout name.
func ResolveLayout(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "", "default", "dubeolsik", "2beolsik", "두벌식":
		return DefaultLayoutName, nil
	default:
		return "", fmt.Errorf("unknown layout %q (available: %s)", name, strings.Join(AvailableLayouts(), ", "))
	}
}

// DefaultSocketPath returns the socket `jamo serve` listens on and
// `jamo --remote` dials. HANJAMO_SOCKET wins; otherwise the socket lives
// in a per-user hanjamo directory under the runtime dir, the cache dir or,
// as a last resort, the temp dir keyed by uid so users do not collide.
func DefaultSocketPath() string {
	if env := os.Getenv(socketEnv); env != "" {
		return env
	}
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, "hanjamo", socketName)
	}
	if cacheDir, err := os.UserCacheDir(); err == nil && cacheDir != "" {
		return filepath.Join(cacheDir, "hanjamo", socketName)
	}
	return filepath.Join(os.TempDir(), "hanjamo-"+strconv.Itoa(os.Getuid()), socketName)
}

// EnsureSocketDir creates the socket's parent directory, readable by its
// owner only. Existing directories keep their permissions.
func EnsureSocketDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" || dir == string(filepath.Separator) {
		return nil
	}
	return os.MkdirAll(dir, 0o700)
}

// AvailableLayouts returns the names understood by ResolveLayout.
func AvailableLayouts() []string {
	copyOf := make([]string, len(availableLayouts))
	copy(copyOf, availableLayouts)
	return copyOf
}
