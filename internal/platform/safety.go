package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// devDirName is the sandbox created below the system temp dir.
const devDirName = "agenda-dev"

// IsDevRun reports whether the process was built by `go run` or `go test`:
// both place the binary in a temp directory, and test binaries end in ".test".
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}
	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}
	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveDataDir returns dir unchanged unless sandboxed is set. Sandboxed paths move
// under <tmp>/agenda-dev/<base>, except paths already inside the temp dir.
func ResolveDataDir(dir string, sandboxed bool) string {
	clean := filepath.Clean(dir)
	if !sandboxed {
		return clean
	}

	if rel, err := filepath.Rel(os.TempDir(), clean); err == nil && !strings.HasPrefix(rel, "..") {
		return clean
	}

	name := filepath.Base(clean)
	if name == "." || name == string(os.PathSeparator) {
		name = "default"
	}
	return filepath.Join(os.TempDir(), devDirName, name)
}
