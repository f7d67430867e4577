// Package resolve locates external executables on the shell's search path.
package resolve

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolve looks up name. If name contains a path separator it is returned
// unchanged and is not searched for (the caller, or the OS, will surface any
// lookup failure). Otherwise each directory of PATH is checked in order for
// a non-directory entry named name with at least one execute bit set.
func Resolve(name string) (string, bool) {
	if strings.ContainsRune(name, os.PathSeparator) {
		return name, true
	}

	pathEnv := os.Getenv("PATH")
	if pathEnv == "" {
		return "", false
	}

	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}
		if info.Mode().Perm()&0o111 == 0 {
			continue
		}
		return candidate, true
	}

	return "", false
}
