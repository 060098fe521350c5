package audit

import (
	"os"
	"path/filepath"
)

// ResolveBinary finds the first PATH entry holding an executable regular file named name,
// scanning left to right the way the shell does, and returns its absolute path with every
// symlink resolved. It returns "" when the command cannot be found or canonicalized.
func ResolveBinary(pathEntries []string, name string) string {
	if name == "" {
		return ""
	}
	for _, dir := range pathEntries {
		if dir == "" {
			// POSIX: an empty PATH component means the working directory.
			dir = "."
		}
		candidate := filepath.Join(dir, name)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() || !isExecutable(candidate, info) {
			continue
		}
		return canonicalize(candidate)
	}
	return ""
}

func canonicalize(p string) string {
	resolved, err := filepath.EvalSymlinks(p)
	if err != nil {
		return ""
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return ""
	}
	return abs
}

// pathExists reports whether a directory entry exists at p. A dangling symlink counts.
func pathExists(p string) bool {
	_, err := os.Lstat(p)
	return err == nil
}
