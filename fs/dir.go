package fs

import "os"

// EnsureDir creates the directory (and any parents) if it does not exist.
// Idempotent: an existing directory is not an error.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
