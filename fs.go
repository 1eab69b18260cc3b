package fontconv

import "os"

// FileSystem is the file access boundary used by the resolver and the
// converter. Production code uses DiskFS, tests substitute fakes.
type FileSystem interface {
	// IsFile returns whether path exists and is a regular file.
	IsFile(path string) bool
	// IsDir returns whether path exists and is a directory.
	IsDir(path string) bool
	// Exists returns whether path exists, regardless of its type.
	Exists(path string) bool
	// MkdirAll creates a directory at path together with any missing parents.
	MkdirAll(path string) error
	// Remove deletes the file at path. Removing an absent path is not an error.
	Remove(path string) error
}

// DiskFS implements FileSystem on the local filesystem.
type DiskFS struct{}

func (DiskFS) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (DiskFS) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (DiskFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (DiskFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (DiskFS) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
