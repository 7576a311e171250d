// Package fs provides a simple interface for a filesystem
package fs

import (
	"time"
)

// FileInfo describes a file and is returned by Stat.
type FileInfo interface {
	// Name returns the full name of the file.
	Name() string

	// Size reports the size of the file in bytes.
	Size() int64

	// ModTime returns the time of last modification.
	ModTime() time.Time

	// IsDir returns whether the file represents a directory.
	IsDir() bool
}

// ReadFilesystem provides read access to the files below a base directory. All
// paths are interpreted relative to the base directory.
type ReadFilesystem interface {
	// Base returns the base path of this filesystem.
	Base() string

	// ReadFile reads the whole content of the file at the given path. Directories
	// can't be read.
	ReadFile(path string) ([]byte, error)

	// Stat returns info about the file at path. If the file doesn't exist, an error
	// will be returned.
	Stat(path string) (FileInfo, error)
}
