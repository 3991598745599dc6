package filesystem

import (
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider abstracts the filesystem operations dirsum needs:
// listing a single directory level, stating paths, and streaming file
// content. Recursion is the caller's responsibility; providers only ever
// enumerate one level at a time.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileSystemProvider interface {
	// ReadDir reads the directory entries at the given path.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)

	// Open opens the file at path for streaming reads.
	// The caller must close the returned reader.
	Open(path string) (io.ReadCloser, error)

	// ReadFile reads the full content of the file at the given path
	ReadFile(path string) ([]byte, error)
}
