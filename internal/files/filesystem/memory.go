package filesystem

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryEntry is a single file or directory in the virtual tree
type memoryEntry struct {
	absPath string
	content []byte
	info    fs.FileInfo
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Beyond plain file storage it can simulate the failure modes the walker
// and digester must tolerate: DenyAccess marks a path as
// permission-denied, FailReads makes a file's content unreadable.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry // map of absolute path -> entry
	denied  map[string]bool         // paths that report permission denied
	badRead map[string]bool         // files whose reads fail mid-stream
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		denied:  make(map[string]bool),
		badRead: make(map[string]bool),
		root:    root,
	}

	mfs.entries[root] = &memoryEntry{
		absPath: root,
		info: &memoryFileInfo{
			name:    path.Base(root),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}

	return mfs
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(filePath)
	contentBytes := []byte(content)

	// Re-adding a file resets any injected read failure.
	delete(mfs.badRead, absPath)

	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
		},
	}

	mfs.ensureDirectoriesExist(absPath)
}

// AddDir adds an (empty) directory to the in-memory filesystem
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.abs(dirPath)
	mfs.addDirEntry(absPath)
	mfs.ensureDirectoriesExist(absPath)
}

// DenyAccess marks a path as permission-denied. Listing a denied
// directory or opening a denied file fails with fs.ErrPermission.
func (mfs *MemoryFileSystem) DenyAccess(p string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.denied[mfs.abs(p)] = true
}

// FailReads makes reads of the given file fail after opening,
// simulating an I/O error mid-stream.
func (mfs *MemoryFileSystem) FailReads(p string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.badRead[mfs.abs(p)] = true
}

// abs resolves a path relative to the filesystem root.
func (mfs *MemoryFileSystem) abs(p string) string {
	p = filepath.ToSlash(p)
	if p == "." || p == "" {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// addDirEntry inserts a directory entry if one is not present. Caller holds the lock.
func (mfs *MemoryFileSystem) addDirEntry(absPath string) {
	if _, exists := mfs.entries[absPath]; exists {
		return
	}
	mfs.entries[absPath] = &memoryEntry{
		absPath: absPath,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
			isDir:   true,
		},
	}
}

// ensureDirectoriesExist creates directory entries for all parent directories. Caller holds the lock.
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}
	mfs.addDirEntry(dir)
	mfs.ensureDirectoriesExist(dir)
}

// ReadDir implements FileSystemProvider.ReadDir
func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.abs(dirPath)

	if mfs.denied[absPath] {
		return nil, fmt.Errorf("failed to read directory: %w", fs.ErrPermission)
	}

	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to read directory: %w", fs.ErrNotExist)
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	var result []FileInfo
	for p, e := range mfs.entries {
		if path.Dir(p) == absPath && p != absPath {
			result = append(result, e.info)
		}
	}
	return result, nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(p string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.abs(p)
	if mfs.denied[absPath] {
		return nil, fs.ErrPermission
	}
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fs.ErrNotExist
	}
	return entry.info, nil
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(p string) (io.ReadCloser, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.abs(p)
	if mfs.denied[absPath] {
		return nil, fs.ErrPermission
	}
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fs.ErrNotExist
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory: %s", p)
	}
	if mfs.badRead[absPath] {
		return io.NopCloser(&failingReader{}), nil
	}
	return io.NopCloser(bytes.NewReader(entry.content)), nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(p string) ([]byte, error) {
	r, err := mfs.Open(p)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// failingReader errors on every read, simulating a mid-stream I/O failure.
type failingReader struct{}

func (r *failingReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("read: %w", fs.ErrClosed)
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
var _ FileSystemProvider = (*OSFileSystem)(nil)
