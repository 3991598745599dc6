package checksum

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/dirsum/dirsum/internal/files/filesystem"
	"github.com/dirsum/dirsum/pkg/dirsum"
)

// Calculator computes file content digests for the supported checksum
// kinds. The zero value is not usable; construct with New or NewWithFS.
//
// Calculator holds no mutable state and is safe for concurrent use by
// multiple goroutines as long as the provided fsProvider is thread-safe.
type Calculator struct {
	fsProvider filesystem.FileSystemProvider
}

// New creates a new Calculator using the OS filesystem.
func New() *Calculator {
	return NewWithFS(filesystem.NewOSFileSystem())
}

// NewWithFS creates a new Calculator with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewWithFS(fsProvider filesystem.FileSystemProvider) *Calculator {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Calculator{fsProvider: fsProvider}
}

// ComputeChecksum hashes the full byte content of the file at path and
// returns the digest as a lowercase hexadecimal string, two characters
// per byte, no separators.
//
// An unreadable file (missing, permission denied, I/O error mid-read)
// yields the empty-string sentinel with a nil error: I/O failures never
// abort a scan. A kind outside the supported set is a contract violation
// and yields dirsum.ErrUnsupportedChecksumKind.
func (c *Calculator) ComputeChecksum(path string, kind dirsum.ChecksumKind) (string, error) {
	h, err := newHash(kind)
	if err != nil {
		return "", err
	}

	f, err := c.fsProvider.Open(path)
	if err != nil {
		return "", nil
	}
	defer f.Close()

	if _, err := io.Copy(h, f); err != nil {
		return "", nil
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Sum hashes an in-memory byte slice with the given kind. It shares the
// digest encoding with ComputeChecksum and exists for callers that
// already hold the content.
func Sum(content []byte, kind dirsum.ChecksumKind) (string, error) {
	h, err := newHash(kind)
	if err != nil {
		return "", err
	}
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil)), nil
}

// newHash maps a checksum kind to a fresh hash context. The switch is
// exhaustive over the closed kind set; anything else is rejected instead
// of leaving the algorithm unset.
func newHash(kind dirsum.ChecksumKind) (hash.Hash, error) {
	switch kind {
	case dirsum.ChecksumMD5:
		return md5.New(), nil
	case dirsum.ChecksumSHA1:
		return sha1.New(), nil
	case dirsum.ChecksumSHA256:
		return sha256.New(), nil
	case dirsum.ChecksumSHA512:
		return sha512.New(), nil
	default:
		return nil, fmt.Errorf("checksum kind %d: %w", int(kind), dirsum.ErrUnsupportedChecksumKind)
	}
}

// Verify Calculator implements the interface at compile time
var _ dirsum.Digester = (*Calculator)(nil)
