package dirsum

// Digester defines the interface for computing file content digests.
// Implementations must be safe for concurrent use by multiple goroutines.
type Digester interface {
	// ComputeChecksum hashes the full byte content of the file at path
	// with the algorithm selected by kind and returns the digest as a
	// lowercase hexadecimal string.
	//
	// An unreadable file (missing, permission denied, I/O error) yields
	// the empty-string sentinel and a nil error. A kind outside the
	// supported set yields ErrUnsupportedChecksumKind.
	ComputeChecksum(path string, kind ChecksumKind) (string, error)
}
