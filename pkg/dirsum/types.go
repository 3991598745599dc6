package dirsum

import (
	"errors"
	"fmt"
	"strings"
)

// ScanRequest describes a single directory scan.
// BasePath is evaluated fresh on each call; a non-existent directory
// yields an empty result, not an error.
type ScanRequest struct {
	// BasePath is the root directory to scan
	BasePath string

	// ExcludeGlob removes matching paths from the result set.
	// Empty means no exclusion.
	ExcludeGlob string

	// MatchGlob selects candidate files. Defaults to "*" (everything).
	MatchGlob string

	// Recurse enables descending into subdirectories
	Recurse bool
}

// Validate checks if the ScanRequest has all required fields.
// It returns a multi-error if multiple validation failures occur.
func (r *ScanRequest) Validate() error {
	var errs []error

	if r.BasePath == "" {
		errs = append(errs, fmt.Errorf("BasePath is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// EffectiveMatchGlob returns MatchGlob, or the default "*" when unset.
func (r *ScanRequest) EffectiveMatchGlob() string {
	if r.MatchGlob == "" {
		return DefaultMatchGlob
	}
	return r.MatchGlob
}

// FileDigest pairs a discovered file path with its computed digest.
// An empty Digest means the file could not be read; it is never a
// valid digest value.
type FileDigest struct {
	Path   string
	Digest string
}

// Failed reports whether the digest computation failed for this file.
func (f FileDigest) Failed() bool {
	return f.Digest == ""
}

// VerificationReport is the outcome of comparing a fresh scan against
// a recorded manifest.
type VerificationReport struct {
	// Matched lists paths whose digests equal the manifest entries
	Matched []string

	// Modified lists paths present in both but with differing digests
	Modified []string

	// Missing lists manifest paths absent from the fresh scan
	Missing []string

	// Extra lists scanned paths the manifest does not know about
	Extra []string

	// Unreadable lists scanned paths whose content could not be hashed
	Unreadable []string
}

// OK reports whether the scan matched the manifest exactly.
func (r *VerificationReport) OK() bool {
	return len(r.Modified) == 0 && len(r.Missing) == 0 &&
		len(r.Extra) == 0 && len(r.Unreadable) == 0
}

// Summary returns a one-line human-readable result summary.
func (r *VerificationReport) Summary() string {
	return fmt.Sprintf("%d matched, %d modified, %d missing, %d extra, %d unreadable",
		len(r.Matched), len(r.Modified), len(r.Missing), len(r.Extra), len(r.Unreadable))
}

// ChecksumKind identifies the hash algorithm used for file digests.
// The set of supported algorithms is fixed; the Digester switches over
// it exhaustively.
type ChecksumKind int

const (
	ChecksumMD5 ChecksumKind = iota
	ChecksumSHA1
	ChecksumSHA256
	ChecksumSHA512
)

// String returns the canonical lowercase algorithm name.
func (k ChecksumKind) String() string {
	switch k {
	case ChecksumMD5:
		return "md5"
	case ChecksumSHA1:
		return "sha1"
	case ChecksumSHA256:
		return "sha256"
	case ChecksumSHA512:
		return "sha512"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// HexLength returns the length of a valid digest string for this kind
// (two hex characters per digest byte).
func (k ChecksumKind) HexLength() int {
	switch k {
	case ChecksumMD5:
		return 32
	case ChecksumSHA1:
		return 40
	case ChecksumSHA256:
		return 64
	case ChecksumSHA512:
		return 128
	default:
		return 0
	}
}

// Valid reports whether k is one of the supported algorithms.
func (k ChecksumKind) Valid() bool {
	switch k {
	case ChecksumMD5, ChecksumSHA1, ChecksumSHA256, ChecksumSHA512:
		return true
	default:
		return false
	}
}

// ParseChecksumKind converts a user-supplied algorithm name to a
// ChecksumKind. Matching is case-insensitive and accepts the common
// dashed spellings ("sha-256").
func ParseChecksumKind(name string) (ChecksumKind, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "md5":
		return ChecksumMD5, nil
	case "sha1":
		return ChecksumSHA1, nil
	case "sha256":
		return ChecksumSHA256, nil
	case "sha512":
		return ChecksumSHA512, nil
	default:
		return 0, fmt.Errorf("algorithm %q: %w", name, ErrUnsupportedChecksumKind)
	}
}
