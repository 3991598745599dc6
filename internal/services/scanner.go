package services

import (
	"fmt"

	"github.com/dirsum/dirsum/pkg/dirsum"
)

// ScanService composes the directory walker with the digest calculator:
// the walker lists and filters candidate files, the digester hashes each
// surviving path one at a time.
//
// Thread-Safety: safe for concurrent Scan() calls as long as the injected
// walker, digester and logger are thread-safe.
type ScanService struct {
	walker   dirsum.Walker
	digester dirsum.Digester
	logger   dirsum.Logger
}

// NewScanService creates a new ScanService with all dependencies injected.
//
// Panic vs. Error Boundary Rationale:
//   - Panics on nil dependencies: These are programmer errors that should
//     fail loudly at application startup, not during a scan.
//   - Returns errors for runtime conditions: invalid requests and
//     unsupported checksum kinds are recoverable and reported to the caller.
func NewScanService(walker dirsum.Walker, digester dirsum.Digester, logger dirsum.Logger) *ScanService {
	if walker == nil {
		panic("walker cannot be nil")
	}
	if digester == nil {
		panic("digester cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &ScanService{
		walker:   walker,
		digester: digester,
		logger:   logger,
	}
}

// Scan discovers the files selected by req and computes each one's digest.
//
// Unreadable files appear in the result with the empty-string digest
// sentinel rather than aborting the scan. The only error condition is a
// contract violation: an invalid request or an unsupported checksum kind.
func (s *ScanService) Scan(req dirsum.ScanRequest, kind dirsum.ChecksumKind) ([]dirsum.FileDigest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("checksum kind %d: %w", int(kind), dirsum.ErrUnsupportedChecksumKind)
	}

	paths := s.walker.ListRecursive(req.BasePath, req.ExcludeGlob, req.EffectiveMatchGlob(), req.Recurse)
	s.logger.Verbose("discovered %d file(s) under %s", len(paths), req.BasePath)

	results := make([]dirsum.FileDigest, 0, len(paths))
	for _, path := range paths {
		digest, err := s.digester.ComputeChecksum(path, kind)
		if err != nil {
			return nil, err
		}
		if digest == "" {
			s.logger.Verbose("could not read %s, recording empty digest", path)
		}
		results = append(results, dirsum.FileDigest{Path: path, Digest: digest})
	}
	return results, nil
}
