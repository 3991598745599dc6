package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/dirsum/dirsum/internal/manifest"
	"github.com/dirsum/dirsum/pkg/dirsum"
)

// VerifierService creates manifests from scans and verifies directory
// trees against previously written manifests.
//
// Thread-Safety: safe for concurrent use as long as the injected
// dependencies are thread-safe and distinct manifest paths are used.
type VerifierService struct {
	scanner  *ScanService
	approver dirsum.Approver
	logger   dirsum.Logger
}

// NewVerifierService creates a new VerifierService with all dependencies injected.
// Panics on nil dependencies; see NewScanService for the boundary rationale.
func NewVerifierService(scanner *ScanService, approver dirsum.Approver, logger dirsum.Logger) *VerifierService {
	if scanner == nil {
		panic("scanner cannot be nil")
	}
	if approver == nil {
		panic("approver cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &VerifierService{
		scanner:  scanner,
		approver: approver,
		logger:   logger,
	}
}

// CreateManifest scans req and writes the result to manifestPath.
// An existing manifest is only replaced after the approver consents;
// a denial yields dirsum.ErrApprovalDenied.
func (v *VerifierService) CreateManifest(ctx context.Context, req dirsum.ScanRequest, kind dirsum.ChecksumKind, manifestPath string) error {
	if manifest.Exists(manifestPath) {
		approved, err := v.approver.RequestApproval(ctx, manifestPath)
		if err != nil {
			return fmt.Errorf("approval failed: %w", err)
		}
		if !approved {
			return fmt.Errorf("manifest %s: %w", manifestPath, dirsum.ErrApprovalDenied)
		}
	}

	digests, err := v.scanner.Scan(req, kind)
	if err != nil {
		return err
	}

	m := manifest.New(req.BasePath, kind, digests)
	if err := manifest.Write(manifestPath, m); err != nil {
		return err
	}

	v.logger.Info("wrote manifest %s (%d entries, %s)", manifestPath, len(m.Entries), kind)
	return nil
}

// Verify scans req and compares the result against the manifest at
// manifestPath. The manifest's own algorithm is used for the fresh scan,
// so digests are always comparable.
//
// A non-matching tree is reported through the VerificationReport, not an
// error; errors are reserved for a missing/corrupt manifest or an invalid
// request.
func (v *VerifierService) Verify(ctx context.Context, req dirsum.ScanRequest, manifestPath string) (*dirsum.VerificationReport, error) {
	m, err := manifest.Read(manifestPath)
	if err != nil {
		return nil, err
	}
	kind, err := m.Kind()
	if err != nil {
		return nil, err
	}

	digests, err := v.scanner.Scan(req, kind)
	if err != nil {
		return nil, err
	}

	report := compare(m.Index(), digests)
	v.logger.Verbose("verification against %s: %s", manifestPath, report.Summary())
	return report, nil
}

// compare classifies scanned digests against the recorded manifest
// entries. Paths are normalized to slashes so manifests written on one
// platform verify on another.
func compare(recorded map[string]string, scanned []dirsum.FileDigest) *dirsum.VerificationReport {
	report := &dirsum.VerificationReport{}
	seen := make(map[string]bool, len(scanned))

	for _, d := range scanned {
		path := filepath.ToSlash(d.Path)
		seen[path] = true

		want, known := recorded[path]
		switch {
		case d.Failed():
			report.Unreadable = append(report.Unreadable, path)
		case !known:
			report.Extra = append(report.Extra, path)
		case want == "":
			// The manifest recorded the file as unreadable; there is no
			// digest to compare against, on either side.
			report.Unreadable = append(report.Unreadable, path)
		case want == d.Digest:
			report.Matched = append(report.Matched, path)
		default:
			report.Modified = append(report.Modified, path)
		}
	}

	for path := range recorded {
		if !seen[path] {
			report.Missing = append(report.Missing, path)
		}
	}

	// Deterministic report ordering; the walker itself guarantees none.
	sort.Strings(report.Matched)
	sort.Strings(report.Modified)
	sort.Strings(report.Missing)
	sort.Strings(report.Extra)
	sort.Strings(report.Unreadable)
	return report
}
