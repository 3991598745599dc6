package dirsum

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := verifier.Verify(ctx, manifestPath, req)
//	if errors.Is(err, dirsum.ErrManifestNotFound) {
//	    // Handle missing manifest
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnsupportedChecksumKind indicates a checksum kind outside the
	// supported set was requested.
	ErrUnsupportedChecksumKind = errors.New("unsupported checksum kind")

	// ErrManifestNotFound indicates the manifest file was not found.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrApprovalDenied indicates the user denied approval for the operation.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrVerificationFailed indicates the scanned tree does not match the manifest.
	ErrVerificationFailed = errors.New("verification failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrUnsupportedChecksumKind):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrVerificationFailed):
		return ExitVerificationFailed
	case errors.Is(err, ErrManifestNotFound):
		return ExitManifestMissing
	}

	return ExitGeneralError
}
