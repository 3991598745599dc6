package dirsum

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess            = 0  // Scan/verify completed successfully
	ExitGeneralError       = 1  // Unknown or unclassified error
	ExitUsageError         = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic              = 3  // Internal panic (unexpected crash)
	ExitConfigError        = 10 // Invalid configuration or parameters
	ExitApprovalDenied     = 12 // User denied manifest overwrite approval
	ExitVerificationFailed = 13 // Scanned tree differs from manifest
	ExitManifestMissing    = 14 // Manifest file not found
)

const (
	// DefaultMatchGlob matches every file when no match pattern is given.
	DefaultMatchGlob = "*"

	// DefaultChecksumKind is the algorithm used when none is configured.
	DefaultChecksumKind = ChecksumSHA256

	// DefaultManifestName is the manifest file name used when --manifest
	// is not given.
	DefaultManifestName = "dirsum.manifest.yaml"

	// DefaultForceApprovalCountdown is the countdown duration before force
	// approval proceeds.
	DefaultForceApprovalCountdown = 5 * time.Second
)
