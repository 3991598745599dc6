package dirsum

import "context"

// Approver handles user interaction for approval workflows,
// particularly before overwriting an existing manifest file.
//
// Implementations:
//   - ForcedApprover: Shows countdown and automatically approves
//   - InteractiveApprover: Prompts user to type the manifest name for confirmation
type Approver interface {
	// RequestApproval prompts for confirmation before overwriting an
	// existing manifest.
	//
	// Parameters:
	//   - ctx: Context for cancellation
	//   - manifestPath: Path of the manifest about to be replaced
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: Any error that occurred during the approval process
	RequestApproval(ctx context.Context, manifestPath string) (bool, error)
}
