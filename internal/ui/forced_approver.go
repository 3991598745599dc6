package ui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dirsum/dirsum/pkg/dirsum"
)

// ForcedApprover implements the Approver interface for forced (non-interactive)
// approval. It displays a countdown and automatically approves after the countdown,
// used when the --force flag is provided.
type ForcedApprover struct {
	verbose bool
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) dirsum.Approver {
	return &ForcedApprover{verbose: verbose}
}

// RequestApproval displays a countdown and automatically approves after the countdown.
func (a *ForcedApprover) RequestApproval(ctx context.Context, manifestPath string) (bool, error) {
	fmt.Fprintf(os.Stderr, "\n⚠️  Replacing existing manifest '%s' (--force)\n", manifestPath)

	countdownSeconds := int(dirsum.DefaultForceApprovalCountdown.Seconds())
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for i := countdownSeconds; i > 0; i-- {
		fmt.Fprintf(os.Stderr, "\rReplacing in: %d seconds... (Press Ctrl+C to cancel)", i)
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-ticker.C:
		}
	}

	fmt.Fprintf(os.Stderr, "\r✓ Proceeding with manifest replacement...                              \n")
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ dirsum.Approver = (*ForcedApprover)(nil)
