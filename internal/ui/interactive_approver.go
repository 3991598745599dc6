package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dirsum/dirsum/pkg/dirsum"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It prompts the user to type the manifest file
// name to confirm replacing a recorded baseline.
type InteractiveApprover struct {
	verbose bool
}

// NewInteractiveApprover creates a new InteractiveApprover.
func NewInteractiveApprover(verbose bool) dirsum.Approver {
	return &InteractiveApprover{verbose: verbose}
}

// RequestApproval prompts the user to type the manifest file name to confirm.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, manifestPath string) (bool, error) {
	name := filepath.Base(manifestPath)

	fmt.Fprintf(os.Stderr, "\n⚠️  WARNING: You are about to REPLACE the existing manifest '%s'\n", manifestPath)
	fmt.Fprintln(os.Stderr, "The recorded digests will be overwritten and the old baseline is lost!")
	fmt.Fprintf(os.Stderr, "\nTo confirm, type the manifest name '%s' and press Enter: ", name)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == name {
			fmt.Fprintln(os.Stderr, "✓ Confirmed. Replacing manifest...")
			return true, nil
		}
		fmt.Fprintf(os.Stderr, "✗ Input '%s' does not match manifest name '%s'. Operation cancelled.\n", input, name)
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ dirsum.Approver = (*InteractiveApprover)(nil)
