package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireBasePath validates that exactly one base_path argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireBasePath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <base_path>

Usage: %s <base_path>

Example:
  %s ./data -m "*.csv"`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
