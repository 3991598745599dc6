package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dirsum",
	Short: "Directory checksum scanner and verifier",
	Long: `dirsum recursively discovers files under a directory, filters them with
glob patterns, and computes a cryptographic checksum for each file.

Scans can be printed directly, recorded in a YAML manifest, or compared
against a previously recorded manifest to detect modified, missing and
unexpected files.

Inaccessible paths never abort a scan: missing directories and
permission-denied subtrees simply contribute fewer results.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or parameters
  12 - User denied manifest overwrite approval
  13 - Verification failed (tree differs from manifest)
  14 - Manifest not found`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for dirsum")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
