package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dirsum/dirsum/internal/tui"
	"github.com/dirsum/dirsum/pkg/dirsum"
)

var scanCmd = &cobra.Command{
	Use:   "scan <base_path>",
	Short: "Discover files and print their checksums",
	Long: `Scan discovers the files under a directory matching the configured glob
patterns and prints one "<digest>  <path>" line per file to stdout.

Files that cannot be read are printed with a "?" placeholder instead of a
digest; missing or inaccessible directories simply contribute no lines.

Examples:
  # Checksum every file under ./data
  dirsum scan ./data

  # Only CSV files, skipping backups, without recursion
  dirsum scan ./data -m "*.csv" -e "*.bak" --recursive=false

  # MD5 digests for comparison with legacy sum files
  dirsum scan ./data -a md5`,
	Args: RequireBasePath,
	RunE: runScan,
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)
	registerScanFlags(scanCmd, &scanFlags)
}

func runScan(cmd *cobra.Command, args []string) error {
	opts, err := resolveScanOptions(cmd, args[0], scanFlags)
	if err != nil {
		return err
	}

	logger := newLogger(opts.verbose)
	scanner := newScanService(logger)

	var results []dirsum.FileDigest
	scanTask := func() error {
		var scanErr error
		results, scanErr = scanner.Scan(opts.req, opts.kind)
		return scanErr
	}
	if err := tui.RunWithSpinner(fmt.Sprintf("Scanning %s (%s)", opts.req.BasePath, opts.kind), scanTask); err != nil {
		return err
	}

	for _, r := range results {
		if r.Failed() {
			// Placeholder keeps the two-column format parseable.
			fmt.Printf("%-*s  %s\n", opts.kind.HexLength(), "?", r.Path)
			continue
		}
		fmt.Printf("%s  %s\n", r.Digest, r.Path)
	}

	logger.Verbose("scanned %d file(s)", len(results))
	return nil
}
