package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dirsum/dirsum/internal/services"
	"github.com/dirsum/dirsum/internal/tui"
	"github.com/dirsum/dirsum/internal/ui"
	"github.com/dirsum/dirsum/pkg/dirsum"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <base_path>",
	Short: "Compare a directory against a recorded manifest",
	Long: `Verify rescans a directory with the algorithm recorded in the manifest
and reports every difference: modified files, files missing from the
tree, files the manifest does not know about, and files that could not
be read.

The exit code distinguishes outcomes for scripting:
  0  - tree matches the manifest
  13 - differences were found
  14 - manifest does not exist

Examples:
  # Verify ./data against its default manifest
  dirsum verify ./data

  # Verify against an explicit manifest
  dirsum verify ./data -f checksums.yaml`,
	Args: RequireBasePath,
	RunE: runVerify,
}

var verifyFlags scanFlagValues

func init() {
	rootCmd.AddCommand(verifyCmd)
	registerScanFlags(verifyCmd, &verifyFlags)
	registerManifestFlag(verifyCmd, &verifyFlags)
}

func runVerify(cmd *cobra.Command, args []string) error {
	opts, err := resolveScanOptions(cmd, args[0], verifyFlags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(opts.verbose)
	verifier := services.NewVerifierService(newScanService(logger), ui.NewInteractiveApprover(opts.verbose), logger)

	var report *dirsum.VerificationReport
	verifyTask := func() error {
		var verifyErr error
		report, verifyErr = verifier.Verify(ctx, opts.req, opts.manifest)
		return verifyErr
	}
	if err := tui.RunWithSpinner(fmt.Sprintf("Verifying %s against %s", opts.req.BasePath, opts.manifest), verifyTask); err != nil {
		return err
	}

	printReport(report)

	if !report.OK() {
		return fmt.Errorf("%s: %w", report.Summary(), dirsum.ErrVerificationFailed)
	}
	logger.Info("OK: %s", report.Summary())
	return nil
}

// printReport writes the per-file differences to stdout, styled when a
// human is watching, plain when piped.
func printReport(report *dirsum.VerificationReport) {
	styled := tui.IsInteractive()

	if !report.OK() {
		header := fmt.Sprintf("Differences (%s)", report.Summary())
		if styled {
			header = tui.TitleStyle.Render(header)
		}
		fmt.Println(header)
	}

	printSection := func(label string, style lipgloss.Style, paths []string) {
		for _, p := range paths {
			line := fmt.Sprintf("%-11s %s", label+":", p)
			if styled {
				line = style.Render(line)
			}
			fmt.Println(line)
		}
	}

	printSection("modified", tui.ModifiedStyle, report.Modified)
	printSection("missing", tui.MissingStyle, report.Missing)
	printSection("extra", tui.ExtraStyle, report.Extra)
	printSection("unreadable", tui.UnreadableStyle, report.Unreadable)
}
