package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dirsum/dirsum/internal/services"
	"github.com/dirsum/dirsum/internal/ui"
	"github.com/dirsum/dirsum/pkg/dirsum"
)

var createCmd = &cobra.Command{
	Use:   "create <base_path>",
	Short: "Record a directory's checksums in a manifest",
	Long: `Create scans a directory and writes the discovered files and their
checksums to a YAML manifest. A later 'dirsum verify' run compares the
tree against this recorded baseline.

Replacing an existing manifest requires confirmation: interactively the
manifest file name must be typed back, with --force a short countdown is
shown instead.

Examples:
  # Record ./data with the default algorithm (sha256)
  dirsum create ./data

  # Record only CSVs into an explicit manifest location
  dirsum create ./data -m "*.csv" -f checksums.yaml

  # Replace an existing manifest without prompting (CI)
  dirsum create ./data --force`,
	Args: RequireBasePath,
	RunE: runCreate,
}

var (
	createFlags scanFlagValues
	createForce bool
)

func init() {
	rootCmd.AddCommand(createCmd)
	registerScanFlags(createCmd, &createFlags)
	registerManifestFlag(createCmd, &createFlags)
	createCmd.Flags().BoolVar(&createForce, "force", false,
		"Skip the interactive confirmation when replacing an existing manifest\n"+
			"A countdown is shown instead; intended for CI/CD pipelines")
}

func runCreate(cmd *cobra.Command, args []string) error {
	opts, err := resolveScanOptions(cmd, args[0], createFlags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := newLogger(opts.verbose)

	var approver dirsum.Approver
	if createForce {
		approver = ui.NewForcedApprover(opts.verbose)
	} else {
		approver = ui.NewInteractiveApprover(opts.verbose)
	}

	verifier := services.NewVerifierService(newScanService(logger), approver, logger)
	return verifier.CreateManifest(ctx, opts.req, opts.kind, opts.manifest)
}
