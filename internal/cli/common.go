package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dirsum/dirsum/internal/checksum"
	"github.com/dirsum/dirsum/internal/config"
	"github.com/dirsum/dirsum/internal/files/filesystem"
	"github.com/dirsum/dirsum/internal/files/walker"
	"github.com/dirsum/dirsum/internal/logging"
	"github.com/dirsum/dirsum/internal/params"
	"github.com/dirsum/dirsum/internal/services"
	"github.com/dirsum/dirsum/pkg/dirsum"
)

// scanFlagValues holds the flag values shared by scan, create and verify.
type scanFlagValues struct {
	algorithm string
	match     string
	exclude   string
	recursive bool
	manifest  string
	envFiles  []string
}

// registerScanFlags wires the shared scan flags onto a command.
// Precedence for every value: flag > $DIRSUM_* > --env-file > dirsum.yaml > default.
func registerScanFlags(cmd *cobra.Command, flags *scanFlagValues) {
	cmd.Flags().StringVarP(&flags.algorithm, "algorithm", "a", "",
		"Checksum algorithm: md5|sha1|sha256|sha512\n"+
			"Precedence: --algorithm > $DIRSUM_ALGORITHM > dirsum.yaml > sha256")
	cmd.Flags().StringVarP(&flags.match, "match", "m", "",
		"Glob selecting candidate files (* = any run, ? = one character)\n"+
			"Matched anywhere within the path, not anchored. Default: *")
	cmd.Flags().StringVarP(&flags.exclude, "exclude", "e", "",
		"Glob removing files from the match set, same semantics as --match\n"+
			"Example: -e \"*.log\"")
	cmd.Flags().BoolVarP(&flags.recursive, "recursive", "r", true,
		"Descend into subdirectories")
	cmd.Flags().StringSliceVar(&flags.envFiles, "env-file", nil,
		"Load flag defaults from .env files (can be specified multiple times)\n"+
			"Later files override earlier ones, CLI flags override all\n"+
			"Keys: DIRSUM_ALGORITHM, DIRSUM_MATCH, DIRSUM_EXCLUDE, DIRSUM_RECURSE")

	_ = cmd.RegisterFlagCompletionFunc("algorithm", completeAlgorithms)
}

// registerManifestFlag wires the manifest path flag used by create and verify.
func registerManifestFlag(cmd *cobra.Command, flags *scanFlagValues) {
	cmd.Flags().StringVarP(&flags.manifest, "manifest", "f", "",
		"Manifest file path\n"+
			"Default: <base_path>/"+dirsum.DefaultManifestName)
}

// scanOptions is the fully resolved input for a scan-driven command.
type scanOptions struct {
	req      dirsum.ScanRequest
	kind     dirsum.ChecksumKind
	manifest string
	verbose  bool
}

// resolveScanOptions merges flags, environment, env-files and dirsum.yaml
// into a validated scanOptions.
func resolveScanOptions(cmd *cobra.Command, basePath string, flags scanFlagValues) (scanOptions, error) {
	_ = godotenv.Load()

	projectCfg, err := loadProjectConfig(basePath)
	if err != nil {
		return scanOptions{}, err
	}

	fileDefaults, err := loadEnvFileDefaults(flags.envFiles)
	if err != nil {
		return scanOptions{}, err
	}

	verbose := getVerboseFlag(cmd)

	resolve := func(flagName, flagValue, envKey, cfgValue string) string {
		if cmd.Flags().Changed(flagName) {
			return flagValue
		}
		if v := os.Getenv(envKey); v != "" {
			return v
		}
		if v, ok := fileDefaults[envKey]; ok && v != "" {
			return v
		}
		return cfgValue
	}

	var cfgScan config.ScanConfig
	var cfgManifest string
	if projectCfg != nil {
		cfgScan = projectCfg.Scan
		cfgManifest = projectCfg.Manifest
		verbose = verbose || projectCfg.Verbose
	}

	algorithm := resolve("algorithm", flags.algorithm, "DIRSUM_ALGORITHM", cfgScan.Algorithm)
	kind := dirsum.DefaultChecksumKind
	if algorithm != "" {
		kind, err = dirsum.ParseChecksumKind(algorithm)
		if err != nil {
			return scanOptions{}, err
		}
	}

	recurse, err := resolveRecurse(cmd, flags.recursive, fileDefaults, cfgScan.Recurse)
	if err != nil {
		return scanOptions{}, err
	}

	manifestPath := flags.manifest
	if manifestPath == "" {
		if cfgManifest != "" {
			manifestPath = filepath.Join(basePath, cfgManifest)
		} else {
			manifestPath = filepath.Join(basePath, dirsum.DefaultManifestName)
		}
	}

	opts := scanOptions{
		req: dirsum.ScanRequest{
			BasePath:    basePath,
			ExcludeGlob: resolve("exclude", flags.exclude, "DIRSUM_EXCLUDE", cfgScan.Exclude),
			MatchGlob:   resolve("match", flags.match, "DIRSUM_MATCH", cfgScan.Match),
			Recurse:     recurse,
		},
		kind:     kind,
		manifest: manifestPath,
		verbose:  verbose,
	}

	if err := opts.req.Validate(); err != nil {
		return scanOptions{}, err
	}
	return opts, nil
}

// resolveRecurse applies the shared precedence chain to the boolean
// recursive flag, which cannot reuse the string resolver.
func resolveRecurse(cmd *cobra.Command, flagValue bool, fileDefaults map[string]string, cfgValue *bool) (bool, error) {
	if cmd.Flags().Changed("recursive") {
		return flagValue, nil
	}
	for _, v := range []string{os.Getenv("DIRSUM_RECURSE"), fileDefaults["DIRSUM_RECURSE"]} {
		if v == "" {
			continue
		}
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return false, fmt.Errorf("invalid DIRSUM_RECURSE value %q: %w", v, dirsum.ErrInvalidConfig)
		}
		return parsed, nil
	}
	if cfgValue != nil {
		return *cfgValue, nil
	}
	return true, nil
}

// loadProjectConfig loads dirsum.yaml from the scan root.
// Returns nil config if the file does not exist (not an error).
func loadProjectConfig(basePath string) (*config.ProjectConfig, error) {
	projectCfg, err := config.Load(basePath)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return projectCfg, nil
}

// loadEnvFileDefaults reads and merges --env-file files.
// Later files override earlier ones.
func loadEnvFileDefaults(paths []string) (map[string]string, error) {
	merged := make(map[string]string)
	fsProvider := filesystem.NewOSFileSystem()
	for _, p := range paths {
		content, err := fsProvider.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", p, err)
		}
		kv, err := params.ParseEnvFile(content)
		if err != nil {
			return nil, fmt.Errorf("invalid env file %s: %w", p, err)
		}
		for k, v := range kv {
			merged[k] = v
		}
	}
	return merged, nil
}

// newScanService builds the default production scan service.
func newScanService(logger dirsum.Logger) *services.ScanService {
	return services.NewScanService(walker.New(logger), checksum.New(), logger)
}

// newLogger builds the console logger the commands share.
func newLogger(verbose bool) dirsum.Logger {
	return logging.NewConsoleLogger(verbose)
}
