package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dirsum/dirsum/internal/config"
	"github.com/dirsum/dirsum/pkg/dirsum"
)

// newResolveCmd builds a throwaway command carrying the shared scan flags,
// parsed against args, so resolveScanOptions sees realistic flag state.
func newResolveCmd(t *testing.T, flags *scanFlagValues, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "scan", RunE: func(*cobra.Command, []string) error { return nil }}
	cmd.Flags().BoolP("verbose", "v", false, "")
	registerScanFlags(cmd, flags)
	registerManifestFlag(cmd, flags)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func clearScanEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"DIRSUM_ALGORITHM", "DIRSUM_MATCH", "DIRSUM_EXCLUDE", "DIRSUM_RECURSE"} {
		t.Setenv(key, "")
	}
}

func TestResolveScanOptions_Defaults(t *testing.T) {
	clearScanEnv(t)
	var flags scanFlagValues
	cmd := newResolveCmd(t, &flags)
	base := t.TempDir()

	opts, err := resolveScanOptions(cmd, base, flags)
	require.NoError(t, err)

	assert.Equal(t, dirsum.DefaultChecksumKind, opts.kind)
	assert.Empty(t, opts.req.MatchGlob)
	assert.Empty(t, opts.req.ExcludeGlob)
	assert.True(t, opts.req.Recurse)
	assert.Equal(t, filepath.Join(base, dirsum.DefaultManifestName), opts.manifest)
	assert.False(t, opts.verbose)
}

func TestResolveScanOptions_FlagBeatsEnv(t *testing.T) {
	clearScanEnv(t)
	t.Setenv("DIRSUM_ALGORITHM", "md5")

	var flags scanFlagValues
	cmd := newResolveCmd(t, &flags, "-a", "sha512")

	opts, err := resolveScanOptions(cmd, t.TempDir(), flags)
	require.NoError(t, err)
	assert.Equal(t, dirsum.ChecksumSHA512, opts.kind)
}

func TestResolveScanOptions_EnvBeatsEnvFile(t *testing.T) {
	clearScanEnv(t)
	t.Setenv("DIRSUM_MATCH", "*.csv")

	envFile := filepath.Join(t.TempDir(), "defaults.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DIRSUM_MATCH=*.json\n"), 0644))

	var flags scanFlagValues
	cmd := newResolveCmd(t, &flags, "--env-file", envFile)

	opts, err := resolveScanOptions(cmd, t.TempDir(), flags)
	require.NoError(t, err)
	assert.Equal(t, "*.csv", opts.req.MatchGlob)
}

func TestResolveScanOptions_EnvFileBeatsConfig(t *testing.T) {
	clearScanEnv(t)

	base := t.TempDir()
	cfg := "scan:\n  exclude: \"*.tmp\"\n  algorithm: md5\n"
	require.NoError(t, os.WriteFile(filepath.Join(base, config.ConfigFileName), []byte(cfg), 0644))

	envFile := filepath.Join(t.TempDir(), "defaults.env")
	require.NoError(t, os.WriteFile(envFile, []byte("DIRSUM_EXCLUDE=*.bak\n"), 0644))

	var flags scanFlagValues
	cmd := newResolveCmd(t, &flags, "--env-file", envFile)

	opts, err := resolveScanOptions(cmd, base, flags)
	require.NoError(t, err)
	assert.Equal(t, "*.bak", opts.req.ExcludeGlob)
	assert.Equal(t, dirsum.ChecksumMD5, opts.kind, "config still supplies unshadowed values")
}

func TestResolveScanOptions_ConfigRecurseAndManifest(t *testing.T) {
	clearScanEnv(t)

	base := t.TempDir()
	cfg := "scan:\n  recurse: false\nmanifest: checks/m.yaml\nverbose: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(base, config.ConfigFileName), []byte(cfg), 0644))

	var flags scanFlagValues
	cmd := newResolveCmd(t, &flags)

	opts, err := resolveScanOptions(cmd, base, flags)
	require.NoError(t, err)
	assert.False(t, opts.req.Recurse)
	assert.Equal(t, filepath.Join(base, "checks/m.yaml"), opts.manifest)
	assert.True(t, opts.verbose)
}

func TestResolveScanOptions_RecursiveFlagBeatsConfig(t *testing.T) {
	clearScanEnv(t)

	base := t.TempDir()
	cfg := "scan:\n  recurse: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(base, config.ConfigFileName), []byte(cfg), 0644))

	var flags scanFlagValues
	cmd := newResolveCmd(t, &flags, "--recursive=true")

	opts, err := resolveScanOptions(cmd, base, flags)
	require.NoError(t, err)
	assert.True(t, opts.req.Recurse)
}

func TestResolveScanOptions_InvalidAlgorithm(t *testing.T) {
	clearScanEnv(t)

	var flags scanFlagValues
	cmd := newResolveCmd(t, &flags, "-a", "crc32")

	_, err := resolveScanOptions(cmd, t.TempDir(), flags)
	assert.True(t, errors.Is(err, dirsum.ErrUnsupportedChecksumKind))
}

func TestResolveScanOptions_InvalidRecurseEnv(t *testing.T) {
	clearScanEnv(t)
	t.Setenv("DIRSUM_RECURSE", "maybe")

	var flags scanFlagValues
	cmd := newResolveCmd(t, &flags)

	_, err := resolveScanOptions(cmd, t.TempDir(), flags)
	assert.True(t, errors.Is(err, dirsum.ErrInvalidConfig))
}

func TestResolveScanOptions_ManifestFlag(t *testing.T) {
	clearScanEnv(t)

	var flags scanFlagValues
	cmd := newResolveCmd(t, &flags, "-f", "/tmp/custom.yaml")

	opts, err := resolveScanOptions(cmd, t.TempDir(), flags)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", opts.manifest)
}
