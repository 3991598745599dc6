package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// algorithmNames contains the supported checksum algorithms for shell completion.
var algorithmNames = []string{"md5", "sha1", "sha256", "sha512"}

// completeAlgorithms provides shell completion for --algorithm flag values.
func completeAlgorithms(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, name := range algorithmNames {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
