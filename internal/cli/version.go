package cli

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/relnext/relnext/internal/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for relnext",
	Run: func(cmd *cobra.Command, args []string) {
		if plainFlag {
			fmt.Fprintf(cmd.OutOrStdout(), "relnext %s\n", version.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", version.BuildDate)
			fmt.Fprintf(cmd.OutOrStdout(), "go: %s\n", runtime.Version())
			return
		}

		cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
		dim := color.New(color.Faint).SprintFunc()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
			cyan("relnext"),
			version.Version,
			dim(fmt.Sprintf("(%s, built %s, %s)", truncateCommit(version.Commit), version.BuildDate, runtime.Version())),
		)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
