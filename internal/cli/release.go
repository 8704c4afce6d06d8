package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relnext/relnext/internal/output"
)

var (
	releaseDryRunFlag   bool
	releasePreviousFlag string
)

var releaseCmd = &cobra.Command{
	Use:   "release",
	Short: "Run the full release lifecycle against the change file",
	Long: `Run the release lifecycle in one shot: normalize the pending section,
verify it records at least one change, compute the next version, stamp
the pending header with the version and today's date, and rewrite the
file with a fresh empty category skeleton on top.

Any failure aborts the run. Edits already applied are not rolled back;
inspect the file and your working tree before retrying.

Examples:
  relnext release
  relnext release --dry-run
  V=6.6.6 relnext release`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRelease(cmd)
	},
}

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().BoolVar(&releaseDryRunFlag, "dry-run", false, "Print the resulting file instead of writing it")
	releaseCmd.Flags().StringVar(&releasePreviousFlag, "previous", "", "Pin the previous version instead of querying providers")
}

func runRelease(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctrl, err := buildController(cfg, releasePreviousFlag)
	if err != nil {
		return err
	}

	if releaseDryRunFlag {
		rendered, version, err := ctrl.Preview()
		if err != nil {
			return err
		}
		if !plainFlag {
			output.Rule(cmd.OutOrStdout(), "relnext "+version)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	version, err := ctrl.Run()
	if err != nil {
		return err
	}

	if plainFlag {
		fmt.Fprintln(cmd.OutOrStdout(), version)
		return nil
	}
	output.PrintVersion(cmd.OutOrStdout(), version, "released, "+cfg.ChangeFile+" rewritten")
	return nil
}
