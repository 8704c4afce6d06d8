package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/relnext/relnext/internal/output"
)

var (
	nextPreviousFlag string
	nextNumifyFlag   bool
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Compute and print the next version",
	Long: `Compute the next version from the pending section of the change file.

The previous version is obtained from the configured providers (git tags,
the change file, or a metadata file), tried in order. The bump tier is
decided by the non-empty change categories: any major-tier category wins,
then minor-tier or ungrouped changes, then revision.

Setting the V environment variable bypasses computation entirely.

Examples:
  relnext next
  relnext next --previous 1.2.3
  relnext next --numify`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runNext(cmd)
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)

	nextCmd.Flags().StringVar(&nextPreviousFlag, "previous", "", "Pin the previous version instead of querying providers")
	nextCmd.Flags().BoolVar(&nextNumifyFlag, "numify", false, "Print the version in numeric form (1.002003)")
}

func runNext(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if nextNumifyFlag {
		cfg.NumifyVersion = true
	}

	ctrl, err := buildController(cfg, nextPreviousFlag)
	if err != nil {
		return err
	}

	if err := ctrl.Load(); err != nil {
		return err
	}
	version, err := ctrl.ProvideVersion()
	if err != nil {
		return err
	}

	if plainFlag {
		fmt.Fprintln(cmd.OutOrStdout(), version)
		return nil
	}
	output.PrintVersion(cmd.OutOrStdout(), version, "")
	return nil
}
