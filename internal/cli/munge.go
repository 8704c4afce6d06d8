package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/relnext/relnext/internal/errors"
	"github.com/relnext/relnext/internal/output"
)

var mungeCheckFlag bool

var mungeCmd = &cobra.Command{
	Use:   "munge",
	Short: "Strip empty groups from the pending section",
	Long: `Normalize the change file in place: every category group in the pending
section that holds no items is removed. Released sections are untouched.

With --check, no rewrite happens; the command exits with code 2 when the
file would change.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMunge(cmd)
	},
}

func init() {
	rootCmd.AddCommand(mungeCmd)

	mungeCmd.Flags().BoolVar(&mungeCheckFlag, "check", false, "Report instead of rewrite; exit 2 when the file would change")
}

func runMunge(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctrl, err := buildController(cfg, "")
	if err != nil {
		return err
	}

	if err := ctrl.Load(); err != nil {
		return err
	}
	before := ctrl.Content()

	if err := ctrl.Munge(); err != nil {
		return err
	}

	if ctrl.Content() == before {
		if !plainFlag {
			output.PrintSuccess(cmd.OutOrStdout(), cfg.ChangeFile+" is already normalized")
		}
		return nil
	}

	if mungeCheckFlag {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s has empty pending groups\n", cfg.ChangeFile)
		return NewExitError(ExitDirty)
	}

	if err := os.WriteFile(cfg.ChangeFile, []byte(ctrl.Content()), 0o644); err != nil {
		return errors.WrapWithMessage(err, errors.IO, "rewriting change file")
	}
	if !plainFlag {
		output.PrintSuccess(cmd.OutOrStdout(), "normalized "+cfg.ChangeFile)
	}
	return nil
}
