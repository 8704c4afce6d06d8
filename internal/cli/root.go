// Package cli implements the relnext command tree.
package cli

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/relnext/relnext/internal/config"
	"github.com/relnext/relnext/internal/errors"
)

var (
	configFlag     string
	changeFileFlag string
	plainFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "relnext",
	Short: "Compute the next semantic version from a Changes file",
	Long: `relnext reads the pending section of a Changes file, classifies the
recorded change categories into major, minor and revision tiers, and
computes the next version accordingly. It can also normalize the file,
validate it before a release, and rewrite it with a fresh category
skeleton once the release is out.

The previous version comes from pluggable providers (git tags, the change
file itself, or a metadata file), tried in order. Setting the V
environment variable bypasses computation and uses its value verbatim.`,
	Example: `  relnext next                # print the next version
  relnext munge               # strip empty pending groups in place
  relnext check --watch       # re-validate on every save
  relnext release --dry-run   # preview the post-release Changes file`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		// The command already printed its diagnostics.
		return exitErr.Code
	}

	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
		return ExitFailure
	}
	errors.PrintSimpleError(err, errors.Configuration)
	return ExitFailure
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Project config path (default .relnext.yml)")
	rootCmd.PersistentFlags().StringVar(&changeFileFlag, "change-file", "", "Changelog path (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&plainFlag, "plain", false, "Plain output (no colors)")
}

// loadConfig loads the layered configuration and applies flag overrides.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.LoadWithOptions(config.LoadOptions{
		ProjectConfigPath: configFlag,
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.Configuration)
	}
	if changeFileFlag != "" {
		cfg.ChangeFile = changeFileFlag
	}
	return cfg, nil
}
