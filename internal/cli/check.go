package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/relnext/relnext/internal/changes"
	"github.com/relnext/relnext/internal/config"
	"github.com/relnext/relnext/internal/errors"
	"github.com/relnext/relnext/internal/output"
)

var checkWatchFlag bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the change file",
	Long: `Validate that the change file parses, has a pending section, and that
the pending section records at least one change.

With --watch, the file is re-validated on every write until interrupted.
This keeps a terminal open while editing the changelog before a release.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkWatchFlag, "watch", false, "Re-validate on every write to the change file")
}

func runCheck(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !checkWatchFlag {
		if err := checkOnce(cfg); err != nil {
			return err
		}
		if !plainFlag {
			output.PrintSuccess(cmd.OutOrStdout(), cfg.ChangeFile+" is ready for release")
		}
		return nil
	}

	return watchChanges(cmd, cfg)
}

// checkOnce runs a single validation pass over the change file.
func checkOnce(cfg *config.Configuration) error {
	doc, err := changes.Load(cfg.ChangeFile, cfg.PendingToken)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.MissingChangeFile(cfg.ChangeFile)
		}
		return errors.Wrap(err, errors.Parse)
	}
	pending := doc.Pending()
	if pending == nil {
		return errors.NoPendingSection(cfg.PendingToken, cfg.ChangeFile)
	}
	if !pending.HasContent() {
		return errors.EmptyPendingRelease(cfg.ChangeFile)
	}
	return nil
}

// watchChanges re-validates the change file on every write event until the
// process is interrupted. Editors replace files on save, so the parent
// directory is watched and events filtered by name.
func watchChanges(cmd *cobra.Command, cfg *config.Configuration) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapWithMessage(err, errors.IO, "creating fsnotify watcher")
	}
	defer watcher.Close()

	dir := filepath.Dir(cfg.ChangeFile)
	if err := watcher.Add(dir); err != nil {
		return errors.WrapWithMessage(err, errors.IO, "watching "+dir)
	}

	target, err := filepath.Abs(cfg.ChangeFile)
	if err != nil {
		return errors.WrapWithMessage(err, errors.IO, "resolving change file path")
	}

	reportCheck(cmd, cfg)
	output.PrintWatch(cmd.OutOrStdout(), "watching "+cfg.ChangeFile+" (ctrl-c to stop)")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				name, _ := filepath.Abs(event.Name)
				if name == target && (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					reportCheck(cmd, cfg)
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				return errors.WrapWithMessage(watchErr, errors.IO, "watching change file")
			}
		}
	})
	return g.Wait()
}

// reportCheck prints the outcome of one validation pass without aborting
// the watch loop on failure.
func reportCheck(cmd *cobra.Command, cfg *config.Configuration) {
	if err := checkOnce(cfg); err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.FprintError(cmd.ErrOrStderr(), cliErr)
			return
		}
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return
	}
	output.PrintSuccess(cmd.OutOrStdout(), cfg.ChangeFile+" is ready for release")
}
