package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zjrosen/knowncmd/internal/cachemanager"
	"github.com/zjrosen/knowncmd/internal/declfile"
	"github.com/zjrosen/knowncmd/internal/log"
	"github.com/zjrosen/knowncmd/internal/presentation"
	"github.com/zjrosen/knowncmd/internal/signature"
	"github.com/zjrosen/knowncmd/internal/watcher"
)

// errCheckFailed makes the process exit non-zero after the report is written.
var errCheckFailed = errors.New("signature table has errors")

var (
	checkStrict bool
	checkWatch  bool
)

var checkCmd = &cobra.Command{
	Use:   "check [dir...]",
	Short: "Merge every declaration source and report conflicts",
	Long: `Build the signature table from the built-in declarations, the user
declaration directory, the configured directories and any directories given
as arguments, then report:

  - declarations per source
  - opaque declarations replaced by a more precise one
  - conflicting declarations, with a diff of the two signatures
  - declaration files that could not be parsed

The command exits non-zero when the table has errors.

With --strict, an opaque and a precise declaration of the same command are
reported as a conflict instead of a refinement. The strict-merge feature flag
has the same effect.

With --watch, the check runs again whenever a declaration file changes until
interrupted.

Examples:
  knowncmd check
  knowncmd check ./declarations --strict
  knowncmd check ./declarations --watch`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Report refined opaque declarations as conflicts")
	checkCmd.Flags().BoolVarP(&checkWatch, "watch", "w", false, "Re-run when declaration files change")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	req := tableRequest{
		extraDirs:     args,
		strict:        checkStrict,
		reportUserDir: true,
	}
	formatter := presentation.NewFormatter(cmd.OutOrStdout(), jsonOutput)

	if !checkWatch {
		return checkOnce(formatter, req)
	}

	// Unchanged files are served from the parse cache between runs.
	parseCache := cachemanager.NewInMemoryCacheManager[string, []*signature.Signature](
		"declaration-files", declfile.DefaultParseCacheTTL, 2*declfile.DefaultParseCacheTTL)
	req.loadOpts = []declfile.LoadOption{
		declfile.WithParser(declfile.NewCachedParser(parseCache, declfile.DefaultParseCacheTTL)),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watchCheck(ctx, cmd.OutOrStdout(), formatter, req)
}

func checkOnce(formatter *presentation.Formatter, req tableRequest) error {
	t, err := loadTable(req)
	report := presentation.NewCheckReport(t, err)
	if err := formatter.FormatReport(report); err != nil {
		return err
	}
	if !report.OK {
		return errCheckFailed
	}
	return nil
}

// watchCheck runs the check, then again after every declaration change,
// until ctx is done.
func watchCheck(ctx context.Context, out io.Writer, formatter *presentation.Formatter, req tableRequest) error {
	w, err := watcher.New(watcher.DefaultConfig(req.watchDirs()...))
	if err != nil {
		return err
	}
	defer func() {
		if err := w.Stop(); err != nil {
			log.Warn(log.CatWatch, "Failed to stop watcher", "error", err)
		}
	}()
	changes, err := w.Start()
	if err != nil {
		return err
	}

	run := func() error {
		if err := checkOnce(formatter, req); err != nil && !errors.Is(err, errCheckFailed) {
			return err
		}
		return nil
	}

	if err := run(); err != nil {
		return err
	}
	if !jsonOutput {
		_, _ = fmt.Fprintln(out, "\nWatching for declaration changes. Press Ctrl+C to stop")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			log.Info(log.CatWatch, "Declarations changed, re-checking")
			if err := run(); err != nil {
				return err
			}
		}
	}
}
