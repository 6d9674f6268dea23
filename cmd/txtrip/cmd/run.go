// Copyright © 2018 One Concern

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	units "github.com/docker/go-units"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/oneconcern/txtrip/pkg/core"
	"github.com/oneconcern/txtrip/pkg/dlogger"
)

// runCmd compiles the text files of the target directory, then archives them
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compile the text files, then move them to the backup folder",
	Long: `Compile all text files found directly in the target directory into a single file, oldest first,
then move the compiled files into the backup folder.

A file which cannot be read is replaced in the compilation by an error notice.
A file which cannot be moved is reported and left in place.
Neither stops the run.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runPipeline(cmd)
	},
}

func init() {
	addDryRunFlag(runCmd)
	addFailOnErrorFlag(runCmd)

	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command) {
	cfg, err := config.coreConfig()
	if err != nil {
		wrapFatalln("invalid configuration", err)
		return
	}
	logger, err := dlogger.GetLogger(config.LogLevel)
	if err != nil {
		wrapFatalln("failed to set log level", err)
		return
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := cancelOnInterrupt(cancel)
	defer stop()

	out := cmd.OutOrStdout()
	report, err := core.Run(ctx, appFs, cfg,
		core.Logger(logger),
		core.Output(out),
		core.DryRun(txtripFlags.run.dryRun),
	)
	if err != nil {
		wrapFatalln("compile text files in "+cfg.Dir, err)
		return
	}

	if report.DryRun {
		printCandidates(out, cfg, report.Candidates)
		return
	}

	if failures := report.Err(); failures != nil && txtripFlags.run.failOnError {
		wrapFatalln(fmt.Sprintf("%d file(s) could not be processed", len(multierr.Errors(failures))), failures)
		return
	}
}

// cancelOnInterrupt cancels the run on SIGINT. The current stage completes before the run stops.
func cancelOnInterrupt(cancel context.CancelFunc) func() {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)
	done := make(chan struct{})

	go func() {
		select {
		case <-signalChan:
			infoLogger.Println("Received SIGINT, stopping after the current step...")
			cancel()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(signalChan)
		close(done)
	}
}

func printCandidates(w io.Writer, cfg core.Config, candidates []core.Candidate) {
	if len(candidates) == 0 {
		_, _ = fmt.Fprintf(w, "No %q file in %s\n", cfg.Suffix, cfg.Dir)
		return
	}

	table := uitable.New()
	table.MaxColWidth = 80
	table.AddRow("NAME", "LAST UPDATE", "SIZE")
	for _, c := range candidates {
		table.AddRow(c.Name, c.ModTime.Format(cfg.TimeLayout), units.HumanSize(float64(c.Size)))
	}
	_, _ = fmt.Fprintln(w, table)
}
