// Copyright © 2018 One Concern

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/oneconcern/txtrip/pkg/core"
	"github.com/oneconcern/txtrip/pkg/dlogger"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the text files a run would compile",
	Long:    `List the text files found in the target directory, in compilation order (oldest first). Nothing is modified.`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
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

		candidates, err := core.Plan(appFs, cfg, core.Logger(logger))
		if err != nil {
			wrapFatalln("list text files in "+cfg.Dir, err)
			return
		}
		printCandidates(cmd.OutOrStdout(), cfg, candidates)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
