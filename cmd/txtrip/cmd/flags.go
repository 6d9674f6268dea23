// Copyright © 2018 One Concern

package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oneconcern/txtrip/pkg/dlogger"
)

type flagsT struct {
	root struct {
		dir      string
		output   string
		backup   string
		suffix   string
		logLevel string
	}
	run struct {
		dryRun      bool
		failOnError bool
	}
	config struct {
		file  string
		force bool
	}
}

var txtripFlags = flagsT{}

// keys shared by flags, environment variables and the config file
const (
	dirKey      = "dir"
	outputKey   = "output"
	backupKey   = "backup"
	suffixKey   = "suffix"
	logLevelKey = "loglevel"
)

func addDirFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&txtripFlags.root.dir, dirKey, "",
		"The directory holding the text files. Defaults to the user's desktop")
	return dirKey
}

func addOutputFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&txtripFlags.root.output, outputKey, "",
		"The name of the compilation file, created in the target directory")
	return outputKey
}

func addBackupFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&txtripFlags.root.backup, backupKey, "",
		"The name of the folder receiving the compiled files, created in the target directory")
	return backupKey
}

func addSuffixFlag(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&txtripFlags.root.suffix, suffixKey, "",
		"The suffix of the files to compile")
	return suffixKey
}

func addLogLevel(cmd *cobra.Command) string {
	cmd.PersistentFlags().StringVar(&txtripFlags.root.logLevel, logLevelKey, "",
		"The logging level. Levels by increasing order of verbosity: "+strings.Join(dlogger.Levels(), ", "))
	return logLevelKey
}

func addDryRunFlag(cmd *cobra.Command) string {
	dryRun := "dry-run"
	cmd.Flags().BoolVar(&txtripFlags.run.dryRun, dryRun, false,
		"Only show the files which would be compiled, in order. Nothing is written nor moved")
	return dryRun
}

func addFailOnErrorFlag(cmd *cobra.Command) string {
	failOnError := "fail-on-error"
	cmd.Flags().BoolVar(&txtripFlags.run.failOnError, failOnError, false,
		"Exit with a non-zero status when some file could not be compiled or moved")
	return failOnError
}

func addConfigFileFlag(cmd *cobra.Command) string {
	file := "file"
	cmd.Flags().StringVar(&txtripFlags.config.file, file, "",
		"The config file to write. Defaults to $HOME/.txtrip/txtrip.yaml")
	return file
}

func addForceFlag(cmd *cobra.Command) string {
	force := "force"
	cmd.Flags().BoolVar(&txtripFlags.config.force, force, false, "Overwrite an existing config file")
	return force
}
