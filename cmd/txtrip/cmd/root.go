// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oneconcern/txtrip/pkg/core"
	"github.com/oneconcern/txtrip/pkg/dlogger"
)

const envPrefix = "TXTRIP"

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "txtrip",
	Short: "txtrip compiles scattered text files into a single dated file",
	Long: `txtrip compiles the text files found in a directory (your desktop by default) into a single file.

Files are compiled oldest first. Each one is introduced by a header with its name and last update time.
Once compiled, the original files are moved to a backup folder inside the same directory.

Run without a sub-command, txtrip does the same as "txtrip run".
`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runPipeline(cmd)
	},
}

var config *CLIConfig

// appFs is the filesystem txtrip works on, patched during test
var appFs = afero.NewOsFs()

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		osExit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)

	addDirFlag(rootCmd)
	addOutputFlag(rootCmd)
	addBackupFlag(rootCmd)
	addSuffixFlag(rootCmd)
	addLogLevel(rootCmd)
	addDryRunFlag(rootCmd)
	addFailOnErrorFlag(rootCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.Reset()
	viper.SetFs(appFs)
	viper.SetDefault(dirKey, core.DefaultDir())
	viper.SetDefault(outputKey, core.DefaultOutputName)
	viper.SetDefault(backupKey, core.DefaultBackupName)
	viper.SetDefault(suffixKey, core.DefaultSuffix)
	viper.SetDefault(logLevelKey, dlogger.LogLevelWarn)

	for _, key := range []string{dirKey, outputKey, backupKey, suffixKey, logLevelKey} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(key)); err != nil {
			wrapFatalln("bind flag "+key, err)
			return
		}
	}

	if cfgFile := os.Getenv(envPrefix + "_CONFIG"); cfgFile != "" {
		// Use config file from the environment.
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.txtrip")
		viper.SetConfigName("txtrip")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}

	var err error
	config, err = newConfig()
	if err != nil {
		wrapFatalln("read configuration", err)
	}
}
