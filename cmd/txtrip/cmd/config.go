// Copyright © 2018 One Concern

package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/oneconcern/txtrip/pkg/core"
)

// CLIConfig describes the CLI configuration.
type CLIConfig struct {
	// bug in viper? Need to keep names of fields the same as the serialized names..
	Dir      string `json:"dir" yaml:"dir"`           // Directory holding the text files
	Output   string `json:"output" yaml:"output"`     // Name of the compilation file
	Backup   string `json:"backup" yaml:"backup"`     // Name of the backup folder
	Suffix   string `json:"suffix" yaml:"suffix"`     // Suffix of the files to compile
	LogLevel string `json:"loglevel" yaml:"loglevel"` // Logging level
}

func newConfig() (*CLIConfig, error) {
	var config CLIConfig
	err := viper.Unmarshal(&config)
	if err != nil {
		return nil, err
	}
	return &config, nil
}

// coreConfig resolves the pipeline configuration
func (c *CLIConfig) coreConfig() (core.Config, error) {
	dir, err := sanitizePath(c.Dir)
	if err != nil {
		return core.Config{}, err
	}
	cfg := core.Config{
		Dir:        dir,
		OutputName: c.Output,
		BackupName: c.Backup,
		Suffix:     c.Suffix,
	}.WithDefaults()
	return cfg, cfg.Validate()
}

func sanitizePath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(filepath.Clean(path))
}

// configCmd represents the config related commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Commands to manage a config",
	Long: `Commands to manage txtrip CLI config.

Configuration for txtrip is the set of flags that do not change across runs, such as the target directory.
Values are taken from flags first, then from TXTRIP_* environment variables, then from the config file.
The config file is $TXTRIP_CONFIG if set, or txtrip.yaml in the current directory or in $HOME/.txtrip.`,
}

func init() {
	rootCmd.AddCommand(configCmd)
}
