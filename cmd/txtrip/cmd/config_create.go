package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var configCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a config",
	Long: `Create a config file holding the current settings (flags, environment and previous config file).
The config file will be placed in $HOME/.txtrip/txtrip.yaml unless --file is set.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		target := txtripFlags.config.file
		if target == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				wrapFatalln("could not get home directory for user", err)
				return
			}
			target = filepath.Join(home, ".txtrip", "txtrip.yaml")
		}

		exists, err := afero.Exists(appFs, target)
		if err != nil {
			wrapFatalln("check config file", err)
			return
		}
		if exists && !txtripFlags.config.force {
			wrapFatalln("config file "+target+" exists already, use --force to overwrite it", nil)
			return
		}

		cfg, err := config.coreConfig()
		if err != nil {
			wrapFatalln("invalid configuration", err)
			return
		}
		o, err := yaml.Marshal(CLIConfig{
			Dir:      cfg.Dir,
			Output:   cfg.OutputName,
			Backup:   cfg.BackupName,
			Suffix:   cfg.Suffix,
			LogLevel: config.LogLevel,
		})
		if err != nil {
			wrapFatalln("serialize config to yaml", err)
			return
		}

		if err = appFs.MkdirAll(filepath.Dir(target), 0700); err != nil {
			wrapFatalln("create config directory", err)
			return
		}
		if err = afero.WriteFile(appFs, target, o, 0600); err != nil {
			wrapFatalln("write config file", err)
			return
		}
		infoLogger.Println("Config written to", target)
	},
}

func init() {
	addConfigFileFlag(configCreateCmd)
	addForceFlag(configCreateCmd)

	configCmd.AddCommand(configCreateCmd)
}
