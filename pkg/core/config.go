package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/oneconcern/txtrip/pkg/core/status"
)

const (
	// DefaultOutputName is the name of the compilation output
	DefaultOutputName = "compilado.txt"

	// DefaultBackupName is the name of the folder receiving the compiled originals
	DefaultBackupName = "txt rip"

	// DefaultSuffix selects candidate files
	DefaultSuffix = ".txt"

	// DefaultTimeLayout renders modification times as DD/MM/YYYY HH:MM:SS
	DefaultTimeLayout = "02/01/2006 15:04:05"

	defaultSeparatorWidth = 20
)

// DefaultSeparator frames each header line of the compilation
var DefaultSeparator = strings.Repeat("#", defaultSeparatorWidth)

// Config describes where the pipeline works and how it names things.
//
// Dir is both the input source and the output destination.
type Config struct {
	Dir        string `mapstructure:"dir" json:"dir,omitempty" yaml:"dir,omitempty"`
	OutputName string `mapstructure:"output" json:"output,omitempty" yaml:"output,omitempty"`
	BackupName string `mapstructure:"backup" json:"backup,omitempty" yaml:"backup,omitempty"`
	Suffix     string `mapstructure:"suffix" json:"suffix,omitempty" yaml:"suffix,omitempty"`
	Separator  string `mapstructure:"separator" json:"separator,omitempty" yaml:"separator,omitempty"`
	TimeLayout string `mapstructure:"timeLayout" json:"timeLayout,omitempty" yaml:"timeLayout,omitempty"`
}

// DefaultDir is the user's desktop, or the current directory when the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, "Desktop")
}

// DefaultConfig returns a configuration working on dir with the default names.
// An empty dir selects DefaultDir().
func DefaultConfig(dir string) Config {
	if dir == "" {
		dir = DefaultDir()
	}
	return Config{
		Dir:        dir,
		OutputName: DefaultOutputName,
		BackupName: DefaultBackupName,
		Suffix:     DefaultSuffix,
		Separator:  DefaultSeparator,
		TimeLayout: DefaultTimeLayout,
	}
}

// WithDefaults fills the unset fields of c with defaults.
func (c Config) WithDefaults() Config {
	d := DefaultConfig(c.Dir)
	if c.OutputName != "" {
		d.OutputName = c.OutputName
	}
	if c.BackupName != "" {
		d.BackupName = c.BackupName
	}
	if c.Suffix != "" {
		d.Suffix = c.Suffix
	}
	if c.Separator != "" {
		d.Separator = c.Separator
	}
	if c.TimeLayout != "" {
		d.TimeLayout = c.TimeLayout
	}
	return d
}

// Validate checks that the configuration is usable by the pipeline.
func (c Config) Validate() error {
	switch {
	case c.Dir == "":
		return status.ErrInvalidConfig.Wrapf("the target directory is required")
	case c.OutputName == "":
		return status.ErrInvalidConfig.Wrapf("the output file name is required")
	case c.BackupName == "":
		return status.ErrInvalidConfig.Wrapf("the backup folder name is required")
	case c.Suffix == "":
		return status.ErrInvalidConfig.Wrapf("the file suffix is required")
	case c.OutputName == c.BackupName:
		return status.ErrInvalidConfig.Wrapf("output file and backup folder cannot share the name %q", c.OutputName)
	}
	for _, name := range []string{c.OutputName, c.BackupName} {
		if !isPlainName(name) {
			return status.ErrInvalidConfig.Wrapf("%q must be a plain name inside the target directory", name)
		}
	}
	return nil
}

func isPlainName(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// OutputPath is the location of the compilation output
func (c Config) OutputPath() string {
	return filepath.Join(c.Dir, c.OutputName)
}

// BackupPath is the location of the backup folder
func (c Config) BackupPath() string {
	return filepath.Join(c.Dir, c.BackupName)
}

// SourcePath locates a candidate in the target directory
func (c Config) SourcePath(name string) string {
	return filepath.Join(c.Dir, name)
}

// ArchivePath locates a candidate once moved to the backup folder
func (c Config) ArchivePath(name string) string {
	return filepath.Join(c.Dir, c.BackupName, name)
}
