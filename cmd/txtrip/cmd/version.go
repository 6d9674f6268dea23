package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time, e.g.:
//
//	go build -ldflags "-X github.com/oneconcern/txtrip/cmd/txtrip/cmd.Version=v1.0.0 \
//	  -X github.com/oneconcern/txtrip/cmd/txtrip/cmd.GitCommit=$(git rev-parse HEAD)" ./cmd/txtrip
var (
	Version   string
	BuildDate string
	GitCommit string
)

// VersionInfo describes the build of the running binary.
type VersionInfo struct {
	Version   string `json:"version,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

// NewVersionInfo reports the values set at build time, "dev" standing for an unreleased build.
func NewVersionInfo() VersionInfo {
	ver := VersionInfo{
		Version:   "dev",
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
	}
	if Version != "" {
		ver.Version = Version
	}
	return ver
}

func (v VersionInfo) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "Version: %s\n", v.Version)
	if v.BuildDate != "" {
		fmt.Fprintf(&buf, "Build date: %s\n", v.BuildDate)
	}
	if v.GitCommit != "" {
		fmt.Fprintf(&buf, "Commit: %s\n", v.GitCommit)
	}
	fmt.Fprintf(&buf, "Go: %s\n", v.GoVersion)
	return buf.String()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the version of txtrip",
	Long:  "Prints the version of txtrip, the commit and date of its build when known, and the Go version it was built with.",
	Run: func(cmd *cobra.Command, args []string) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), NewVersionInfo().String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
