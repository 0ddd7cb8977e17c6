package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/debanjanofficial/netfolio/internal/i18n"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/debanjanofficial/netfolio/cmd.version=...".
var (
	version   = "dev"
	commit    = ""
	buildDate = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show netfolio version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(_ *cobra.Command, _ []string) error {
	rev, at := vcsInfo()
	fmt.Printf("Version:    %s\n", version)
	fmt.Printf("Commit:     %s\n", emptyAsNA(firstNonEmpty(commit, rev)))
	fmt.Printf("Build Date: %s\n", emptyAsNA(firstNonEmpty(buildDate, at)))
	fmt.Printf("Languages:  %s\n", supportedLanguages())
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}

// vcsInfo reads the revision and commit time stamped by the go tool.
func vcsInfo() (revision, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
}

func supportedLanguages() string {
	codes := make([]string, 0, len(i18n.Supported))
	for _, l := range i18n.Supported {
		codes = append(codes, string(l))
	}
	return strings.Join(codes, ", ")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func emptyAsNA(s string) string {
	if s == "" {
		return "n/a"
	}
	return s
}
