package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagOpenIndex string

var openCmd = &cobra.Command{
	Use:   "open <result-id>",
	Short: "Open a search result in its recruiter section",
	Long: `Open a result id printed by 'netfolio search' (e.g. skills-programming).
The recruiter profile and section are stored for the next session.`,
	Args: cobra.ExactArgs(1),
	RunE: runOpen,
}

func init() {
	openCmd.Flags().StringVar(&flagOpenIndex, "index", "", "Resolve ids from a JSONL index instead of the content tables")
	rootCmd.AddCommand(openCmd)
}

func runOpen(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	if err := a.loadMatcher(flagOpenIndex); err != nil {
		return err
	}

	opened, err := a.matcher.Select(args[0], a.navigator())
	if err != nil {
		return err
	}
	if !opened {
		printMiss("", fmt.Sprintf("no result with id %q (run 'netfolio search <query>' to list ids)", args[0]))
	}
	return nil
}
