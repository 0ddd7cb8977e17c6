package cmd

import (
	"errors"
	"fmt"

	"github.com/debanjanofficial/netfolio/internal/ui"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Search interactively, refreshing results on every keystroke",
	Long: `Open the interactive search. Type to filter, use ↑/↓ to move and
Enter to open the highlighted result. Esc quits.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	if err := a.loadContent(); err != nil {
		return err
	}

	_, err = ui.Browse(cmd.Context(), a.matcher, a.navigator(), ui.BrowseOptions{
		Lang:    a.lang,
		T:       a.catalog.T(a.lang),
		NoColor: color.NoColor,
	})
	if errors.Is(err, ui.ErrNotTTY) {
		return fmt.Errorf("%w\nUse 'netfolio search <query>' when piping output.", err)
	}
	return err
}
