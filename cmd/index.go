package cmd

import (
	"fmt"
	"strings"

	"github.com/debanjanofficial/netfolio/internal/search"
	"github.com/spf13/cobra"
)

var (
	flagIndexOut      string
	flagIndexKeywords bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Print the search index or export it as JSONL",
	Long: `Build the search index from the content tables and print one line per
entry. With --out, write the entries as JSONL so that 'netfolio search
--index FILE' can query them without the content file.`,
	Args: cobra.NoArgs,
	RunE: runIndex,
}

func init() {
	indexCmd.Flags().StringVar(&flagIndexOut, "out", "", "Write the index as JSONL to this file")
	indexCmd.Flags().BoolVar(&flagIndexKeywords, "keywords", false, "Also print each entry's keywords")
	rootCmd.AddCommand(indexCmd)
}

func runIndex(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	if err := a.loadContent(); err != nil {
		return err
	}
	entries := a.matcher.Entries()

	if flagIndexOut != "" {
		if err := search.WriteFile(flagIndexOut, entries); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("%d entries written to %s", len(entries), flagIndexOut))
		return nil
	}

	printSection("Index")
	var cur search.Category
	for _, e := range entries {
		if e.Category != cur {
			cur = e.Category
			printBullet(a.t(cur.TranslationKey()) + ":")
		}
		fmt.Printf("  %-28s %s  %s\n", e.ID, e.LabelFor(a.lang), colorMuted.Sprintf("(%d keywords)", len(e.Keywords)))
		if flagIndexKeywords {
			fmt.Printf("      %s\n", strings.Join(e.Keywords, ", "))
		}
	}
	fmt.Printf("\n  %d entries from %s\n", len(entries), a.source)
	return nil
}
