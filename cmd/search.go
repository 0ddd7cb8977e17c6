package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/debanjanofficial/netfolio/internal/search"
	"github.com/spf13/cobra"
)

var flagSearchIndex string

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search skills, experience, education and projects",
	Long: `Match the query against every indexed keyword (case-insensitive
substring match) and print at most 8 results in catalogue order.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&flagSearchIndex, "index", "", "Query a JSONL index written by 'netfolio index --out' instead of the content tables")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return cmd.Help()
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	if err := a.loadMatcher(flagSearchIndex); err != nil {
		return err
	}

	results := a.matcher.Search(query, a.lang)
	if len(results) == 0 {
		printNotFound(a, query)
		return nil
	}
	printSearchResults(a, query, results)
	return nil
}

func printSearchResults(a *app, query string, results []search.Result) {
	fmt.Printf("\nnetfolio search %q\n\n", query)
	fmt.Printf("%s (%d):\n", a.t("search.results"), len(results))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, r := range results {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", r.ID, r.Label, colorMuted.Sprint(r.Category))
	}
	_ = w.Flush()
	fmt.Println()
	printInfo("", "Run 'netfolio open <id>' to jump to a result.")
}

// printNotFound prints the no-results page for query.
func printNotFound(a *app, query string) {
	fmt.Println()
	fmt.Println(colorWarn.Sprint(a.t("search.noResultsTitle")))
	fmt.Printf("%s %q\n\n", a.t("search.noResultsDescription"), query)
	fmt.Printf("← %s: netfolio\n", a.t("search.backHome"))
}
