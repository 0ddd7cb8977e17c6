package cmd

import (
	"fmt"
	"os"

	"github.com/debanjanofficial/netfolio/internal/search"
	"github.com/debanjanofficial/netfolio/internal/session"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show stored preferences and the content index",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	printSection("Preferences")
	printInfo("", fmt.Sprintf("language:  %s (from %s)", a.lang, a.langSrc))

	prof, err := a.prefs.Profile()
	if err != nil {
		return err
	}
	if prof == session.ProfileNone {
		printMiss("", "profile:   none")
	} else {
		printInfo("", fmt.Sprintf("profile:   %s", a.t("profile."+string(prof))))
	}
	if prof == session.ProfileRecruiter {
		sec, err := a.prefs.RecruiterSection()
		if err != nil {
			return err
		}
		printInfo("", fmt.Sprintf("section:   %s", a.t("recruiter.section."+string(sec))))
	}

	statePath := a.store.Path()
	if _, err := os.Stat(statePath); os.IsNotExist(err) {
		printSkip("", fmt.Sprintf("state:     %s (not written yet)", statePath))
	} else {
		printInfo("", fmt.Sprintf("state:     %s", statePath))
	}

	printSection("Content")
	if err := a.loadContent(); err != nil {
		printErr("", err.Error())
		return fmt.Errorf("content could not be loaded")
	}
	printInfo("", fmt.Sprintf("source:    %s", a.source))

	counts := countByCategory(a.matcher.Entries())
	for _, c := range search.Categories {
		printOK(string(c), fmt.Sprintf("%s: %d", a.t(c.TranslationKey()), counts[c]))
	}
	fmt.Printf("\n  %d entries indexed\n", a.matcher.Len())
	return nil
}

// countByCategory tallies entries per category.
func countByCategory(entries []search.Entry) map[search.Category]int {
	counts := make(map[search.Category]int, len(search.Categories))
	for _, e := range entries {
		counts[e.Category]++
	}
	return counts
}
