package cmd

import (
	"fmt"
	"os"

	"github.com/debanjanofficial/netfolio/internal/search"
	"github.com/debanjanofficial/netfolio/internal/session"
	"github.com/spf13/cobra"
)

var flagProfileClear bool

var profileCmd = &cobra.Command{
	Use:   "profile [recruiter|stalker]",
	Short: "Show or choose who's watching",
	Long: `Without arguments, print the stored profile. With a name, store it.
Choosing any profile other than recruiter forgets the recruiter section.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProfile,
}

var sectionCmd = &cobra.Command{
	Use:   "section [dashboard|skills|experience|education|projects]",
	Short: "Show a section's showcase, or choose the section to show",
	Long: `Without arguments, show the stored recruiter section with the last
opened item marked. With a name, show that section and store it. The
section is kept only while the recruiter profile is active. The dashboard
lists one card per section.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSection,
}

func init() {
	profileCmd.Flags().BoolVar(&flagProfileClear, "clear", false, "Forget the stored profile and return to the profile picker")
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(sectionCmd)
}

func runProfile(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}

	switch {
	case flagProfileClear, len(args) == 1 && args[0] == "":
		if err := a.prefs.SetProfile(session.ProfileNone); err != nil {
			return err
		}
		printOK("", "profile cleared")
		return nil

	case len(args) == 1:
		prof, err := session.ParseProfile(args[0])
		if err != nil {
			return err
		}
		if err := a.prefs.SetProfile(prof); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("profile set to %s", a.t("profile."+string(prof))))
		return nil
	}

	prof, err := a.prefs.Profile()
	if err != nil {
		return err
	}
	if prof == session.ProfileNone {
		printMiss("", a.t("profile.prompt")+" (run 'netfolio profile recruiter' or 'netfolio profile stalker')")
		return nil
	}
	printInfo("", fmt.Sprintf("profile: %s", a.t("profile."+string(prof))))
	return nil
}

func runSection(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	if err := a.loadContent(); err != nil {
		return err
	}

	if len(args) == 0 {
		sec, err := a.prefs.RecruiterSection()
		if err != nil {
			return err
		}
		focus, err := a.prefs.Focus()
		if err != nil {
			return err
		}
		showSection(a, sec, focus)
		return nil
	}

	prof, err := a.prefs.Profile()
	if err != nil {
		return err
	}
	sec := session.ParseSection(args[0])
	if err := a.prefs.SetRecruiterSection(sec); err != nil {
		return err
	}
	if prof == session.ProfileRecruiter {
		printOK("", fmt.Sprintf("section set to %s", a.t("recruiter.section."+string(sec))))
	} else {
		printSkip("", "section not stored: the recruiter profile is not active")
	}
	showSection(a, sec, "")
	return nil
}

// showSection prints the dashboard cards or one section's showcase.
func showSection(a *app, sec session.Section, focus string) {
	cat, ok := search.ParseCategory(string(sec))
	if !ok {
		fmt.Println()
		printDashboard(os.Stdout, a.tables, a.catalog, a.lang)
		return
	}
	printShowcase(os.Stdout, a.tables, a.catalog, a.lang, cat, focus)
}
