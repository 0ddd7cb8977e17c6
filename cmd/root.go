package cmd

import (
	"fmt"
	"os"

	"github.com/debanjanofficial/netfolio/internal/session"
	"github.com/debanjanofficial/netfolio/internal/ui"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagLang    string
	flagDebug   bool
	flagNoColor bool
)

// logger is shared by every command. Diagnostics go to stderr so that
// stdout stays clean for results.
var logger = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "netfolio",
	Short: "Netfolio, a bilingual portfolio you can browse from the terminal",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `Netfolio presents a CV as a streaming-service catalogue in English and
German. Search skills, experience, education and projects, then open a
result to jump to its recruiter section.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		configureOutput()
	},
	RunE: runHome,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLang, "lang", "", "Display language for this run (en, de)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print debug logs to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
}

// configureOutput applies the persistent flags to the logger and colors.
func configureOutput() {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if flagDebug {
		logger.SetLevel(logrus.DebugLevel)
	}
	if flagNoColor || ui.DetectNoColor() {
		color.NoColor = true
	}
}

// runHome prints the dashboard when no sub-command is given: banner,
// section cards, and the section a recruiter was last on.
func runHome(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	if err := a.loadContent(); err != nil {
		return err
	}

	fmt.Println(colorTitle.Sprint("NETFOLIO"))
	fmt.Println(a.t("app.tagline"))
	fmt.Println()
	for _, p := range a.tables.BannerFor(a.lang) {
		fmt.Println(p)
		fmt.Println()
	}
	printDashboard(os.Stdout, a.tables, a.catalog, a.lang)
	fmt.Println()

	prof, err := a.prefs.Profile()
	if err != nil {
		return err
	}
	if prof == session.ProfileRecruiter {
		if sec, err := a.prefs.RecruiterSection(); err == nil && sec != session.SectionDashboard {
			printInfo("", fmt.Sprintf("continue with %s: netfolio section", a.t("recruiter.section."+string(sec))))
		}
	}
	printInfo("", "Run 'netfolio browse' or 'netfolio search <query>' to explore.")
	return nil
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
