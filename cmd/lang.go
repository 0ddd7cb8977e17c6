package cmd

import (
	"fmt"

	"github.com/debanjanofficial/netfolio/internal/config"
	"github.com/debanjanofficial/netfolio/internal/i18n"
	"github.com/spf13/cobra"
)

var langCmd = &cobra.Command{
	Use:   "lang [code]",
	Short: "Show or store the display language (en, de)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLang,
}

func init() {
	rootCmd.AddCommand(langCmd)
}

func runLang(_ *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		printInfo("", fmt.Sprintf("language: %s (from %s)", a.lang, a.langSrc))
		return nil
	}

	lang, err := i18n.Parse(args[0])
	if err != nil {
		return err
	}
	if err := a.prefs.SetLanguage(lang); err != nil {
		return err
	}
	printOK("", fmt.Sprintf("language set to %s", lang))
	if a.langSrc == "flag" || a.langSrc == config.EnvLanguage {
		printWarn("", fmt.Sprintf("%s still overrides the stored language", a.langSrc))
	}
	return nil
}
