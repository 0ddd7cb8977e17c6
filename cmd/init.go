package cmd

import (
	"fmt"
	"os"

	"github.com/debanjanofficial/netfolio/internal/config"
	"github.com/debanjanofficial/netfolio/internal/i18n"
	"github.com/spf13/cobra"
)

var flagInitLang string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.netfolio with a default config and .env template",
	Long: `Initialize netfolio's home directory at ~/.netfolio/.

Existing files are never overwritten:
  netfolio.yaml   content_path and default_language
  .env            NETFOLIO_LANG / NETFOLIO_CONTENT overrides`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVar(&flagInitLang, "default-language", "", "default_language written to a new config (en, de)")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	// ── 1. Resolve ~/.netfolio directory ──────────────────────────────────────
	dir, err := config.NetfolioDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	// ── 2. Create ~/.netfolio/ if it doesn't exist ────────────────────────────
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("netfolio directory ready: %s", dir))

	// ── 3. Write netfolio.yaml if missing ─────────────────────────────────────
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		cfg := config.DefaultConfig()
		if flagInitLang != "" {
			lang, err := i18n.Parse(flagInitLang)
			if err != nil {
				return fmt.Errorf("--default-language: %w", err)
			}
			cfg.DefaultLanguage = string(lang)
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("Config written: %s", cfgPath))
	} else {
		printSkip("", fmt.Sprintf("Config already exists: %s", cfgPath))
	}

	// ── 4. Write .env template if missing ─────────────────────────────────────
	envPath, err := config.DotEnvPath()
	if err != nil {
		return err
	}
	_, statErr := os.Stat(envPath)
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}
	if os.IsNotExist(statErr) {
		printOK("", fmt.Sprintf(".env template written: %s", envPath))
	} else {
		printSkip("", fmt.Sprintf(".env already exists: %s", envPath))
	}

	fmt.Println("\n✓  netfolio init complete. Run 'netfolio doctor' to verify your setup.")
	return nil
}
