package cmd

import (
	"fmt"
	"os"

	"github.com/debanjanofficial/netfolio/internal/config"
	"github.com/debanjanofficial/netfolio/internal/content"
	"github.com/debanjanofficial/netfolio/internal/i18n"
	"github.com/debanjanofficial/netfolio/internal/search"
	"github.com/debanjanofficial/netfolio/internal/session"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check config, content and translations",
	Long: `Check that netfolio's configuration, content tables, translations and
state file are usable. Run this after editing a content file.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

// requiredKeys are the translation keys every language must define.
var requiredKeys = []string{
	"app.tagline",
	"profile.prompt",
	"profile.recruiter",
	"profile.stalker",
	"recruiter.section.dashboard",
	"search.placeholder",
	"search.noResultsTitle",
	"search.noResultsDescription",
	"search.backHome",
	"search.results",
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("netfolio doctor")
	fmt.Println()

	// ── Check 1: netfolio.yaml ────────────────────────────────────────────────
	fmt.Println("[ netfolio.yaml ]")
	cfgPath, pathErr := config.ConfigPath()
	cfg, loadErr := config.Load()
	switch {
	case pathErr != nil:
		failD("%v", pathErr)
	case loadErr != nil:
		failD("cannot parse netfolio.yaml: %v", loadErr)
	case fileMissing(cfgPath):
		printSkip("", "no config file, using defaults (run 'netfolio init' to create one)")
	default:
		printOK("", fmt.Sprintf("valid YAML: %s", cfgPath))
		if cfg.DefaultLanguage != "" {
			if _, err := i18n.Parse(cfg.DefaultLanguage); err != nil {
				printWarn("", fmt.Sprintf("default_language %q is not supported, English is used", cfg.DefaultLanguage))
			}
		}
	}
	fmt.Println()

	// ── Check 2: .env ─────────────────────────────────────────────────────────
	fmt.Println("[ .env ]")
	if env, err := config.LoadDotEnv(); err != nil {
		failD("%v", err)
	} else if v := env[config.EnvLanguage]; v != "" {
		if _, err := i18n.Parse(v); err != nil {
			printWarn("", fmt.Sprintf("%s=%q is not supported", config.EnvLanguage, v))
		} else {
			printOK("", fmt.Sprintf("%s=%s", config.EnvLanguage, v))
		}
	} else {
		printOK("", fmt.Sprintf("%d key(s) set", countSet(env)))
	}
	fmt.Println()

	// ── Check 3: translations ─────────────────────────────────────────────────
	fmt.Println("[ Translations ]")
	catalog, err := i18n.Builtin()
	if err != nil {
		failD("cannot load translations: %v", err)
	} else if missing := missingTranslations(catalog); len(missing) > 0 {
		for _, m := range missing {
			printWarn("", m)
		}
	} else {
		printOK("", fmt.Sprintf("all keys present in %d language(s)", len(i18n.Supported)))
	}
	fmt.Println()

	// ── Check 4: content tables ───────────────────────────────────────────────
	fmt.Println("[ Content ]")
	if loadErr != nil || catalog == nil {
		printWarn("", "skipped (config or translations not loaded)")
	} else {
		tables, src, err := loadTables(cfg)
		if err != nil {
			failD("%v", err)
		} else {
			issues := checkIndex(tables, search.Build(tables, catalog))
			for _, is := range issues {
				failD("%s", is)
			}
			if len(issues) == 0 {
				printOK("", fmt.Sprintf("%d items indexed from %s", tables.Count(), src))
			}
		}
	}
	fmt.Println()

	// ── Check 5: state file ───────────────────────────────────────────────────
	fmt.Println("[ State ]")
	if loadErr != nil {
		printWarn("", "skipped (netfolio.yaml not loaded)")
	} else if statePath, err := config.StatePath(); err != nil {
		failD("%v", err)
	} else if values, err := session.Open(statePath, logger).Snapshot(); err != nil {
		failD("cannot read %s: %v", statePath, err)
	} else {
		printOK("", fmt.Sprintf("%d stored preference(s) in %s", len(values), statePath))
	}
	fmt.Println()

	// ── Summary ───────────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed. netfolio is ready to use.")
	} else {
		fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
		return fmt.Errorf("doctor found issues")
	}
	return nil
}

// checkIndex reports content items that would be unreachable by search.
func checkIndex(t *content.Tables, entries []search.Entry) []string {
	var issues []string
	if len(entries) != t.Count() {
		issues = append(issues, fmt.Sprintf("%d items produced %d entries", t.Count(), len(entries)))
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			issues = append(issues, fmt.Sprintf("duplicate id %s", e.ID))
		}
		seen[e.ID] = true
		if len(e.Keywords) == 0 {
			issues = append(issues, fmt.Sprintf("%s has no keywords", e.ID))
		}
		if _, ok := e.Label[i18n.Default]; !ok {
			issues = append(issues, fmt.Sprintf("%s has no %s title", e.ID, i18n.Default))
		}
	}
	return issues
}

// missingTranslations lists required keys a language does not define.
func missingTranslations(c *i18n.Catalog) []string {
	keys := append([]string{}, requiredKeys...)
	for _, cat := range search.Categories {
		keys = append(keys, cat.TranslationKey())
	}
	var missing []string
	for _, lang := range i18n.Supported {
		for _, k := range keys {
			if !c.Has(lang, k) {
				missing = append(missing, fmt.Sprintf("[%s] missing %s", lang, k))
			}
		}
	}
	return missing
}

func fileMissing(path string) bool {
	_, err := os.Stat(path)
	return os.IsNotExist(err)
}

func countSet(env map[string]string) int {
	n := 0
	for _, v := range env {
		if v != "" {
			n++
		}
	}
	return n
}
