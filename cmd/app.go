package cmd

import (
	"fmt"

	"github.com/debanjanofficial/netfolio/internal/config"
	"github.com/debanjanofficial/netfolio/internal/content"
	"github.com/debanjanofficial/netfolio/internal/i18n"
	"github.com/debanjanofficial/netfolio/internal/search"
	"github.com/debanjanofficial/netfolio/internal/session"
	"github.com/sirupsen/logrus"
)

// builtinSource names the content tables compiled into the binary.
const builtinSource = "(built-in)"

// app bundles what a command needs: config, translations, stored
// preferences and, once loaded, the content tables and matcher.
type app struct {
	cfg     *config.Config
	catalog *i18n.Catalog
	store   *session.Store
	prefs   *session.Prefs
	lang    i18n.Language
	langSrc string

	source  string
	tables  *content.Tables
	matcher *search.Matcher
}

// openApp loads config, translations and preferences, and resolves the
// display language.
func openApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w\nRun 'netfolio init' to recreate it.", err)
	}
	catalog, err := i18n.Builtin()
	if err != nil {
		return nil, err
	}
	statePath, err := config.StatePath()
	if err != nil {
		return nil, err
	}
	store := session.Open(statePath, logger)
	prefs := session.NewPrefs(store)

	lang, src, err := resolveLanguage(flagLang, cfg, prefs)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{"lang": lang, "source": src}).Debug("display language resolved")

	return &app{
		cfg:     cfg,
		catalog: catalog,
		store:   store,
		prefs:   prefs,
		lang:    lang,
		langSrc: src,
	}, nil
}

// resolveLanguage picks the display language. Precedence: the --lang flag,
// NETFOLIO_LANG, the stored preference, default_language, then English.
// Only an explicit flag value is an error when unsupported; other sources
// are skipped with a warning.
func resolveLanguage(flag string, cfg *config.Config, prefs *session.Prefs) (i18n.Language, string, error) {
	if flag != "" {
		lang, err := i18n.Parse(flag)
		if err != nil {
			return "", "", fmt.Errorf("--lang: %w", err)
		}
		return lang, "flag", nil
	}

	if v, err := config.GetConfigValue(config.EnvLanguage); err != nil {
		logger.WithError(err).Warn("cannot read environment overrides")
	} else if v != "" {
		if lang, err := i18n.Parse(v); err == nil {
			return lang, config.EnvLanguage, nil
		}
		logger.WithField("value", v).Warnf("ignoring unsupported %s", config.EnvLanguage)
	}

	if lang, ok, err := prefs.Language(); err != nil {
		logger.WithError(err).Warn("cannot read stored language")
	} else if ok {
		return lang, "stored", nil
	}

	if cfg != nil && cfg.DefaultLanguage != "" {
		if lang, err := i18n.Parse(cfg.DefaultLanguage); err == nil {
			return lang, "config", nil
		}
		logger.WithField("value", cfg.DefaultLanguage).Warn("ignoring unsupported default_language")
	}
	return i18n.Default, "default", nil
}

// contentPath returns the content file override, or "" for the built-in
// tables. NETFOLIO_CONTENT wins over content_path.
func contentPath(cfg *config.Config) (string, error) {
	v, err := config.GetConfigValue(config.EnvContent)
	if err != nil {
		return "", err
	}
	if v != "" {
		return config.ExpandPath(v)
	}
	return cfg.ContentPath, nil
}

// loadTables loads the configured content without building a matcher.
func loadTables(cfg *config.Config) (*content.Tables, string, error) {
	path, err := contentPath(cfg)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		t, err := content.Builtin()
		return t, builtinSource, err
	}
	t, err := content.Load(path)
	return t, path, err
}

// loadContent decodes the content tables and builds the matcher.
func (a *app) loadContent() error {
	tables, src, err := loadTables(a.cfg)
	if err != nil {
		return fmt.Errorf("cannot load content: %w", err)
	}
	a.tables, a.source = tables, src

	entries := search.Build(a.tables, a.catalog)
	a.matcher = search.NewMatcher(entries, a.catalog)
	logger.WithFields(logrus.Fields{"source": a.source, "entries": len(entries)}).Debug("index built")
	return nil
}

// loadMatcher builds the matcher from indexPath when set, otherwise from
// the content tables.
func (a *app) loadMatcher(indexPath string) error {
	if indexPath == "" {
		return a.loadContent()
	}
	entries, err := search.LoadFile(indexPath)
	if err != nil {
		return err
	}
	a.source = indexPath
	a.matcher = search.NewMatcher(entries, a.catalog)
	logger.WithFields(logrus.Fields{"index": indexPath, "entries": len(entries)}).Debug("index loaded")
	return nil
}

// navigator returns the navigation target used by open and browse.
func (a *app) navigator() *sessionNavigator {
	return &sessionNavigator{prefs: a.prefs, catalog: a.catalog, lang: a.lang, tables: a.tables}
}

func (a *app) t(key string) string {
	return a.catalog.Lookup(a.lang, key)
}
