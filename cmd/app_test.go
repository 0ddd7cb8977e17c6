package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/debanjanofficial/netfolio/internal/config"
	"github.com/debanjanofficial/netfolio/internal/content"
	"github.com/debanjanofficial/netfolio/internal/i18n"
	"github.com/debanjanofficial/netfolio/internal/search"
	"github.com/debanjanofficial/netfolio/internal/session"
)

// setupHome points HOME at a temp dir and clears the env overrides.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvLanguage, "")
	t.Setenv(config.EnvContent, "")
	return home
}

func testPrefs(t *testing.T, home string) *session.Prefs {
	t.Helper()
	return session.NewPrefs(session.Open(filepath.Join(home, ".netfolio", "state.yaml"), logger))
}

func TestResolveLanguage_Precedence(t *testing.T) {
	home := setupHome(t)
	prefs := testPrefs(t, home)
	cfg := &config.Config{DefaultLanguage: "de"}

	lang, src, err := resolveLanguage("", &config.Config{}, prefs)
	if err != nil || lang != i18n.English || src != "default" {
		t.Fatalf("empty: got %s/%s/%v", lang, src, err)
	}

	lang, src, _ = resolveLanguage("", cfg, prefs)
	if lang != i18n.German || src != "config" {
		t.Fatalf("config: got %s/%s", lang, src)
	}

	if err := prefs.SetLanguage(i18n.English); err != nil {
		t.Fatal(err)
	}
	lang, src, _ = resolveLanguage("", cfg, prefs)
	if lang != i18n.English || src != "stored" {
		t.Fatalf("stored: got %s/%s", lang, src)
	}

	t.Setenv(config.EnvLanguage, "de-AT")
	lang, src, _ = resolveLanguage("", cfg, prefs)
	if lang != i18n.German || src != config.EnvLanguage {
		t.Fatalf("env: got %s/%s", lang, src)
	}

	lang, src, _ = resolveLanguage("EN", cfg, prefs)
	if lang != i18n.English || src != "flag" {
		t.Fatalf("flag: got %s/%s", lang, src)
	}
}

func TestResolveLanguage_DotEnv(t *testing.T) {
	home := setupHome(t)
	dir := filepath.Join(home, ".netfolio")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("NETFOLIO_LANG=de\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	lang, src, err := resolveLanguage("", config.DefaultConfig(), testPrefs(t, home))
	if err != nil {
		t.Fatal(err)
	}
	if lang != i18n.German || src != config.EnvLanguage {
		t.Errorf("got %s/%s, want de from .env", lang, src)
	}
}

func TestResolveLanguage_UnsupportedFlagIsError(t *testing.T) {
	home := setupHome(t)
	if _, _, err := resolveLanguage("fr", config.DefaultConfig(), testPrefs(t, home)); err == nil {
		t.Fatal("expected an error for --lang fr")
	}
}

func TestResolveLanguage_UnsupportedEnvIsSkipped(t *testing.T) {
	home := setupHome(t)
	t.Setenv(config.EnvLanguage, "fr")

	lang, src, err := resolveLanguage("", &config.Config{DefaultLanguage: "de"}, testPrefs(t, home))
	if err != nil {
		t.Fatal(err)
	}
	if lang != i18n.German || src != "config" {
		t.Errorf("got %s/%s, want the config fallback", lang, src)
	}
}

func TestContentPath_EnvOverridesConfig(t *testing.T) {
	home := setupHome(t)
	cfg := &config.Config{ContentPath: "/etc/netfolio/content.yaml"}

	p, err := contentPath(cfg)
	if err != nil || p != cfg.ContentPath {
		t.Fatalf("config path: got %q, %v", p, err)
	}

	t.Setenv(config.EnvContent, "~/cv.toml")
	p, err = contentPath(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "cv.toml"); p != want {
		t.Errorf("got %q, want %q", p, want)
	}
}

func TestLoadTables_Builtin(t *testing.T) {
	setupHome(t)
	tables, src, err := loadTables(config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if src != builtinSource {
		t.Errorf("source = %q, want %q", src, builtinSource)
	}
	if tables.Count() != 14 {
		t.Errorf("Count() = %d, want 14", tables.Count())
	}
}

func TestSessionNavigator_StoresRecruiterSection(t *testing.T) {
	home := setupHome(t)
	prefs := testPrefs(t, home)
	catalog, err := i18n.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	tables, err := content.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	if err := prefs.SetProfile(session.ProfileStalker); err != nil {
		t.Fatal(err)
	}

	m := search.NewMatcher(search.Build(tables, catalog), catalog)
	nav := &sessionNavigator{prefs: prefs, catalog: catalog, lang: i18n.German, tables: tables}

	opened, err := m.Select("education-masters", nav)
	if err != nil {
		t.Fatal(err)
	}
	if !opened {
		t.Fatal("expected the education entry to open")
	}

	prof, _ := prefs.Profile()
	sec, _ := prefs.RecruiterSection()
	if prof != session.ProfileRecruiter || sec != session.SectionEducation {
		t.Errorf("got profile %q section %q, want recruiter/education", prof, sec)
	}
}

func TestCheckIndex(t *testing.T) {
	catalog, err := i18n.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	tables, err := content.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	entries := search.Build(tables, catalog)
	if issues := checkIndex(tables, entries); len(issues) != 0 {
		t.Fatalf("builtin content has issues: %v", issues)
	}

	broken := append(entries, search.Entry{ID: entries[0].ID})
	if issues := checkIndex(tables, broken); len(issues) < 3 {
		t.Errorf("expected count, duplicate, keyword and title issues, got %v", issues)
	}
}

func TestMissingTranslations_Builtin(t *testing.T) {
	catalog, err := i18n.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	if missing := missingTranslations(catalog); len(missing) != 0 {
		t.Errorf("builtin catalog is missing keys: %v", missing)
	}

	partial := i18n.NewCatalog(map[i18n.Language]map[string]string{
		i18n.English: {"app.tagline": "x"},
	})
	if missing := missingTranslations(partial); len(missing) == 0 {
		t.Error("expected missing keys for a partial catalog")
	}
}

func TestCountByCategory(t *testing.T) {
	catalog, _ := i18n.Builtin()
	tables, err := content.Builtin()
	if err != nil {
		t.Fatal(err)
	}
	counts := countByCategory(search.Build(tables, catalog))
	want := map[search.Category]int{
		search.CategorySkills:     6,
		search.CategoryExperience: 3,
		search.CategoryEducation:  2,
		search.CategoryProjects:   3,
	}
	for c, n := range want {
		if counts[c] != n {
			t.Errorf("%s: got %d, want %d", c, counts[c], n)
		}
	}
}

func TestLocalized_FallsBackToDefault(t *testing.T) {
	m := map[i18n.Language]string{i18n.English: "Skills"}
	if got := localized(m, i18n.German); got != "Skills" {
		t.Errorf("got %q, want the English value", got)
	}
}
