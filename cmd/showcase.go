package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/debanjanofficial/netfolio/internal/content"
	"github.com/debanjanofficial/netfolio/internal/i18n"
	"github.com/debanjanofficial/netfolio/internal/search"
)

const focusMarker = "▶"

// localized returns m[lang], falling back to the default language.
func localized[T any](m map[i18n.Language]T, lang i18n.Language) T {
	if v, ok := m[lang]; ok {
		return v
	}
	return m[i18n.Default]
}

// itemIDs lists the ids of category's table in display order.
func itemIDs(t *content.Tables, category search.Category) []string {
	var ids []string
	switch category {
	case search.CategorySkills:
		for _, g := range t.Skills {
			ids = append(ids, g.ID)
		}
	case search.CategoryExperience:
		for _, e := range t.Experience {
			ids = append(ids, e.ID)
		}
	case search.CategoryEducation:
		for _, e := range t.Education {
			ids = append(ids, e.ID)
		}
	case search.CategoryProjects:
		for _, p := range t.Projects {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// itemLines renders the card for one content item. The first line is the
// title. It returns nil for an unknown id.
func itemLines(t *content.Tables, lang i18n.Language, category search.Category, id string) []string {
	var lines []string
	switch category {
	case search.CategorySkills:
		for _, g := range t.Skills {
			if g.ID == id {
				lines = append(lines, colorTitle.Sprint(localized(g.Label, lang)))
				lines = append(lines, strings.Join(localized(g.Items, lang), " · "))
			}
		}
	case search.CategoryExperience:
		for _, e := range t.Experience {
			if e.ID == id {
				c := localized(e.Content, lang)
				lines = append(lines, colorTitle.Sprint(c.Role), c.Company+"  "+colorMuted.Sprint(c.Duration))
				for _, b := range c.Bullets {
					lines = append(lines, "• "+b)
				}
			}
		}
	case search.CategoryEducation:
		for _, e := range t.Education {
			if e.ID == id {
				c := localized(e.Content, lang)
				lines = append(lines, colorTitle.Sprint(c.Degree), c.Institution)
				if c.InstitutionURL != "" {
					lines = append(lines, colorMuted.Sprint(c.InstitutionURL))
				}
				if c.Major != "" {
					lines = append(lines, c.Major)
				}
				if c.ThesisTitle != "" {
					lines = append(lines, "“"+c.ThesisTitle+"”")
				}
				if c.ThesisDescription != "" {
					lines = append(lines, c.ThesisDescription)
				}
				if len(c.Courses) > 0 {
					lines = append(lines, strings.Join(c.Courses, " · "))
				}
			}
		}
	case search.CategoryProjects:
		for _, p := range t.Projects {
			if p.ID == id {
				c := localized(p.Content, lang)
				lines = append(lines, colorTitle.Sprint(c.Title))
				if c.URL != "" {
					lines = append(lines, colorMuted.Sprint(c.URL))
				}
				lines = append(lines, c.Summary, strings.Join(c.Tech, " · "))
			}
		}
	}
	return lines
}

// printShowcase renders every item of category's table. The item whose id
// equals focus is marked.
func printShowcase(w io.Writer, t *content.Tables, catalog *i18n.Catalog, lang i18n.Language, category search.Category, focus string) {
	fmt.Fprintf(w, "\n%s\n", colorTitle.Sprintf("=== %s ===", catalog.Lookup(lang, category.TranslationKey())))
	for _, id := range itemIDs(t, category) {
		marker := " "
		if id == focus {
			marker = colorOK.Sprint(focusMarker)
		}
		lines := itemLines(t, lang, category, id)
		if len(lines) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s %s  %s\n", marker, lines[0], colorMuted.Sprintf("[%s-%s]", category, id))
		for _, l := range lines[1:] {
			fmt.Fprintf(w, "    %s\n", l)
		}
	}
}

// printDashboard renders one card per section, like the profile home page.
func printDashboard(w io.Writer, t *content.Tables, catalog *i18n.Catalog, lang i18n.Language) {
	fmt.Fprintf(w, "%s\n\n", colorTitle.Sprint(catalog.Lookup(lang, "recruiter.section.dashboard")))
	for _, c := range search.Categories {
		fmt.Fprintf(w, "  ▸ %-18s %2d  %s\n",
			catalog.Lookup(lang, c.TranslationKey()), len(itemIDs(t, c)), colorMuted.Sprintf("netfolio section %s", c))
	}
}
