package search

import (
	"strings"

	"github.com/debanjanofficial/netfolio/internal/content"
	"github.com/debanjanofficial/netfolio/internal/i18n"
)

// labelSeparator joins the category name and the item title in a label.
const labelSeparator = " – "

// Build flattens the content tables into one Entry per item, in table order:
// skills, experience, education, projects.
func Build(t *content.Tables, tr Translator) []Entry {
	out := make([]Entry, 0, t.Count())

	for _, g := range t.Skills {
		ks := newKeywordSet()
		for _, lang := range i18n.Supported {
			ks.add(g.Label[lang])
			ks.addEach(g.Items[lang])
		}
		out = append(out, newEntry(tr, CategorySkills, g.ID, g.Label, ks))
	}

	for _, x := range t.Experience {
		ks := newKeywordSet()
		titles := make(map[i18n.Language]string, len(x.Content))
		for _, lang := range i18n.Supported {
			c, ok := x.Content[lang]
			if !ok {
				continue
			}
			titles[lang] = c.Role
			ks.add(c.Role)
			ks.add(c.Company)
			ks.add(c.Duration)
			ks.addEach(c.Bullets)
		}
		out = append(out, newEntry(tr, CategoryExperience, x.ID, titles, ks))
	}

	for _, e := range t.Education {
		ks := newKeywordSet()
		titles := make(map[i18n.Language]string, len(e.Content))
		for _, lang := range i18n.Supported {
			c, ok := e.Content[lang]
			if !ok {
				continue
			}
			titles[lang] = c.Degree
			ks.add(c.Degree)
			ks.add(c.Institution)
			ks.add(c.Major)
			ks.add(c.ThesisTitle)
			ks.add(c.ThesisDescription)
			ks.addEach(c.Courses)
		}
		out = append(out, newEntry(tr, CategoryEducation, e.ID, titles, ks))
	}

	for _, p := range t.Projects {
		ks := newKeywordSet()
		titles := make(map[i18n.Language]string, len(p.Content))
		for _, lang := range i18n.Supported {
			c, ok := p.Content[lang]
			if !ok {
				continue
			}
			titles[lang] = c.Title
			ks.add(c.Title)
			ks.add(c.Summary)
			ks.addEach(c.Tech)
		}
		out = append(out, newEntry(tr, CategoryProjects, p.ID, titles, ks))
	}

	return out
}

// newEntry assembles an Entry. A language without its own title borrows
// the default language's title but keeps its own category name. No label
// is produced when neither title is set.
func newEntry(tr Translator, cat Category, id string, titles map[i18n.Language]string, ks *keywordSet) Entry {
	fallback := strings.TrimSpace(titles[i18n.Default])
	labels := make(map[i18n.Language]string, len(i18n.Supported))
	for _, lang := range i18n.Supported {
		title := strings.TrimSpace(titles[lang])
		if title == "" {
			title = fallback
		}
		if title == "" {
			continue
		}
		labels[lang] = tr.Lookup(lang, cat.TranslationKey()) + labelSeparator + title
	}
	return Entry{
		ID:       string(cat) + "-" + id,
		Category: cat,
		TargetID: id,
		Label:    labels,
		Keywords: ks.keywords(),
	}
}
