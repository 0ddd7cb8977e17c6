// Package search indexes the portfolio content tables and answers
// free-text queries against them.
package search

import "github.com/debanjanofficial/netfolio/internal/i18n"

// Category is the content table an Entry was built from.
type Category string

const (
	CategorySkills     Category = "skills"
	CategoryExperience Category = "experience"
	CategoryEducation  Category = "education"
	CategoryProjects   Category = "projects"
)

// Categories lists every Category in indexing order.
var Categories = []Category{CategorySkills, CategoryExperience, CategoryEducation, CategoryProjects}

// ParseCategory reports whether s names a Category.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// TranslationKey is the catalog key holding the category's display name.
func (c Category) TranslationKey() string {
	return "recruiter.section." + string(c)
}

// Entry is the searchable form of one content item.
type Entry struct {
	ID       string                   `json:"id"`
	Category Category                 `json:"category"`
	TargetID string                   `json:"target_id"`
	Label    map[i18n.Language]string `json:"label"`
	Keywords []string                 `json:"keywords"`
}

// LabelFor returns the label in lang, or the default-language label when
// lang has none.
func (e Entry) LabelFor(lang i18n.Language) string {
	if l, ok := e.Label[lang]; ok && l != "" {
		return l
	}
	return e.Label[i18n.Default]
}

// Result is one match in display form.
type Result struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// Selection identifies the content item behind a chosen Result.
type Selection struct {
	Category Category
	TargetID string
}

// Translator localizes catalog keys. Missing keys come back unchanged.
type Translator interface {
	Lookup(lang i18n.Language, key string) string
}

// Navigator moves the caller's view to a content item.
type Navigator interface {
	Navigate(category Category, targetID string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(category Category, targetID string) error

// Navigate calls f.
func (f NavigatorFunc) Navigate(category Category, targetID string) error {
	return f(category, targetID)
}
