// Package content holds the static bilingual portfolio tables.
package content

import "github.com/debanjanofficial/netfolio/internal/i18n"

// SkillGroup is one row of the skills showcase.
type SkillGroup struct {
	ID    string                     `yaml:"id" toml:"id"`
	Label map[i18n.Language]string   `yaml:"label" toml:"label"`
	Items map[i18n.Language][]string `yaml:"items" toml:"items"`
}

// ExperienceContent is the localized body of an Experience.
type ExperienceContent struct {
	Role     string   `yaml:"role" toml:"role"`
	Company  string   `yaml:"company" toml:"company"`
	Duration string   `yaml:"duration" toml:"duration"`
	Bullets  []string `yaml:"bullets" toml:"bullets"`
}

// Experience is one job entry.
type Experience struct {
	ID      string                              `yaml:"id" toml:"id"`
	Content map[i18n.Language]ExperienceContent `yaml:"content" toml:"content"`
}

// EducationContent is the localized body of an Education entry.
type EducationContent struct {
	Degree            string   `yaml:"degree" toml:"degree"`
	Institution       string   `yaml:"institution" toml:"institution"`
	InstitutionURL    string   `yaml:"institutionUrl" toml:"institutionUrl"`
	Major             string   `yaml:"major" toml:"major"`
	Courses           []string `yaml:"courses" toml:"courses"`
	ThesisTitle       string   `yaml:"thesisTitle" toml:"thesisTitle"`
	ThesisDescription string   `yaml:"thesisDescription" toml:"thesisDescription"`
}

// Education is one degree entry.
type Education struct {
	ID      string                             `yaml:"id" toml:"id"`
	Content map[i18n.Language]EducationContent `yaml:"content" toml:"content"`
}

// ProjectContent is the localized body of a Project.
type ProjectContent struct {
	Title   string   `yaml:"title" toml:"title"`
	URL     string   `yaml:"url" toml:"url"`
	Summary string   `yaml:"summary" toml:"summary"`
	Tech    []string `yaml:"tech" toml:"tech"`
}

// Project is one portfolio project.
type Project struct {
	ID      string                           `yaml:"id" toml:"id"`
	Content map[i18n.Language]ProjectContent `yaml:"content" toml:"content"`
}

// Tables is the full content set. It is read-only once loaded.
type Tables struct {
	Skills     []SkillGroup               `yaml:"skills" toml:"skills"`
	Experience []Experience               `yaml:"experience" toml:"experience"`
	Education  []Education                `yaml:"education" toml:"education"`
	Projects   []Project                  `yaml:"projects" toml:"projects"`
	Banner     map[i18n.Language][]string `yaml:"banner,omitempty" toml:"banner,omitempty"`
}

// Count returns the number of items across the four searchable tables.
func (t *Tables) Count() int {
	return len(t.Skills) + len(t.Experience) + len(t.Education) + len(t.Projects)
}

// BannerFor returns the dashboard summary in lang, falling back to the
// default language.
func (t *Tables) BannerFor(lang i18n.Language) []string {
	if b, ok := t.Banner[lang]; ok && len(b) > 0 {
		return b
	}
	return t.Banner[i18n.Default]
}
