package search

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/debanjanofficial/netfolio/internal/content"
	"github.com/debanjanofficial/netfolio/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *i18n.Catalog {
	return i18n.NewCatalog(map[i18n.Language]map[string]string{
		i18n.English: {
			"recruiter.section.skills":     "Skills",
			"recruiter.section.experience": "Experience",
			"recruiter.section.education":  "Education",
			"recruiter.section.projects":   "Projects",
		},
		i18n.German: {
			"recruiter.section.skills":     "Fähigkeiten",
			"recruiter.section.experience": "Berufserfahrung",
			"recruiter.section.education":  "Ausbildung",
			"recruiter.section.projects":   "Projekte",
		},
	})
}

func builtinMatcher(t *testing.T) (*Matcher, *content.Tables) {
	t.Helper()
	tables, err := content.Builtin()
	require.NoError(t, err)
	return NewMatcher(Build(tables, testCatalog()), testCatalog()), tables
}

// bruteForce returns every matching entry id in index order, uncapped.
func bruteForce(entries []Entry, query string) []string {
	q := normalizeQuery(query)
	var out []string
	if q == "" {
		return out
	}
	for _, e := range entries {
		if matches(e, q) {
			out = append(out, e.ID)
		}
	}
	return out
}

func resultIDs(rs []Result) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}

func TestKeywordSet_WholeValueAndWords(t *testing.T) {
	ks := newKeywordSet()
	ks.add("Scikit-Learn")
	ks.add("Künstliche Intelligenz")
	ks.add("GPS/GIS APIs")
	ks.add("Straße")
	ks.add("Café")
	ks.add("scikit")
	ks.add("   ")
	ks.add("")

	assert.Equal(t, []string{
		"scikit-learn", "scikit", "learn",
		"künstliche intelligenz", "künstliche", "intelligenz",
		"gps/gis apis", "gps", "gis", "apis",
		"straße",
		"café", "caf",
	}, ks.keywords())
}

func TestBuild_EveryItemProducesOneEntry(t *testing.T) {
	tables, err := content.Builtin()
	require.NoError(t, err)
	entries := Build(tables, testCatalog())
	require.Len(t, entries, tables.Count())

	type key struct {
		cat Category
		id  string
	}
	count := map[key]int{}
	for _, e := range entries {
		count[key{e.Category, e.TargetID}]++
	}
	for _, g := range tables.Skills {
		assert.Equal(t, 1, count[key{CategorySkills, g.ID}], g.ID)
	}
	for _, x := range tables.Experience {
		assert.Equal(t, 1, count[key{CategoryExperience, x.ID}], x.ID)
	}
	for _, e := range tables.Education {
		assert.Equal(t, 1, count[key{CategoryEducation, e.ID}], e.ID)
	}
	for _, p := range tables.Projects {
		assert.Equal(t, 1, count[key{CategoryProjects, p.ID}], p.ID)
	}
}

func TestBuild_IDsAreUnique(t *testing.T) {
	m, _ := builtinMatcher(t)
	seen := map[string]bool{}
	for _, e := range m.Entries() {
		assert.False(t, seen[e.ID], "duplicate id %s", e.ID)
		seen[e.ID] = true
		assert.True(t, strings.HasPrefix(e.ID, string(e.Category)+"-"), e.ID)
		assert.NotEmpty(t, e.Keywords, e.ID)
	}
}

func TestBuild_LabelsAndKeywords(t *testing.T) {
	m, _ := builtinMatcher(t)
	entries := m.Entries()

	skills := entries[0]
	assert.Equal(t, "skills-programming", skills.ID)
	assert.Equal(t, "Skills – Programming", skills.Label[i18n.English])
	assert.Equal(t, "Fähigkeiten – Programmierung", skills.Label[i18n.German])
	assert.Contains(t, skills.Keywords, "python")
	assert.Contains(t, skills.Keywords, "programmierung")

	var exp Entry
	for _, e := range entries {
		if e.ID == "experience-db-management" {
			exp = e
		}
	}
	assert.Equal(t, "Berufserfahrung – Datenbankverwaltung & Datenanalyse", exp.Label[i18n.German])
	assert.Contains(t, exp.Keywords, "siemens energy")
	assert.Contains(t, exp.Keywords, "datenanalyse")
	assert.Contains(t, exp.Keywords, "12.2024 – 09.2025")
}

func TestBuild_SkipsUnindexedFields(t *testing.T) {
	tables := &content.Tables{
		Projects: []content.Project{{
			ID: "p",
			Content: map[i18n.Language]content.ProjectContent{
				i18n.English: {Title: "Demo", URL: "https://example.com/unique", Summary: "Short"},
			},
		}},
		Education: []content.Education{{
			ID: "e",
			Content: map[i18n.Language]content.EducationContent{
				i18n.English: {Degree: "BSc", InstitutionURL: "https://uni.example"},
			},
		}},
	}
	entries := Build(tables, testCatalog())
	require.Len(t, entries, 2)
	for _, e := range entries {
		for _, k := range e.Keywords {
			assert.NotContains(t, k, "example", e.ID)
		}
	}
	assert.Equal(t, "education-e", entries[0].ID)
	assert.Equal(t, "projects-p", entries[1].ID)
}

func TestSearch_EmptyQueryReturnsNothing(t *testing.T) {
	m, _ := builtinMatcher(t)
	for _, q := range []string{"", " ", "\t\n  "} {
		rs := m.Search(q, i18n.English)
		assert.NotNil(t, rs)
		assert.Empty(t, rs, "%q", q)
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	m, _ := builtinMatcher(t)
	upper := m.Search("PYTHON", i18n.English)
	lower := m.Search("python", i18n.English)
	require.NotEmpty(t, lower)
	assert.Equal(t, lower, upper)
	assert.Equal(t, lower, m.Search("  PyThOn ", i18n.English))
}

func TestSearch_SubstringOfEveryKeywordMatches(t *testing.T) {
	m, _ := builtinMatcher(t)
	entries := m.Entries()
	for _, e := range entries {
		for _, k := range e.Keywords {
			r := []rune(k)
			subs := []string{k, string(r[:1]), string(r[len(r)-1:])}
			if len(r) > 2 {
				subs = append(subs, string(r[1:len(r)-1]), string(r[:len(r)/2]), string(r[len(r)/2:]))
			}
			for _, s := range subs {
				if strings.TrimSpace(s) == "" {
					continue
				}
				all := bruteForce(entries, s)
				require.Contains(t, all, e.ID, "entry %s keyword %q substring %q", e.ID, k, s)

				want := all
				if len(want) > MaxResults {
					want = want[:MaxResults]
				}
				assert.Equal(t, want, resultIDs(m.Search(s, i18n.English)), "substring %q", s)
			}
		}
	}
}

func TestSearch_ContainsNotPrefix(t *testing.T) {
	m, _ := builtinMatcher(t)
	ids := resultIDs(m.Search("scien", i18n.English))
	assert.Contains(t, ids, "education-masters")
	assert.Contains(t, ids, "experience-data-scientist")
}

func TestSearch_CapsAtEightInIndexOrder(t *testing.T) {
	tables := &content.Tables{}
	for i := 0; i < 12; i++ {
		tables.Skills = append(tables.Skills, content.SkillGroup{
			ID:    fmt.Sprintf("g%02d", i),
			Label: map[i18n.Language]string{i18n.English: fmt.Sprintf("Group %d", i)},
			Items: map[i18n.Language][]string{i18n.English: {"Golang"}},
		})
	}
	m := NewMatcher(Build(tables, testCatalog()), testCatalog())

	rs := m.Search("golang", i18n.English)
	require.Len(t, rs, MaxResults)
	for i, r := range rs {
		assert.Equal(t, fmt.Sprintf("skills-g%02d", i), r.ID)
	}
}

func TestSearch_BuiltinBroadQuery(t *testing.T) {
	m, _ := builtinMatcher(t)
	all := bruteForce(m.Entries(), "a")
	require.Greater(t, len(all), MaxResults)
	assert.Equal(t, all[:MaxResults], resultIDs(m.Search("a", i18n.German)))
}

func TestSearch_MissingTitleKeepsLocalizedCategory(t *testing.T) {
	tables := &content.Tables{
		Experience: []content.Experience{{
			ID: "solo",
			Content: map[i18n.Language]content.ExperienceContent{
				i18n.English: {Role: "Gopher", Company: "Acme"},
			},
		}},
	}
	m := NewMatcher(Build(tables, testCatalog()), testCatalog())

	rs := m.Search("gopher", i18n.German)
	require.Len(t, rs, 1)
	assert.Equal(t, "Berufserfahrung – Gopher", rs[0].Label)
	assert.Equal(t, "Berufserfahrung", rs[0].Category)
}

func TestSearch_SkillGroupWithoutGermanLabel(t *testing.T) {
	tables := &content.Tables{
		Skills: []content.SkillGroup{{
			ID:    "x",
			Label: map[i18n.Language]string{i18n.English: "Thing"},
		}},
	}
	m := NewMatcher(Build(tables, testCatalog()), testCatalog())

	rs := m.Search("thing", i18n.German)
	require.Len(t, rs, 1)
	assert.Equal(t, "Fähigkeiten – Thing", rs[0].Label)
	assert.Equal(t, "Skills – Thing", m.Search("thing", i18n.English)[0].Label)
}

func TestEntry_LabelForFallsBackToDefault(t *testing.T) {
	e := Entry{Label: map[i18n.Language]string{i18n.English: "Skills – Go"}}
	assert.Equal(t, "Skills – Go", e.LabelFor(i18n.German))
}

func TestSearch_CategoryFallsBackToRawKey(t *testing.T) {
	tables := &content.Tables{
		Skills: []content.SkillGroup{{
			ID:    "x",
			Label: map[i18n.Language]string{i18n.English: "Thing"},
		}},
	}
	empty := i18n.NewCatalog(nil)
	m := NewMatcher(Build(tables, empty), empty)

	rs := m.Search("thing", i18n.English)
	require.Len(t, rs, 1)
	assert.Equal(t, "recruiter.section.skills", rs[0].Category)
	assert.Equal(t, "recruiter.section.skills – Thing", rs[0].Label)
}

func TestSearch_PythonPrefixFindsSkills(t *testing.T) {
	m, _ := builtinMatcher(t)

	rs := m.Search("pyth", i18n.English)
	require.NotEmpty(t, rs)
	assert.True(t, strings.HasPrefix(rs[0].ID, "skills-"))
	assert.Equal(t, "Skills", rs[0].Category)

	de := m.Search("pyth", i18n.German)
	require.NotEmpty(t, de)
	assert.Equal(t, "Fähigkeiten", de[0].Category)
	assert.Equal(t, "Fähigkeiten – Programmierung", de[0].Label)
}

func TestSearch_NoFuzzyMatching(t *testing.T) {
	m, _ := builtinMatcher(t)

	assert.Contains(t, resultIDs(m.Search("scientist", i18n.English)), "experience-data-scientist")
	assert.Empty(t, m.Search("scientests", i18n.English))
}

type recordingNavigator struct {
	calls []Selection
	err   error
}

func (n *recordingNavigator) Navigate(c Category, id string) error {
	n.calls = append(n.calls, Selection{Category: c, TargetID: id})
	return n.err
}

func TestSelect_NavigatesOnceForKnownID(t *testing.T) {
	m, _ := builtinMatcher(t)
	rs := m.Search("scientist", i18n.English)
	require.NotEmpty(t, rs)

	nav := &recordingNavigator{}
	ok, err := m.Select(rs[0].ID, nav)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []Selection{{Category: CategoryExperience, TargetID: "data-scientist"}}, nav.calls)
}

func TestSelect_UnknownIDIsNoop(t *testing.T) {
	m, _ := builtinMatcher(t)
	nav := &recordingNavigator{}

	ok, err := m.Select("skills-does-not-exist", nav)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, nav.calls)
}

func TestSelect_WrapsNavigatorError(t *testing.T) {
	m, _ := builtinMatcher(t)
	boom := errors.New("boom")

	ok, err := m.Select("projects-crime-analysis", NavigatorFunc(func(Category, string) error { return boom }))
	assert.True(t, ok)
	assert.ErrorIs(t, err, boom)
}

func TestMatcher_ConcurrentSearch(t *testing.T) {
	m, _ := builtinMatcher(t)
	want := m.Search("data", i18n.English)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, m.Search("DATA", i18n.English))
		}()
	}
	wg.Wait()
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("education")
	assert.True(t, ok)
	assert.Equal(t, CategoryEducation, c)

	_, ok = ParseCategory("certifications")
	assert.False(t, ok)
}
