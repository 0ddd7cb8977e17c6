package search

import (
	"fmt"
	"strings"

	"github.com/debanjanofficial/netfolio/internal/i18n"
)

// MaxResults caps the number of results a single query returns. Matches past
// the cap are dropped without notice.
const MaxResults = 8

// Matcher answers queries against a fixed set of entries. It is not modified
// after construction and is safe for concurrent use.
type Matcher struct {
	entries []Entry
	byID    map[string]int
	tr      Translator
}

// NewMatcher returns a Matcher over a copy of entries.
func NewMatcher(entries []Entry, tr Translator) *Matcher {
	m := &Matcher{
		entries: make([]Entry, len(entries)),
		byID:    make(map[string]int, len(entries)),
		tr:      tr,
	}
	copy(m.entries, entries)
	for i, e := range m.entries {
		if _, dup := m.byID[e.ID]; !dup {
			m.byID[e.ID] = i
		}
	}
	return m
}

// Len returns the number of indexed entries.
func (m *Matcher) Len() int { return len(m.entries) }

// Entries returns a copy of the indexed entries in index order.
func (m *Matcher) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Search returns up to MaxResults entries with a keyword containing the
// trimmed, lowercased query, in index order. An empty query matches nothing.
func (m *Matcher) Search(query string, lang i18n.Language) []Result {
	q := normalizeQuery(query)
	if q == "" {
		return []Result{}
	}

	out := make([]Result, 0, MaxResults)
	for _, e := range m.entries {
		if !matches(e, q) {
			continue
		}
		out = append(out, Result{
			ID:       e.ID,
			Label:    e.LabelFor(lang),
			Category: m.tr.Lookup(lang, e.Category.TranslationKey()),
		})
		if len(out) == MaxResults {
			break
		}
	}
	return out
}

func matches(e Entry, q string) bool {
	for _, k := range e.Keywords {
		if strings.Contains(k, q) {
			return true
		}
	}
	return false
}

// Lookup resolves a result id to its content item.
func (m *Matcher) Lookup(id string) (Selection, bool) {
	i, ok := m.byID[id]
	if !ok {
		return Selection{}, false
	}
	e := m.entries[i]
	return Selection{Category: e.Category, TargetID: e.TargetID}, true
}

// Select resolves id and hands the item to nav. An unknown id is ignored:
// nav is not called and Select reports false with a nil error.
func (m *Matcher) Select(id string, nav Navigator) (bool, error) {
	sel, ok := m.Lookup(id)
	if !ok {
		return false, nil
	}
	if err := nav.Navigate(sel.Category, sel.TargetID); err != nil {
		return true, fmt.Errorf("cannot open %s: %w", id, err)
	}
	return true, nil
}
