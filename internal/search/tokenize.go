package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// keywordSet collects lowercase keywords without duplicates, keeping
// first-insertion order.
type keywordSet struct {
	caser cases.Caser
	seen  map[string]struct{}
	list  []string
}

func newKeywordSet() *keywordSet {
	return &keywordSet{
		caser: cases.Lower(language.Und),
		seen:  make(map[string]struct{}),
	}
}

// add indexes value as a whole and word by word.
func (s *keywordSet) add(value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	lower := s.caser.String(value)
	s.insert(lower)
	for _, tok := range strings.FieldsFunc(lower, isSeparator) {
		s.insert(tok)
	}
}

func (s *keywordSet) addEach(values []string) {
	for _, v := range values {
		s.add(v)
	}
}

func (s *keywordSet) insert(k string) {
	if _, ok := s.seen[k]; ok {
		return
	}
	s.seen[k] = struct{}{}
	s.list = append(s.list, k)
}

func (s *keywordSet) keywords() []string {
	out := make([]string, len(s.list))
	copy(out, s.list)
	return out
}

// isSeparator reports whether r falls outside the word alphabet
// [a-z0-9äöüß]. Input is already lowercased.
func isSeparator(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return false
	case r == 'ä', r == 'ö', r == 'ü', r == 'ß':
		return false
	}
	return true
}

// normalizeQuery trims and lowercases a raw query the same way keywords
// are lowercased.
func normalizeQuery(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	return cases.Lower(language.Und).String(q)
}
