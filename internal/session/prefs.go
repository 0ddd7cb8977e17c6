package session

import (
	"fmt"

	"github.com/debanjanofficial/netfolio/internal/i18n"
)

// Keys used in the state file.
const (
	KeyLanguage         = "netfolioLanguage"
	KeyProfile          = "netfolioProfile"
	KeyRecruiterSection = "netfolioRecruiterSection"
	KeyFocus            = "netfolioFocus"
)

// Profile is the viewer persona chosen on the profile screen.
type Profile string

const (
	ProfileNone      Profile = ""
	ProfileRecruiter Profile = "recruiter"
	ProfileStalker   Profile = "stalker"
)

// ParseProfile accepts "recruiter", "stalker" or "" (no profile).
func ParseProfile(s string) (Profile, error) {
	switch p := Profile(s); p {
	case ProfileNone, ProfileRecruiter, ProfileStalker:
		return p, nil
	}
	return "", fmt.Errorf("unknown profile %q (want recruiter or stalker)", s)
}

// Section is a page within a profile.
type Section string

const (
	SectionDashboard  Section = "dashboard"
	SectionSkills     Section = "skills"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionProjects   Section = "projects"
)

// legacySectionCertifications is an old section name now shown on the
// education page.
const legacySectionCertifications = "certifications"

// ParseSection maps a stored value to a Section. Unknown values fall back to
// the dashboard.
func ParseSection(s string) Section {
	switch sec := Section(s); sec {
	case SectionSkills, SectionExperience, SectionEducation, SectionProjects:
		return sec
	}
	if s == legacySectionCertifications {
		return SectionEducation
	}
	return SectionDashboard
}

// Prefs exposes typed accessors over a Store.
type Prefs struct {
	store *Store
}

// NewPrefs wraps store.
func NewPrefs(store *Store) *Prefs {
	return &Prefs{store: store}
}

// Language returns the stored display language. ok is false when nothing
// usable is stored.
func (p *Prefs) Language() (lang i18n.Language, ok bool, err error) {
	v, found, err := p.store.Get(KeyLanguage)
	if err != nil || !found {
		return "", false, err
	}
	l := i18n.Language(v)
	if !i18n.Valid(l) {
		return "", false, nil
	}
	return l, true, nil
}

// SetLanguage stores lang.
func (p *Prefs) SetLanguage(lang i18n.Language) error {
	if !i18n.Valid(lang) {
		return fmt.Errorf("%w: %q", i18n.ErrUnsupportedLanguage, lang)
	}
	return p.store.Set(KeyLanguage, string(lang))
}

// Profile returns the stored profile, or ProfileNone.
func (p *Prefs) Profile() (Profile, error) {
	v, _, err := p.store.Get(KeyProfile)
	if err != nil {
		return ProfileNone, err
	}
	prof, perr := ParseProfile(v)
	if perr != nil {
		return ProfileNone, nil
	}
	return prof, nil
}

// SetProfile stores prof. ProfileNone removes the key. The recruiter
// section is kept only while the profile is the recruiter.
func (p *Prefs) SetProfile(prof Profile) error {
	return p.store.Update(func(values map[string]string) {
		if prof == ProfileNone {
			delete(values, KeyProfile)
		} else {
			values[KeyProfile] = string(prof)
		}
		if prof != ProfileRecruiter {
			delete(values, KeyRecruiterSection)
			delete(values, KeyFocus)
		}
	})
}

// RecruiterSection returns the last recruiter page.
func (p *Prefs) RecruiterSection() (Section, error) {
	v, _, err := p.store.Get(KeyRecruiterSection)
	if err != nil {
		return SectionDashboard, err
	}
	return ParseSection(v), nil
}

// SetRecruiterSection stores sec when the current profile is the
// recruiter and clears it otherwise. Any focused item is dropped.
func (p *Prefs) SetRecruiterSection(sec Section) error {
	return p.store.Update(func(values map[string]string) {
		delete(values, KeyFocus)
		if Profile(values[KeyProfile]) == ProfileRecruiter {
			values[KeyRecruiterSection] = string(sec)
		} else {
			delete(values, KeyRecruiterSection)
		}
	})
}

// OpenRecruiterSection switches to the recruiter profile on sec in one
// write and focuses focusID within it. An empty focusID clears the focus.
func (p *Prefs) OpenRecruiterSection(sec Section, focusID string) error {
	return p.store.Update(func(values map[string]string) {
		values[KeyProfile] = string(ProfileRecruiter)
		values[KeyRecruiterSection] = string(sec)
		if focusID == "" {
			delete(values, KeyFocus)
		} else {
			values[KeyFocus] = focusID
		}
	})
}

// Focus returns the item highlighted in the recruiter section, or "".
func (p *Prefs) Focus() (string, error) {
	v, _, err := p.store.Get(KeyFocus)
	return v, err
}
