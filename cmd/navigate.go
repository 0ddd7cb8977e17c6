package cmd

import (
	"fmt"
	"os"

	"github.com/debanjanofficial/netfolio/internal/content"
	"github.com/debanjanofficial/netfolio/internal/i18n"
	"github.com/debanjanofficial/netfolio/internal/search"
	"github.com/debanjanofficial/netfolio/internal/session"
)

// sessionNavigator opens a result the way the recruiter view does: it
// switches to the recruiter profile on the result's section, then shows
// that section with the result focused.
type sessionNavigator struct {
	prefs   *session.Prefs
	catalog *i18n.Catalog
	lang    i18n.Language
	tables  *content.Tables // nil when searching a JSONL index
}

func (n *sessionNavigator) Navigate(category search.Category, targetID string) error {
	sec := session.Section(category)
	if err := n.prefs.OpenRecruiterSection(sec, targetID); err != nil {
		return fmt.Errorf("cannot store recruiter section: %w", err)
	}
	logger.WithField("section", sec).WithField("target", targetID).Debug("recruiter section opened")

	printOK("", fmt.Sprintf("%s → %s", n.catalog.Lookup(n.lang, category.TranslationKey()), targetID))
	if n.tables != nil {
		printShowcase(os.Stdout, n.tables, n.catalog, n.lang, category, targetID)
	}
	return nil
}
